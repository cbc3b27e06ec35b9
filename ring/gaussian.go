package ring

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// cdtPrecisionBits is the working precision used to build the Gaussian
// cumulative distribution table. It comfortably exceeds the 62 bits of the
// fixed-point scale the table is quantized to, so rounding in the table
// construction never dominates the rounding-of-continuous-Gaussian
// discretization error the scheme already tolerates.
const cdtPrecisionBits = 128

// cdtScaleBits is the number of bits of the fixed-point scale the
// cumulative distribution table is quantized to; samples are drawn by
// comparing a uniform value of this many bits against the table.
const cdtScaleBits = 62

// DiscreteGaussian is the parameter of a centered discrete Gaussian
// distribution over Z: each integer x has probability proportional to
// exp(-x^2/(2*Sigma^2)). This is a close approximation of rounding a
// continuous Gaussian(0, Sigma), not an exact rounding of one.
type DiscreteGaussian struct {
	Sigma float64
}

// GaussianSampler draws polynomials whose coefficients are independent
// samples from a [DiscreteGaussian] distribution, canonically reduced
// modulo Q.
//
// The distribution is realized with a cumulative distribution table (CDT):
// the probability mass of each magnitude 0, 1, 2, ... up to a tail bound is
// computed once, at high precision via github.com/ALTree/bigfloat (so the
// construction itself introduces negligible error regardless of Sigma), and
// quantized to a fixed-point scale. Sampling then draws one uniform value
// per coefficient, plus one sign bit when the magnitude is nonzero, and
// looks up the magnitude by table
// search, which is the same shape as the teacher pack's KYSampler /
// computeMatrix approach to discrete Gaussian sampling, generalized from a
// hand-rolled fixed-precision table to an arbitrary-precision one.
type GaussianSampler struct {
	N      int
	Q      uint64
	Xe     DiscreteGaussian
	Source *Source

	cdt []uint64 // cdt[k] = P(|X| <= k) * 2^cdtScaleBits, rounded
}

// NewGaussianSampler creates a [GaussianSampler] of dimension n over Z_q
// with standard deviation sigma, drawing its randomness from src. n must be
// a power of two, q must be at least 2, and sigma must be strictly
// positive.
func NewGaussianSampler(src *Source, n int, q uint64, sigma float64) (*GaussianSampler, error) {
	r, err := NewRing(n, q)
	if err != nil {
		return nil, fmt.Errorf("NewGaussianSampler: %w", err)
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("invalid standard deviation sigma=%v: must be > 0: %w", sigma, ErrInvalidParameter)
	}

	return &GaussianSampler{
		N:      r.N,
		Q:      r.Modulus,
		Xe:     DiscreteGaussian{Sigma: sigma},
		Source: src,
		cdt:    buildGaussianCDT(sigma),
	}, nil
}

// gaussianTailSigmas is the truncation point of the discrete Gaussian tail,
// expressed in multiples of sigma. Beyond 12 sigma the tail mass is far
// below 2^-64, so truncating there is statistically indistinguishable from
// the untruncated distribution at the scheme's parameters.
const gaussianTailSigmas = 12

// buildGaussianCDT computes the cumulative distribution table for a centered
// discrete Gaussian of standard deviation sigma, scaled to cdtScaleBits bits
// of fixed-point precision. cdt[k] holds the scaled probability mass of
// |X| <= k; the table is searched by a single uniform draw in
// GaussianSampler.Read.
func buildGaussianCDT(sigma float64) []uint64 {
	prec := uint(cdtPrecisionBits)

	bound := int(gaussianTailSigmas*sigma) + 1

	two := new(big.Float).SetPrec(prec).SetInt64(2)
	twoSigma2 := new(big.Float).SetPrec(prec).SetFloat64(sigma * sigma)
	twoSigma2.Mul(twoSigma2, two)

	// density(x) is proportional to exp(-x^2 / (2*sigma^2)); we only need
	// relative mass since the table is renormalized at the end.
	density := func(x int) *big.Float {
		xf := new(big.Float).SetPrec(prec).SetInt64(int64(x * x))
		exponent := new(big.Float).SetPrec(prec).Quo(xf, twoSigma2)
		exponent.Neg(exponent)
		return bigfloat.Exp(exponent)
	}

	// mass[k] holds the unnormalized probability of magnitude k (k=0 is a
	// single point, k>0 covers both +k and -k).
	mass := make([]*big.Float, bound+1)
	total := new(big.Float).SetPrec(prec)
	for k := 0; k <= bound; k++ {
		m := density(k)
		if k > 0 {
			m = new(big.Float).SetPrec(prec).Mul(m, two)
		}
		mass[k] = m
		total.Add(total, m)
	}

	scale := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), cdtScaleBits)

	cdt := make([]uint64, bound+1)
	running := new(big.Float).SetPrec(prec)
	for k := 0; k <= bound; k++ {
		running.Add(running, mass[k])
		frac := new(big.Float).SetPrec(prec).Quo(running, total)
		frac.Mul(frac, scale)
		v, _ := frac.Uint64()
		cdt[k] = v
	}
	// Guard against rounding leaving the last entry short of the full scale,
	// which would make the largest magnitude unreachable.
	cdt[bound] = uint64(1)<<cdtScaleBits - 1
	return cdt
}

// Read draws a new polynomial whose coefficients are independent discrete
// Gaussian samples, canonically reduced modulo Q.
func (g *GaussianSampler) Read() (Poly, error) {
	p := NewPoly(g.N)
	for i := range p {
		mag, err := g.readMagnitude()
		if err != nil {
			return nil, fmt.Errorf("GaussianSampler.Read: %w", err)
		}

		if mag == 0 {
			p[i] = 0
			continue
		}

		sign, err := g.Source.Bit()
		if err != nil {
			return nil, fmt.Errorf("GaussianSampler.Read: %w", err)
		}

		if sign == 0 {
			p[i] = Reduce(int64(mag), g.Q)
		} else {
			p[i] = Reduce(-int64(mag), g.Q)
		}
	}
	return p, nil
}

// readMagnitude draws one magnitude 0 <= |X| <= bound from the CDT via a
// single uniform draw and linear search.
func (g *GaussianSampler) readMagnitude() (uint64, error) {
	v, err := g.Source.Uint64()
	if err != nil {
		return 0, err
	}
	v >>= 64 - cdtScaleBits

	for k, edge := range g.cdt {
		if v < edge {
			return uint64(k), nil
		}
	}
	return uint64(len(g.cdt) - 1), nil
}
