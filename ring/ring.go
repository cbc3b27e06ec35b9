// Package ring implements exact modular arithmetic for polynomials in the
// negacyclic quotient ring R_q = Z_q[x]/(x^n+1), together with the uniform
// and discrete Gaussian samplers used to draw ring elements.
package ring

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Ring stores the precomputed constants needed to operate on polynomials of
// degree N over Z_q.
type Ring struct {
	// N is the ring dimension: the fixed length of every Poly produced by
	// this Ring. It is always a power of two.
	N int

	// Modulus is the coefficient modulus Q. Every coefficient crossing a
	// component boundary lies in [0, Modulus).
	Modulus uint64

	// Mask is the smallest (2^k - 1) >= Modulus-1, used by UniformSampler
	// for rejection sampling without modulo bias.
	Mask uint64

	// modulusBig mirrors Modulus as a *big.Int so that MulNegacyclic can
	// reduce its widened 128-bit products without reallocating it on
	// every coefficient.
	modulusBig *big.Int
}

// NewRing creates a new [Ring] of degree N over Z_q. N must be a power of
// two and q must be at least 2.
func NewRing(N int, q uint64) (*Ring, error) {
	if N <= 0 || N&(N-1) != 0 {
		return nil, fmt.Errorf("invalid ring degree N=%d: must be a power of two: %w", N, ErrInvalidParameter)
	}

	if q < 2 {
		return nil, fmt.Errorf("invalid modulus Q=%d: must be >= 2: %w", q, ErrInvalidParameter)
	}

	return &Ring{
		N:          N,
		Modulus:    q,
		Mask:       1<<bits.Len64(q-1) - 1,
		modulusBig: new(big.Int).SetUint64(q),
	}, nil
}

// NewPoly allocates the zero polynomial of the receiver's dimension N.
func (r *Ring) NewPoly() Poly {
	return NewPoly(r.N)
}

// checkInput validates that p has exactly r.N coefficients in [0, r.Modulus).
func (r *Ring) checkInput(p Poly) error {
	return checkLenQ(p, r.N, r.Modulus)
}
