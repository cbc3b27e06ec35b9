package ring

import "fmt"

// Sampler draws a fresh, independent length-N polynomial with coefficients
// in [0, Q) from some distribution. Every Sampler implementation in this
// package is stateless aside from its Source: successive calls to Read draw
// independent samples, and a Source must never be reset between them.
type Sampler interface {
	// Read draws a new length-N polynomial.
	Read() (Poly, error)
}

// UniformSampler draws polynomials whose coefficients are independently
// uniform in {0, 1, ..., Q-1}.
type UniformSampler struct {
	N      int
	Q      uint64
	Mask   uint64
	Source *Source
}

// NewUniformSampler creates a [UniformSampler] of dimension n over Z_q,
// drawing its randomness from src. n must be a power of two and q must be
// at least 2.
func NewUniformSampler(src *Source, n int, q uint64) (*UniformSampler, error) {
	r, err := NewRing(n, q)
	if err != nil {
		return nil, fmt.Errorf("NewUniformSampler: %w", err)
	}
	return &UniformSampler{N: r.N, Q: r.Modulus, Mask: r.Mask, Source: src}, nil
}

// Read draws a new uniform polynomial. Each coefficient is produced by
// rejection sampling: draw a ceil(log2(Q))-bit value from the Source (by
// masking a uniformly random uint64 to the smallest power-of-two-minus-one
// mask >= Q-1) and reject it if it falls outside [0, Q). This avoids the
// modulo bias that a plain "random % Q" would introduce when Q is not a
// power of two.
func (u *UniformSampler) Read() (Poly, error) {
	p := NewPoly(u.N)
	for i := range p {
		for {
			v, err := u.Source.Uint64()
			if err != nil {
				return nil, fmt.Errorf("UniformSampler.Read: %w", err)
			}
			v &= u.Mask
			if v < u.Q {
				p[i] = v
				break
			}
		}
	}
	return p, nil
}
