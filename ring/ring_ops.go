package ring

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Add evaluates c = a + b (mod Modulus), coefficient-wise.
// a and b must each have length N and coefficients in [0, Modulus).
func (r *Ring) Add(a, b Poly) (c Poly, err error) {
	if err = r.checkInput(a); err != nil {
		return nil, fmt.Errorf("Ring.Add: %w", err)
	}
	if err = r.checkInput(b); err != nil {
		return nil, fmt.Errorf("Ring.Add: %w", err)
	}

	c = r.NewPoly()
	q := r.Modulus
	for i := range c {
		c[i] = CRed(a[i]+b[i], q)
	}
	return c, nil
}

// Sub evaluates c = a - b (mod Modulus), coefficient-wise, with the result
// canonically reduced to [0, Modulus).
func (r *Ring) Sub(a, b Poly) (c Poly, err error) {
	if err = r.checkInput(a); err != nil {
		return nil, fmt.Errorf("Ring.Sub: %w", err)
	}
	if err = r.checkInput(b); err != nil {
		return nil, fmt.Errorf("Ring.Sub: %w", err)
	}

	c = r.NewPoly()
	q := r.Modulus
	for i := range c {
		c[i] = Reduce(int64(a[i])-int64(b[i]), q)
	}
	return c, nil
}

// Neg evaluates c = -a (mod Modulus). Neg of the zero polynomial is the zero
// polynomial.
func (r *Ring) Neg(a Poly) (c Poly, err error) {
	if err = r.checkInput(a); err != nil {
		return nil, fmt.Errorf("Ring.Neg: %w", err)
	}

	c = r.NewPoly()
	q := r.Modulus
	for i, v := range a {
		if v == 0 {
			c[i] = 0
		} else {
			c[i] = q - v
		}
	}
	return c, nil
}

// MulNegacyclic evaluates c = a*b in R_q = Z_q[x]/(x^n+1): the schoolbook
// negacyclic convolution. For each ordered pair (i, j), the term a[i]*b[j]
// contributes to position k = (i+j) mod n with sign +1 if i+j < n, and sign
// -1 if i+j >= n (since x^n == -1 in this ring).
//
// Each product a[i]*b[j] can reach (Modulus-1)^2, which overflows a plain
// uint64 once Modulus exceeds 2^32; every product is therefore formed as a
// full 128-bit widened product (via math/bits.Mul64) and reduced modulo
// Modulus before it is folded into the running coefficient sum, so no
// intermediate value ever overflows and no floating point appears anywhere
// in the pipeline.
func (r *Ring) MulNegacyclic(a, b Poly) (c Poly, err error) {
	if err = r.checkInput(a); err != nil {
		return nil, fmt.Errorf("Ring.MulNegacyclic: %w", err)
	}
	if err = r.checkInput(b); err != nil {
		return nil, fmt.Errorf("Ring.MulNegacyclic: %w", err)
	}

	n := r.N
	q := r.Modulus
	c = r.NewPoly()

	for i := 0; i < n; i++ {
		if a[i] == 0 {
			continue
		}
		ai := a[i]
		for j := 0; j < n; j++ {
			if b[j] == 0 {
				continue
			}
			term := r.mulModReduce(ai, b[j])
			k := i + j
			if k >= n {
				k -= n
				c[k] = Reduce(int64(c[k])-int64(term), q)
			} else {
				c[k] = CRed(c[k]+term, q)
			}
		}
	}
	return c, nil
}

// mulModReduce returns a*b mod r.Modulus, widening the 64x64 product into
// its full 128-bit representation before reducing.
func (r *Ring) mulModReduce(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi == 0 {
		return lo % r.Modulus
	}

	var x big.Int
	x.SetUint64(hi)
	x.Lsh(&x, 64)
	x.Or(&x, new(big.Int).SetUint64(lo))
	x.Mod(&x, r.modulusBig)
	return x.Uint64()
}
