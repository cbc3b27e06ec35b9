package ring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randPoly(rng *rand.Rand, n int, q uint64) Poly {
	p := NewPoly(n)
	for i := range p {
		p[i] = uint64(rng.Int63n(int64(q)))
	}
	return p
}

func TestAddCommutative(t *testing.T) {
	r, err := NewRing(8, 97)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(2))
	a := randPoly(rng, r.N, r.Modulus)
	b := randPoly(rng, r.N, r.Modulus)

	ab, err := r.Add(a, b)
	require.NoError(t, err)
	ba, err := r.Add(b, a)
	require.NoError(t, err)
	require.True(t, ab.Equal(ba))
}

func TestAddNegIsZero(t *testing.T) {
	r, err := NewRing(8, 97)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	a := randPoly(rng, r.N, r.Modulus)

	na, err := r.Neg(a)
	require.NoError(t, err)
	sum, err := r.Add(a, na)
	require.NoError(t, err)
	require.True(t, sum.Equal(r.NewPoly()))
}

func TestSubIsAddNeg(t *testing.T) {
	r, err := NewRing(8, 97)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(4))
	a := randPoly(rng, r.N, r.Modulus)
	b := randPoly(rng, r.N, r.Modulus)

	sub, err := r.Sub(a, b)
	require.NoError(t, err)

	nb, err := r.Neg(b)
	require.NoError(t, err)
	addNeg, err := r.Add(a, nb)
	require.NoError(t, err)

	require.True(t, sub.Equal(addNeg))
}

func TestNegZeroIsZero(t *testing.T) {
	r, err := NewRing(8, 97)
	require.NoError(t, err)

	z, err := r.Neg(r.NewPoly())
	require.NoError(t, err)
	require.True(t, z.Equal(r.NewPoly()))
}

func TestMulNegacyclicCommutative(t *testing.T) {
	r, err := NewRing(16, 97)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(5))
	a := randPoly(rng, r.N, r.Modulus)
	b := randPoly(rng, r.N, r.Modulus)

	ab, err := r.MulNegacyclic(a, b)
	require.NoError(t, err)
	ba, err := r.MulNegacyclic(b, a)
	require.NoError(t, err)
	require.True(t, ab.Equal(ba))
}

// unitPoly returns the monomial e_k = x^k as a length-n polynomial.
func unitPoly(n, k int) Poly {
	p := NewPoly(n)
	p[k] = 1
	return p
}

func TestMulNegacyclicBasisIdentity(t *testing.T) {
	const n, q = 4, 97
	r, err := NewRing(n, q)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c, err := r.MulNegacyclic(unitPoly(n, i), unitPoly(n, j))
			require.NoError(t, err)

			k := i + j
			want := NewPoly(n)
			if k < n {
				want[k] = 1
			} else {
				want[k-n] = q - 1
			}
			require.True(t, c.Equal(want), "e_%d * e_%d", i, j)
		}
	}
}

// TestMulNegacyclicWrap reproduces end-to-end scenario 4: in R_97[x]/(x^4+1),
// x^3 * x^3 = x^6 = -x^2.
func TestMulNegacyclicWrap(t *testing.T) {
	r, err := NewRing(4, 97)
	require.NoError(t, err)

	c, err := r.MulNegacyclic(Poly{0, 0, 0, 1}, Poly{0, 0, 0, 1})
	require.NoError(t, err)
	require.True(t, c.Equal(Poly{0, 0, 96, 0}))
}

func TestMulNegacyclicLargeModulusExact(t *testing.T) {
	// Modulus above 2^32 (here about 2^40) exercises the widened 128-bit product path in
	// mulModReduce (a[i]*b[j] alone would overflow a naive uint64 multiply
	// reduced only afterwards for moduli beyond 2^32).
	const q = (uint64(1) << 40) + 7
	r, err := NewRing(4, q)
	require.NoError(t, err)

	a := Poly{q - 1, 0, 0, 0}
	b := Poly{q - 1, 0, 0, 0}
	c, err := r.MulNegacyclic(a, b)
	require.NoError(t, err)

	// (q-1)*(q-1) mod q == 1.
	require.Equal(t, uint64(1), c[0])
}

func TestInvalidInputRejected(t *testing.T) {
	r, err := NewRing(4, 97)
	require.NoError(t, err)

	_, err = r.Add(Poly{1, 2, 3}, r.NewPoly())
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = r.Add(Poly{1, 2, 3, 200}, r.NewPoly())
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewRingRejectsBadParameters(t *testing.T) {
	_, err := NewRing(3, 97)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewRing(4, 1)
	require.ErrorIs(t, err, ErrInvalidParameter)
}
