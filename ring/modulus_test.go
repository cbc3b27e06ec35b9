package ring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReduceRange(t *testing.T) {
	const q = 97
	for x := int64(-1000); x <= 1000; x++ {
		r := Reduce(x, q)
		require.Less(t, r, uint64(q))
		require.Equal(t, int64(r)%q, ((x%q)+q)%q)
	}
}

func TestReduceAdditiveHomomorphism(t *testing.T) {
	const q = 40961
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		a := rng.Int63n(2*q) - q
		b := rng.Int63n(2*q) - q
		require.Equal(t, Reduce(a+b, q), Reduce(int64(Reduce(a, q))+int64(Reduce(b, q)), q))
	}
}

func TestCRed(t *testing.T) {
	const q = 97
	require.Equal(t, uint64(0), CRed(0, q))
	require.Equal(t, uint64(0), CRed(q, q))
	require.Equal(t, uint64(5), CRed(5, q))
	require.Equal(t, uint64(5), CRed(q+5, q))
}
