package ring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGaussianSamplerMeanAndVariance(t *testing.T) {
	const q = 40961
	const sigma = 3.2
	const draws = 200000

	s, err := NewGaussianSampler(DefaultSource(), 1, q, sigma)
	require.NoError(t, err)

	var sum, sumSq float64
	for i := 0; i < draws; i++ {
		p, err := s.Read()
		require.NoError(t, err)

		// Recover the signed representative closest to 0: a coefficient c
		// in [0, q) centered around 0 is c if c <= q/2, else c-q.
		c := int64(p[0])
		if c > q/2 {
			c -= q
		}
		x := float64(c)
		sum += x
		sumSq += x * x
	}

	mean := sum / draws
	variance := sumSq/draws - mean*mean

	require.Less(t, math.Abs(mean), 0.15)
	require.InDelta(t, sigma*sigma, variance, sigma*sigma*0.25)
}

func TestGaussianSamplerReducedModQ(t *testing.T) {
	s, err := NewGaussianSampler(DefaultSource(), 32, 97, 3.2)
	require.NoError(t, err)

	p, err := s.Read()
	require.NoError(t, err)
	for _, c := range p {
		require.Less(t, c, uint64(97))
	}
}

func TestNewGaussianSamplerRejectsBadParameters(t *testing.T) {
	_, err := NewGaussianSampler(DefaultSource(), 4, 97, 0)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewGaussianSampler(DefaultSource(), 4, 97, -1)
	require.ErrorIs(t, err, ErrInvalidParameter)
}
