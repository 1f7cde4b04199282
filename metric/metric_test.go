// Public domain.

package metric_test

import (
	"testing"

	"github.com/gonum/matrix/mat64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrophysicsvivien/cwscan/metric"
)

const yearSpan = 3.156e7

func TestFlatDims(t *testing.T) {
	for dim := 3; dim <= 6; dim++ {
		g, err := metric.Flat(51544.5, 51544.5, yearSpan, dim)
		require.NoError(t, err)
		require.Equal(t, dim, g.Symmetric())
		// positive definite over a year of observation
		var ch mat64.Cholesky
		assert.True(t, ch.Factorize(g), "dim %d not positive definite", dim)
	}
}

func TestFlatSpindownBlock(t *testing.T) {
	// covariances of the spindown basis τ^(s+1) have the closed form
	// 1/(s+s'+3) - 1/((s+2)(s'+2)), independent of the ephemeris
	g, err := metric.Flat(51544.5, 51544.5, yearSpan, 6)
	require.NoError(t, err)
	at := func(s int) int { // canonical slot of spin order s
		if s == 0 {
			return 0
		}
		return s + 2
	}
	for s := 0; s < 4; s++ {
		for q := s; q < 4; q++ {
			want := 1/float64(s+q+3) - 1/float64((s+2)*(q+2))
			assert.InDelta(t, want, g.At(at(s), at(q)), 1e-9,
				"spin covariance %d,%d", s, q)
		}
	}
}

func TestFlatDopplerBlock(t *testing.T) {
	// over a full year cos λ and sin λ average near zero and their
	// variances near one half
	g, err := metric.Flat(51544.5, 51544.5, 3.156e7, 3)
	require.NoError(t, err)
	assert.InDelta(t, .5, g.At(1, 1), .05)
	assert.InDelta(t, .5, g.At(2, 2), .05)
}

func TestFlatReferenceTimeDropsOut(t *testing.T) {
	a, err := metric.Flat(51544.5, 53000, 1e7, 4)
	require.NoError(t, err)
	b, err := metric.Flat(58000, 53000, 1e7, 4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.Equal(t, a.At(i, j), b.At(i, j))
		}
	}
}

func TestFlatErrors(t *testing.T) {
	_, err := metric.Flat(51544.5, 51544.5, yearSpan, 2)
	assert.Error(t, err)
	_, err = metric.Flat(51544.5, 51544.5, yearSpan, 7)
	assert.Error(t, err)
	_, err = metric.Flat(51544.5, 51544.5, 0, 4)
	assert.Error(t, err)
}
