package stats_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/percolation/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// TestNew_Empty verifies that New rejects an empty sample.
func TestNew_Empty(t *testing.T) {
	s, err := stats.New(nil)
	assert.ErrorIs(t, err, stats.ErrInvalidTries)
	assert.Nil(t, s)
}

// TestNew_Summary checks mean, spread and the confidence interval on a known sample.
func TestNew_Summary(t *testing.T) {
	cases := []struct {
		name      string
		fractions []float64
		mean      float64
		spread    float64
	}{
		{"Single", []float64{0.6}, 0.6, 0},
		{"Symmetric", []float64{0.5, 0.6, 0.7, 0.6}, 0.6, 0.1},
		// mean 0.55; |0.7-0.55| = 0.15 beats |0.5-0.55| = 0.05.
		{"SkewedHigh", []float64{0.5, 0.5, 0.5, 0.7, 0.55}, 0.55, 0.15},
		// mean 0.6; |0.3-0.6| = 0.3 beats |0.7-0.6| = 0.1.
		{"SkewedLow", []float64{0.3, 0.7, 0.7, 0.7}, 0.6, 0.3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := stats.New(tc.fractions)
			require.NoError(t, err)
			assert.Equal(t, len(tc.fractions), s.Tries())
			assert.InDelta(t, tc.mean, s.Mean(), eps)
			assert.InDelta(t, tc.spread, s.Stddev(), eps)

			half := 1.96 * tc.spread / math.Sqrt(float64(len(tc.fractions)))
			assert.InDelta(t, tc.mean-half, s.ConfidenceLo(), eps)
			assert.InDelta(t, tc.mean+half, s.ConfidenceHi(), eps)
		})
	}
}

// TestStddev_IsMaxDeviation distinguishes the spread from the classical
// standard deviation on a sample where the two differ.
func TestStddev_IsMaxDeviation(t *testing.T) {
	s, err := stats.New([]float64{0, 0, 0, 1})
	require.NoError(t, err)
	// mean 0.25, max deviation 0.75, sample stddev 0.5.
	assert.InDelta(t, 0.75, s.Stddev(), eps)
	assert.InDelta(t, 0.25-1.96*0.75/2, s.ConfidenceLo(), eps)
}

// TestNew_CopiesInput verifies that Stats is isolated from the caller's slice.
func TestNew_CopiesInput(t *testing.T) {
	in := []float64{0.4, 0.6}
	s, err := stats.New(in)
	require.NoError(t, err)

	in[0] = 100
	assert.InDelta(t, 0.5, s.Mean(), eps)

	out := s.Fractions()
	out[1] = -1
	assert.Equal(t, []float64{0.4, 0.6}, s.Fractions())
}
