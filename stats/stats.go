package stats

import (
	"fmt"
	"math"
)

// confidenceZ is the two-sided 95% normal quantile.
const confidenceZ = 1.96

// Stats summarises the per-trial percolation thresholds of a Monte Carlo run.
// It is immutable once built.
type Stats struct {
	fractions []float64
	mean      float64
	spread    float64
}

// New builds Stats from per-trial open-site fractions.
// The input is copied. Returns ErrInvalidTries if fractions is empty.
// Complexity: O(len(fractions)).
func New(fractions []float64) (*Stats, error) {
	if len(fractions) == 0 {
		return nil, fmt.Errorf("New: no fractions: %w", ErrInvalidTries)
	}
	s := &Stats{fractions: make([]float64, len(fractions))}
	copy(s.fractions, fractions)

	lo, hi, sum := s.fractions[0], s.fractions[0], 0.0
	for _, f := range s.fractions {
		sum += f
		lo = math.Min(lo, f)
		hi = math.Max(hi, f)
	}
	s.mean = sum / float64(len(s.fractions))
	s.spread = math.Max(math.Abs(hi-s.mean), math.Abs(lo-s.mean))

	return s, nil
}

// Tries returns the number of trials.
func (s *Stats) Tries() int {
	return len(s.fractions)
}

// Fractions returns a copy of the per-trial fractions in trial order.
func (s *Stats) Fractions() []float64 {
	out := make([]float64, len(s.fractions))
	copy(out, s.fractions)
	return out
}

// Mean returns the sample mean of the percolation threshold.
func (s *Stats) Mean() float64 {
	return s.mean
}

// Stddev returns the spread of the thresholds: the largest absolute
// deviation of any trial from the mean, max(|max−mean|, |min−mean|).
func (s *Stats) Stddev() float64 {
	return s.spread
}

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceLo() float64 {
	return s.mean - s.halfWidth()
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceHi() float64 {
	return s.mean + s.halfWidth()
}

func (s *Stats) halfWidth() float64 {
	return confidenceZ * s.spread / math.Sqrt(float64(len(s.fractions)))
}
