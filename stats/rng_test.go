package stats

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPermutation checks that permutation yields every index exactly once.
func TestPermutation(t *testing.T) {
	p := permutation(100, trialRNG(5, 0))
	sorted := append([]int(nil), p...)
	sort.Ints(sorted)
	for i, v := range sorted {
		assert.Equal(t, i, v)
	}
	assert.Empty(t, permutation(0, trialRNG(5, 0)))
}

// TestTrialRNG checks stream derivation: same inputs agree, neighbours differ.
func TestTrialRNG(t *testing.T) {
	assert.Equal(t, trialRNG(1, 3).Int63(), trialRNG(1, 3).Int63())
	assert.NotEqual(t, trialRNG(1, 3).Int63(), trialRNG(1, 4).Int63())
	assert.NotEqual(t, trialRNG(1, 0).Int63(), trialRNG(2, 0).Int63())
	// Adjacent (base, trial) pairs must not collapse onto one stream.
	assert.NotEqual(t, trialRNG(0, 1).Int63(), trialRNG(1, 0).Int63())
}
