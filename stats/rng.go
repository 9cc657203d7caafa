package stats

import "math/rand"

// trialRNG returns the RNG for trial number trial of a run seeded with base.
// The pair (base, trial) is scrambled with the SplitMix64 finalizer so
// neighbouring trials draw from uncorrelated streams.
// math/rand.Rand is not goroutine-safe; each trial owns its stream.
func trialRNG(base int64, trial int) *rand.Rand {
	const golden = 0x9e3779b97f4a7c15

	z := uint64(base) + uint64(trial+1)*golden
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb
	z ^= z >> 31

	return rand.New(rand.NewSource(int64(z)))
}

// permutation returns a Fisher–Yates shuffle of 0..n-1 drawn from rng.
func permutation(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}
