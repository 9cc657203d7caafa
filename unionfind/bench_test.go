package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolation/unionfind"
)

// BenchmarkUnionFind measures N random unions followed by N Connected queries
// on a 1,000,000-element set.
func BenchmarkUnionFind(b *testing.B) {
	const n = 1_000_000
	rng := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(n), rng.Intn(n)}
	}

	b.ResetTimer() // exclude pair generation
	for i := 0; i < b.N; i++ {
		ds, err := unionfind.New(n)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		for _, p := range pairs {
			_ = ds.Union(p[0], p[1])
		}
		for _, p := range pairs {
			_, _ = ds.Connected(p[1], p[0])
		}
	}
}
