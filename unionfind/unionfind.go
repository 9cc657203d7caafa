package unionfind

import "fmt"

// DisjointSet is a weighted union-find over elements 0..N-1.
// parent[i] == i marks a root; size[r] is meaningful only at roots and
// holds the number of elements in r's set.
type DisjointSet struct {
	parent []int
	size   []int
	count  int // number of disjoint sets remaining
}

// New constructs a DisjointSet of n singleton sets.
// Returns ErrInvalidSize if n <= 0.
// Complexity: O(n) time and memory.
func New(n int) (*DisjointSet, error) {
	if n <= 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidSize)
	}
	ds := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		ds.parent[i] = i
		ds.size[i] = 1
	}

	return ds, nil
}

// Len returns the number of elements N.
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// Count returns the number of disjoint sets.
func (ds *DisjointSet) Count() int {
	return ds.count
}

// Find returns the root of the set containing i.
// Every node visited on the way up is re-pointed to its grandparent.
// Returns ErrIndexOutOfRange if i is outside [0, N).
func (ds *DisjointSet) Find(i int) (int, error) {
	if err := ds.validate(i); err != nil {
		return 0, err
	}

	return ds.find(i), nil
}

// find is Find without bounds checking; callers validate first.
func (ds *DisjointSet) find(i int) int {
	for ds.parent[i] != i {
		ds.parent[i] = ds.parent[ds.parent[i]]
		i = ds.parent[i]
	}

	return i
}

// Union merges the sets containing a and b.
// The smaller tree is attached under the larger; on equal sizes b's root
// goes under a's root. Union of two already connected elements is a no-op.
// Returns ErrIndexOutOfRange if either index is outside [0, N).
func (ds *DisjointSet) Union(a, b int) error {
	if err := ds.validate(a); err != nil {
		return err
	}
	if err := ds.validate(b); err != nil {
		return err
	}

	rootA, rootB := ds.find(a), ds.find(b)
	if rootA == rootB {
		return nil
	}
	if ds.size[rootA] < ds.size[rootB] {
		ds.parent[rootA] = rootB
		ds.size[rootB] += ds.size[rootA]
	} else {
		ds.parent[rootB] = rootA
		ds.size[rootA] += ds.size[rootB]
	}
	ds.count--

	return nil
}

// Connected reports whether a and b belong to the same set.
// Returns ErrIndexOutOfRange if either index is outside [0, N).
func (ds *DisjointSet) Connected(a, b int) (bool, error) {
	if err := ds.validate(a); err != nil {
		return false, err
	}
	if err := ds.validate(b); err != nil {
		return false, err
	}

	return ds.find(a) == ds.find(b), nil
}

// SizeOf returns the number of elements in the set containing i.
func (ds *DisjointSet) SizeOf(i int) (int, error) {
	if err := ds.validate(i); err != nil {
		return 0, err
	}

	return ds.size[ds.find(i)], nil
}

func (ds *DisjointSet) validate(i int) error {
	if i < 0 || i >= len(ds.parent) {
		return fmt.Errorf("index %d not in [0,%d): %w", i, len(ds.parent), ErrIndexOutOfRange)
	}

	return nil
}
