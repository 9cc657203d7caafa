// Package unionfind provides a weighted disjoint-set (union-find) structure
// over a fixed number of integer elements 0..N-1.
//
// What:
//
//   - DisjointSet partitions {0,...,N-1} into disjoint sets.
//   - Union merges two sets; Find returns the representative (root) of a set.
//   - Connected reports whether two elements share a set.
//
// Why:
//
//   - Dynamic connectivity under incremental unions: percolation, Kruskal MST,
//     image labelling, network reachability.
//
// Algorithm:
//
//   - Union by size: the root of the smaller tree is attached under the root
//     of the larger one, so tree height stays O(log N).
//   - Path halving: during Find every visited node is re-pointed to its
//     grandparent. One pass, no recursion, no auxiliary stack.
//
// Complexity:
//
//   - New:       O(N) time, O(N) memory.
//   - Find:      O(log N) worst case, amortized close to O(1).
//   - Union:     two Finds + O(1).
//   - Connected: two Finds.
//
// Errors:
//
//   - ErrInvalidSize: New called with n <= 0.
//   - ErrIndexOutOfRange: element index outside [0, N).
//
// Concurrency:
//
//	DisjointSet is NOT safe for concurrent use; even Find mutates parent links.
//	Give each goroutine its own instance.
package unionfind
