// Package percolation estimates the site-percolation threshold of an n×n
// grid by Monte Carlo simulation.
//
// A trial opens random sites of an initially blocked grid until some chain
// of open, orthogonally adjacent sites joins the top row to the bottom row.
// The fraction of open sites at that moment is one estimate of the
// threshold p* (≈ 0.5927 for the square lattice); many trials give a mean,
// a spread and a 95% confidence interval.
//
// Layout:
//
//	unionfind/       — weighted union-find with path halving (DisjointSet)
//	percolation/     — n×n Grid with virtual top/bottom sites over a DisjointSet
//	stats/           — parallel Monte Carlo driver and threshold statistics
//	cmd/percolation/ — command-line entry point: percolation <n> <tries>
//
// Quick ASCII example (X = open):
//
//	X . X
//	X X .
//	. X .
//
// percolates through (1,1) → (2,1) → (2,2) → (3,2).
//
//	go install github.com/katalvlaran/percolation/cmd/percolation@latest
package percolation
