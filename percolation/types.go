package percolation

import "github.com/katalvlaran/percolation/unionfind"

// orthogonal holds the (dRow, dCol) offsets of the four neighbours: N, E, S, W.
var orthogonal = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is an n×n site-percolation system.
// open[(row-1)*n + (col-1)] records whether a site is open; the union-find
// holds n*n+2 elements, with top = 0 and bottom = n*n+1.
type Grid struct {
	n         int
	open      []bool
	openCount int
	top       int
	bottom    int
	uf        *unionfind.DisjointSet
}
