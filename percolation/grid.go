package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// NewGrid constructs an n×n grid with every site blocked.
// The first row is joined to the virtual top and the last row to the
// virtual bottom. Returns ErrInvalidSize if n <= 0.
// Complexity: O(n²) time and memory.
func NewGrid(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewGrid(%d): %w", n, ErrInvalidSize)
	}
	// 1. One element per site plus the two virtual sites.
	uf, err := unionfind.New(n*n + 2)
	if err != nil {
		return nil, fmt.Errorf("NewGrid(%d): %w", n, err)
	}
	g := &Grid{
		n:      n,
		open:   make([]bool, n*n),
		top:    0,
		bottom: n*n + 1,
		uf:     uf,
	}
	// 2. Pre-wire every column of the first and last rows, blocked or not;
	//    IsFull and Percolates gate on openness.
	for col := 1; col <= n; col++ {
		g.union(g.index(1, col), g.top)
		g.union(g.index(n, col), g.bottom)
	}

	return g, nil
}

// Size returns the grid dimension n.
func (g *Grid) Size() int {
	return g.n
}

// InBounds reports whether (row, col) lies within [1, n]×[1, n].
func (g *Grid) InBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

// Open marks (row, col) open and joins it to every open orthogonal neighbour.
// Opening an already open site is a no-op.
// Returns ErrOutOfRange if either coordinate is outside [1, n].
func (g *Grid) Open(row, col int) error {
	if err := g.validate(row, col); err != nil {
		return err
	}
	if g.isOpen(row, col) {
		return nil // idempotent
	}
	g.open[g.cell(row, col)] = true
	g.openCount++

	site := g.index(row, col)
	for _, d := range orthogonal {
		nr, nc := row+d[0], col+d[1]
		// Never join a blocked neighbour: connectivity must run through open sites only.
		if !g.InBounds(nr, nc) || !g.isOpen(nr, nc) {
			continue
		}
		g.union(site, g.index(nr, nc))
	}

	return nil
}

// OpenIndex opens the site with 0-based row-major index idx,
// i.e. row idx/n+1 and column idx%n+1.
// Returns ErrOutOfRange if idx is outside [0, n*n).
func (g *Grid) OpenIndex(idx int) error {
	if idx < 0 || idx >= g.n*g.n {
		return fmt.Errorf("site index %d not in [0,%d): %w", idx, g.n*g.n, ErrOutOfRange)
	}

	return g.Open(idx/g.n+1, idx%g.n+1)
}

// IsOpen reports whether (row, col) is open.
// Returns ErrOutOfRange if either coordinate is outside [1, n].
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}

	return g.isOpen(row, col), nil
}

// IsFull reports whether (row, col) is open and shares a root with the
// virtual top. A blocked site is never full. See the package doc on backwash.
// Returns ErrOutOfRange if either coordinate is outside [1, n].
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}
	if !g.isOpen(row, col) {
		return false, nil
	}

	return g.connected(g.index(row, col), g.top), nil
}

// OpenSiteCount returns the number of open sites.
func (g *Grid) OpenSiteCount() int {
	return g.openCount
}

// Fraction returns the share of open sites, OpenSiteCount()/(n*n).
func (g *Grid) Fraction() float64 {
	return float64(g.openCount) / float64(g.n*g.n)
}

// Percolates reports whether the virtual top and bottom share a root.
// A grid with no open site never percolates; for n=1 the single cell wires
// top to bottom before it is opened.
func (g *Grid) Percolates() bool {
	if g.openCount == 0 {
		return false
	}

	return g.connected(g.top, g.bottom)
}

// index maps 1-indexed (row, col) to its union-find element.
func (g *Grid) index(row, col int) int {
	return col + (row-1)*g.n
}

// cell maps 1-indexed (row, col) to its slot in g.open.
func (g *Grid) cell(row, col int) int {
	return (row-1)*g.n + (col - 1)
}

func (g *Grid) isOpen(row, col int) bool {
	return g.open[g.cell(row, col)]
}

// union and connected only ever receive indices produced by index, top or
// bottom, all of which lie in [0, n*n+2); an error here is a broken invariant.
func (g *Grid) union(a, b int) {
	if err := g.uf.Union(a, b); err != nil {
		panic(fmt.Sprintf("percolation: union(%d,%d): %v", a, b, err))
	}
}

func (g *Grid) connected(a, b int) bool {
	ok, err := g.uf.Connected(a, b)
	if err != nil {
		panic(fmt.Sprintf("percolation: connected(%d,%d): %v", a, b, err))
	}
	return ok
}

func (g *Grid) validate(row, col int) error {
	if row < 1 || row > g.n {
		return fmt.Errorf("row %d not in [1,%d]: %w", row, g.n, ErrOutOfRange)
	}
	if col < 1 || col > g.n {
		return fmt.Errorf("column %d not in [1,%d]: %w", col, g.n, ErrOutOfRange)
	}

	return nil
}
