package percolation_test

import (
	"fmt"

	"github.com/katalvlaran/percolation/percolation"
)

// ExampleGrid demonstrates percolation on a 3×3 grid by opening the left column.
//
//	X . .
//	X . .
//	X . .
func ExampleGrid() {
	g, err := percolation.NewGrid(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for row := 1; row <= 3; row++ {
		_ = g.Open(row, 1)
		full, _ := g.IsFull(row, 1)
		fmt.Printf("open (%d,1): full=%v percolates=%v\n", row, full, g.Percolates())
	}
	fmt.Printf("open sites: %d (%.3f)\n", g.OpenSiteCount(), g.Fraction())

	// Output:
	// open (1,1): full=true percolates=false
	// open (2,1): full=true percolates=false
	// open (3,1): full=true percolates=true
	// open sites: 3 (0.333)
}

// ExampleGrid_Open_outOfRange shows the sentinel returned for bad coordinates.
func ExampleGrid_Open_outOfRange() {
	g, _ := percolation.NewGrid(3)
	err := g.Open(0, 1)
	fmt.Println(err)
	// Output: row 0 not in [1,3]: percolation: site coordinates out of range
}
