// Package percolation models site percolation on an n×n grid on top of a
// weighted union-find.
//
// What:
//
//   - Grid holds n×n sites, each Blocked or Open (Blocked → Open only).
//   - Open sites are joined to their open orthogonal neighbours (N, E, S, W).
//   - Two virtual sites, top and bottom, are pre-joined to every cell of the
//     first and last row, so "connected to the top row" is a single Find.
//   - The grid percolates when top and bottom share a root.
//
// Why:
//
//   - Percolation threshold estimation (Monte Carlo), porous media, wildfire
//     and epidemic spreading toy models.
//
// Coordinates:
//
//	Rows and columns are 1-indexed: (1,1) is the top-left site, (n,n) the
//	bottom-right. Site (row, col) is union-find element col + (row-1)*n;
//	element 0 is the virtual top, element n*n+1 the virtual bottom.
//
// Fullness:
//
//	Because the virtual sites are wired before any site opens, a blocked
//	first-row site already shares a root with top. IsFull therefore checks
//	openness first; a blocked site is never full. Percolates likewise
//	reports false while no site is open, which matters for n=1.
//
//	A single structure is shared by both virtual sites, so once the grid
//	percolates an open bottom-row cluster with no path of its own to the
//	top also reads as full ("backwash"). Percolates and the open-site count
//	are exact; callers needing exact fullness after percolation should
//	track it separately.
//
// Complexity:
//
//   - NewGrid:       O(n²) time and memory.
//   - Open:          up to four unions, amortized close to O(1).
//   - IsFull:        two Finds.
//   - Percolates:    two Finds.
//
// Errors:
//
//   - ErrInvalidSize: NewGrid called with n <= 0.
//   - ErrOutOfRange:  row or column outside [1, n], or site index outside [0, n²).
package percolation
