// Package stats estimates the site-percolation threshold by Monte Carlo
// simulation and summarises the per-trial results.
//
// What:
//
//   - Run performs `tries` independent trials on fresh n×n grids. Each trial
//     opens sites in uniformly random order until the grid percolates and
//     records the fraction of open sites.
//   - Stats reports the sample mean, the spread and a 95% confidence interval.
//
// Spread:
//
//	Stddev returns max(|max−mean|, |min−mean|), the largest absolute deviation
//	from the mean, NOT the root-mean-square deviation. The confidence interval
//	is mean ± 1.96·spread/√tries.
//
// Determinism:
//
//	Trial i draws from its own math/rand stream derived from (seed, i), so a
//	given seed yields identical fractions for any worker count.
//
// Concurrency:
//
//	Trials run on up to WithWorkers goroutines. Each worker builds its own
//	percolation.Grid; nothing is shared between trials. Cancelling the
//	context stops outstanding trials and Run returns ctx.Err().
//
// Errors:
//
//   - ErrInvalidSize:  n <= 0.
//   - ErrInvalidTries: tries <= 0, or New called with no fractions.
//
// Both validation errors are reported together when both arguments are bad.
package stats
