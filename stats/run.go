package stats

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/percolation/percolation"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Run estimates the percolation threshold of an n×n grid over tries
// independent trials and returns their statistics.
//
// Steps:
//  1. Validate n and tries; report every violation at once.
//  2. Schedule one job per trial on an errgroup limited to the configured workers.
//  3. Each trial opens sites of a fresh grid in random order until it
//     percolates and stores Fraction() at its own slot.
//  4. Reduce the fractions with New.
//
// Errors: ErrInvalidSize, ErrInvalidTries, or ctx.Err() on cancellation.
func Run(ctx context.Context, n, tries int, opts ...Option) (*Stats, error) {
	if err := validate(n, tries); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	log := cfg.logger.With(zap.Int("n", n), zap.Int("tries", tries))
	start := time.Now()

	// 1. Each trial writes only its own slot, so fractions needs no lock.
	fractions := make([]float64, tries)
	eg, egCtx := errgroup.WithContext(ctx)
	// 2. Go blocks once cfg.workers trials are in flight.
	eg.SetLimit(cfg.workers)
	for i := 0; i < tries; i++ {
		// Stop scheduling after cancellation or the first failed trial.
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			f, err := trial(egCtx, n, trialRNG(cfg.seed, i))
			if err != nil {
				return err
			}
			fractions[i] = f
			log.Debug("trial finished", zap.Int("trial", i), zap.Float64("fraction", f))
			return nil
		})
	}
	// 3. Wait for in-flight trials; a cancelled parent context wins over a clean finish.
	if err := eg.Wait(); err != nil {
		log.Warn("run aborted", zap.Error(err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, err := New(fractions)
	if err != nil {
		return nil, err
	}
	log.Info("run finished",
		zap.Int("workers", cfg.workers),
		zap.Float64("mean", s.Mean()),
		zap.Float64("stddev", s.Stddev()),
		zap.Duration("elapsed", time.Since(start)))

	return s, nil
}

// trial opens the sites of a fresh n×n grid in the order of a random
// permutation until it percolates and returns the open-site fraction.
// Opening every site always percolates, so the loop ends within n² steps.
func trial(ctx context.Context, n int, rng *rand.Rand) (float64, error) {
	g, err := percolation.NewGrid(n)
	if err != nil {
		return 0, err
	}
	for step, idx := range permutation(n*n, rng) {
		if step%n == 0 && ctx.Err() != nil {
			return 0, ctx.Err()
		}
		if err := g.OpenIndex(idx); err != nil {
			return 0, err
		}
		if g.Percolates() {
			return g.Fraction(), nil
		}
	}

	return 0, fmt.Errorf("trial: %d×%d grid fully open without percolating", n, n)
}

func validate(n, tries int) error {
	var err error
	if n <= 0 {
		err = multierr.Append(err, fmt.Errorf("n=%d: %w", n, ErrInvalidSize))
	}
	if tries <= 0 {
		err = multierr.Append(err, fmt.Errorf("tries=%d: %w", tries, ErrInvalidTries))
	}

	return err
}
