package main

import (
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/katalvlaran/percolation/stats"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// newRootCommand wires the positional <n> <tries> arguments to stats.Run.
func newRootCommand(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:           "percolation <n> <tries>",
		Short:         "Estimate the percolation threshold of an n×n grid by Monte Carlo simulation.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		// No flags: "-5" is a (rejected) grid size, not a shorthand flag.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, tries, err := parseArgs(args)
			if err != nil {
				return err
			}
			s, err := stats.Run(cmd.Context(), n, tries,
				stats.WithSeed(time.Now().UnixNano()),
				stats.WithWorkers(runtime.GOMAXPROCS(0)),
				stats.WithLogger(logger))
			if err != nil {
				return err
			}
			printStats(cmd, s)
			return nil
		},
	}
}

// parseArgs converts <n> and <tries> to integers, reporting both failures at once.
// Range checks are left to stats.Run.
func parseArgs(args []string) (n, tries int, err error) {
	n, errN := strconv.Atoi(args[0])
	if errN != nil {
		err = multierr.Append(err, fmt.Errorf("invalid grid size %q: %w", args[0], errN))
	}
	tries, errT := strconv.Atoi(args[1])
	if errT != nil {
		err = multierr.Append(err, fmt.Errorf("invalid number of tries %q: %w", args[1], errT))
	}

	return n, tries, err
}

func printStats(cmd *cobra.Command, s *stats.Stats) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "mean = %v\n", s.Mean())
	fmt.Fprintf(out, "stddev = %v\n", s.Stddev())
	fmt.Fprintf(out, "95%% confidence interval = %v, %v\n", s.ConfidenceLo(), s.ConfidenceHi())
}
