// Command percolation estimates the site-percolation threshold of an n×n
// grid by Monte Carlo simulation.
//
//	percolation <n> <tries>
//
// It prints the mean, the spread and the 95% confidence interval of the
// per-trial thresholds.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"
)

// buildLogger is swapped out in tests.
var buildLogger = newLogger

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command and returns the process exit status.
// Failures before the logger exists go straight to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger, err := buildLogger()
	if err != nil {
		fmt.Fprintf(stderr, "percolation: cannot build logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	cmd := newRootCommand(logger)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.Error("percolation failed", zap.Error(err))
		return 1
	}

	return 0
}

// newLogger builds a production logger writing warnings and errors to stderr.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
