package stats

import "errors"

var (
	// ErrInvalidSize indicates a grid dimension n <= 0.
	ErrInvalidSize = errors.New("stats: grid size must be positive")
	// ErrInvalidTries indicates a non-positive number of trials.
	ErrInvalidTries = errors.New("stats: number of tries must be positive")
)
