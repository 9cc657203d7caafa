package percolation

import "errors"

var (
	// ErrInvalidSize indicates a grid dimension n <= 0.
	ErrInvalidSize = errors.New("percolation: grid size must be positive")
	// ErrOutOfRange indicates a row or column outside [1, n].
	ErrOutOfRange = errors.New("percolation: site coordinates out of range")
)
