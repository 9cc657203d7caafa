package unionfind

import "errors"

var (
	// ErrInvalidSize indicates a DisjointSet was requested with a non-positive number of elements.
	ErrInvalidSize = errors.New("unionfind: size must be positive")
	// ErrIndexOutOfRange indicates an element index outside [0, N).
	ErrIndexOutOfRange = errors.New("unionfind: index out of range")
)
