package matrix

import "errors"

// Sentinel errors returned by the matrix package, following the same
// "plain sentinel, no wrapping" convention as the teacher's matrix/errors.go.
var (
	// ErrBadShape is returned when a requested Dense shape is invalid.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row/column index outside a matrix's bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrEmptyPath indicates BuildConnections was called with an empty path.
	ErrEmptyPath = errors.New("matrix: path is empty")
)
