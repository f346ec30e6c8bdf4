package generalise

import "errors"

var (
	// ErrContextTooSmall indicates context_size < 3, under which
	// generalisation is disabled by definition (spec.md §6).
	ErrContextTooSmall = errors.New("generalise: context_size must be at least 3")

	// ErrPathTooShort indicates the path is shorter than context_size.
	ErrPathTooShort = errors.New("generalise: path is shorter than context_size")
)
