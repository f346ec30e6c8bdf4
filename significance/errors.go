package significance

import "errors"

// ErrDimensionMismatch indicates the flow, descent, and connection
// matrices passed to FindBestPattern were not all built for the same
// path length.
var ErrDimensionMismatch = errors.New("significance: matrix dimensions do not match")
