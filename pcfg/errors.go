package pcfg

import "errors"

// ErrNoPaths indicates GenerateRandomPath was called on a graph with no
// stored paths to sample from.
var ErrNoPaths = errors.New("pcfg: graph has no paths to sample")
