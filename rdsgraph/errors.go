package rdsgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the rdsgraph package.
var (
	// ErrEmptyCorpus indicates NewGraph was called with no sequences.
	ErrEmptyCorpus = errors.New("rdsgraph: corpus is empty")

	// ErrEmptyToken indicates a sequence contained an empty token string.
	ErrEmptyToken = errors.New("rdsgraph: token is empty")

	// ErrNodeNotFound indicates a NodeID outside the node arena was referenced.
	ErrNodeNotFound = errors.New("rdsgraph: node not found")

	// ErrPathNotFound indicates a PathID outside the path list was referenced.
	ErrPathNotFound = errors.New("rdsgraph: path not found")

	// ErrNotEquivalenceClass indicates an operation expected an EquivalenceClass node.
	ErrNotEquivalenceClass = errors.New("rdsgraph: node is not an equivalence class")

	// ErrNotPattern indicates an operation expected a Pattern node.
	ErrNotPattern = errors.New("rdsgraph: node is not a pattern")

	// ErrRangeOutOfBounds indicates a rewiring range fell outside a path or parse tree.
	ErrRangeOutOfBounds = errors.New("rdsgraph: range out of bounds")

	// ErrEmptyEquivalenceClass indicates an equivalence class would be installed with no members.
	ErrEmptyEquivalenceClass = errors.New("rdsgraph: equivalence class has no members")
)

// InconsistencyError reports a broken graph invariant (spec.md §8, I1-I4).
// Any occurrence is a programming error: there is no recovery path, per
// the error taxonomy in spec.md §7 ("InternalInconsistency... abort: this
// is a bug").
type InconsistencyError struct {
	Invariant string // short invariant tag, e.g. "I1", "I3"
	Detail    string
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("rdsgraph: internal inconsistency (%s): %s", e.Invariant, e.Detail)
}

func inconsistency(invariant, format string, args ...interface{}) *InconsistencyError {
	return &InconsistencyError{Invariant: invariant, Detail: fmt.Sprintf(format, args...)}
}
