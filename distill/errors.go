package distill

import "errors"

// Sentinel errors returned by Distill (spec.md §7's error taxonomy).
var (
	// ErrInvalidParameters indicates eta, alpha, or overlap_threshold fell
	// outside [0,1], or context_size was negative.
	ErrInvalidParameters = errors.New("distill: eta, alpha, and overlap_threshold must be in [0,1], context_size must be >= 0")

	// ErrEmptyCorpus indicates Distill was called with no sequences.
	ErrEmptyCorpus = errors.New("distill: corpus is empty")
)
