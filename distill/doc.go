// Package distill implements the outer fixed-point driver described in
// spec.md §4.7: repeatedly sweep every path, running the plain or
// generalised significance search depending on context_size and path
// length, rewiring whatever is found, until a full sweep changes
// nothing. It then estimates production probabilities and hands back a
// Result carrying the final graph, the emitted grammar, and this run's
// telemetry counters.
//
// Complexity:
//
//   - Time: O(iterations × paths × L²) where L is the longest path —
//     each path sweep rebuilds an O(L²) connection matrix per candidate
//     boundary search, and generalisation multiplies that by one
//     simulated clone per interior slot of every context window.
//   - Space: O(corpus size) for the live graph, plus one throwaway clone
//     during each generalisation probe.
//
// Options:
//
//   - WithEta, WithAlpha: the significance kernel's descent threshold and
//     p-value cutoff (spec.md §6), both required in [0,1].
//   - WithContextSize, WithOverlapThreshold: generalisation's bootstrap
//     window size and equivalence-class reuse threshold.
//   - WithLogger: receives one line per outer-loop iteration and per
//     installed pattern; defaults to a no-op logger.
//   - WithRand: stores an RNG in the resolved Options. Distill itself
//     draws no random numbers and does not return the RNG in its Result;
//     sequence generation (pcfg) takes its own *rand.Rand argument.
//
// Errors (sentinel):
//
//   - ErrInvalidParameters if eta, alpha, or overlap_threshold falls
//     outside [0,1], or context_size is negative.
//   - ErrEmptyCorpus if no sequences were supplied.
//
// Example usage:
//
//	result, err := distill.Distill(sequences,
//	    distill.WithEta(0.9),
//	    distill.WithAlpha(0.01),
//	    distill.WithContextSize(3),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	result.Grammar.Emit(&buf)
package distill
