package generalise

// Params bundles the subset of spec.md §6's algorithm parameters that
// the generalisation step needs: the bootstrap window size, the
// overlap-reuse threshold, and the eta/alpha pair passed through
// unchanged to the significance kernel run on each simulated candidate.
type Params struct {
	ContextSize      int
	OverlapThreshold float64
	Eta              float64
	Alpha            float64
}

// Enabled reports whether generalisation applies to a path of the given
// length, per spec.md §6: context_size must be at least 3 and the path
// must be at least that long.
func (p Params) Enabled(pathLen int) bool {
	return p.ContextSize >= 3 && pathLen >= p.ContextSize
}
