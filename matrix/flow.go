package matrix

// ComputeFlowsAndDescents implements spec.md §4.3: given the connection
// matrix for one path and the corpus size N, it derives the flow matrix
// (empirical probability of extending a shorter matching context by one
// more element) and the descent matrix (multiplicative drop in that
// probability one step further from the diagonal).
//
// flow(i,i)  = |C(i,i)| / N
// flow(i,j)  = |C(i,j)| / |C(step,j)|, step one position toward j
// descent(i,i) = 1
// descent(i,j) = flow(i,j) / flow(step,j), step one position away from j
//
// Both ratios divide by a size or flow that can legitimately be zero (an
// unattested context). A zero size denominator leaves that flow at 0.
// Per spec.md §9's open question on edge handling, a descent step that
// would fall outside [0,dim) or a zero flow denominator leaves the
// descent at the diagonal's value of 1 — "no drop detected". Neither
// case propagates a NaN or Inf into the significance search.
func ComputeFlowsAndDescents(cm *ConnectionMatrix, corpusSize int) (flow, descent *Dense, err error) {
	dim := cm.Dim()
	flow, err = NewDense(dim, 0)
	if err != nil {
		return nil, nil, err
	}
	descent, err = NewDense(dim, 1)
	if err != nil {
		return nil, nil, err
	}

	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			var f float64
			if i == j {
				if corpusSize > 0 {
					f = float64(cm.Size(i, i)) / float64(corpusSize)
				}
			} else {
				step := towardStep(i, j)
				denom := cm.Size(step, j)
				if denom > 0 {
					f = float64(cm.Size(i, j)) / float64(denom)
				}
			}
			if err := flow.Set(i, j, f); err != nil {
				return nil, nil, err
			}
		}
	}

	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i == j {
				continue // descent already seeded to 1
			}
			step := awayStep(i, j)
			if step < 0 || step >= dim {
				continue // edge fallback: leave at 1
			}
			fij, _ := flow.At(i, j)
			fstep, _ := flow.At(step, j)
			if fstep == 0 {
				continue // edge fallback: leave at 1
			}
			if err := descent.Set(i, j, fij/fstep); err != nil {
				return nil, nil, err
			}
		}
	}

	return flow, descent, nil
}

// towardStep returns the neighbour of i one position closer to j.
func towardStep(i, j int) int {
	if i < j {
		return i + 1
	}
	return i - 1
}

// awayStep returns the neighbour of i one position farther from j.
func awayStep(i, j int) int {
	if i < j {
		return i - 1
	}
	return i + 1
}
