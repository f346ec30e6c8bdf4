package significance

import (
	"github.com/adios/adios/mathx"
	"github.com/adios/adios/matrix"
)

// Candidate is a significant subrange found by FindBestPattern, together
// with the two boundary p-values that made it significant (spec.md §4.4).
type Candidate struct {
	Start, End    int
	LeftP, RightP float64
}

// Score is max(LeftP, RightP), the quantity candidates are ranked by.
func (c Candidate) Score() float64 {
	if c.LeftP > c.RightP {
		return c.LeftP
	}
	return c.RightP
}

// tailMemo memoises BinomialTailLE calls per (row, column) cell, exactly
// as spec.md §4.4 prescribes, so that evaluating many overlapping
// candidate ranges during one path's search never recomputes the same
// binomial tail twice.
type tailMemo struct {
	cache map[[2]int]float64
}

func newTailMemo() *tailMemo {
	return &tailMemo{cache: make(map[[2]int]float64)}
}

func (m *tailMemo) tail(row, col int, k, n uint, p float64) float64 {
	key := [2]int{row, col}
	if v, ok := m.cache[key]; ok {
		return v
	}
	v := mathx.BinomialTailLE(k, n, p)
	m.cache[key] = v
	return v
}

// FindBestPattern implements spec.md §4.4. It returns the significant
// candidate range minimising max(left_p, right_p); among exact ties the
// first one found (ascending Start, then ascending End) wins — no
// length-based tie-break is applied, per the open question in spec.md
// §9. ok is false if no candidate is significant, which is not an error
// (spec.md §7, NoPatternFound).
func FindBestPattern(flow, descent *matrix.Dense, conn *matrix.ConnectionMatrix, eta, alpha float64) (Candidate, bool, error) {
	dim := descent.Dim()
	if flow.Dim() != dim || conn.Dim() != dim {
		return Candidate{}, false, ErrDimensionMismatch
	}
	if dim == 0 {
		return Candidate{}, false, nil
	}

	memo := newTailMemo()

	hasLeftDrop := make([]bool, dim)
	hasRightDrop := make([]bool, dim)
	for s := 0; s < dim; s++ {
		for c := 0; c <= s; c++ {
			if d, err := descent.At(s, c); err == nil && d < eta {
				hasLeftDrop[s] = true
				break
			}
		}
	}
	for e := 0; e < dim; e++ {
		for c := e; c < dim; c++ {
			if d, err := descent.At(e, c); err == nil && d < eta {
				hasRightDrop[e] = true
				break
			}
		}
	}

	leftP := make([]float64, dim)
	leftOK := make([]bool, dim)
	for s := 1; s < dim; s++ {
		best := 1.0
		found := false
		for c := 0; c <= s; c++ {
			d, err := descent.At(s-1, c)
			if err != nil || d >= eta {
				continue
			}
			fl, err := flow.At(s, c)
			if err != nil {
				continue
			}
			n := uint(conn.Size(s, c))
			k := uint(conn.Size(s-1, c))
			tail := memo.tail(s-1, c, k, n, eta*mathx.Clamp01(fl))
			if !found || tail < best {
				best = tail
				found = true
			}
		}
		leftP[s] = best
		leftOK[s] = found
	}

	// The right-boundary tails use different (n, k, p) for the same
	// (row, column) key, so they get their own memo.
	memo = newTailMemo()
	rightP := make([]float64, dim)
	rightOK := make([]bool, dim)
	for e := 0; e < dim-1; e++ {
		best := 1.0
		found := false
		for c := e; c < dim; c++ {
			d, err := descent.At(e+1, c)
			if err != nil || d >= eta {
				continue
			}
			fl, err := flow.At(e, c)
			if err != nil {
				continue
			}
			n := uint(conn.Size(e, c))
			k := uint(conn.Size(e+1, c))
			tail := memo.tail(e+1, c, k, n, eta*mathx.Clamp01(fl))
			if !found || tail < best {
				best = tail
				found = true
			}
		}
		rightP[e] = best
		rightOK[e] = found
	}

	var best Candidate
	haveBest := false
	for s := 0; s < dim; s++ {
		if !hasLeftDrop[s] || !leftOK[s] || leftP[s] >= alpha {
			continue
		}
		for e := s; e < dim; e++ {
			if !hasRightDrop[e] || !rightOK[e] || rightP[e] >= alpha {
				continue
			}
			cand := Candidate{Start: s, End: e, LeftP: leftP[s], RightP: rightP[e]}
			if !haveBest || cand.Score() < best.Score() {
				best = cand
				haveBest = true
			}
		}
	}

	return best, haveBest, nil
}
