package generalise

import (
	"github.com/adios/adios/matrix"
	"github.com/adios/adios/rdsgraph"
	"github.com/adios/adios/significance"
)

// Result is a single accepted generalisation candidate (spec.md §4.5
// steps 4-6), ready to be applied to the real graph with Commit.
type Result struct {
	Path    rdsgraph.PathID
	Slot    int // absolute offset in Path where the class was substituted
	Pattern significance.Candidate

	Members       []rdsgraph.NodeID // the class's member set
	ReuseExisting rdsgraph.NodeID   // valid iff IsNewEC is false
	IsNewEC       bool
}

// Search implements spec.md §4.5 steps 1-5 for a single path: it slides
// every context window across the path, bootstraps and overlap-matches
// each interior slot, simulates the resulting candidate on a disposable
// clone, and keeps the single significant candidate with the smallest
// max(left_p, right_p). ok is false if no window produced an accepted
// candidate — spec.md §7's OverlapEmpty, not an error.
func Search(g *rdsgraph.Graph, p rdsgraph.PathID, params Params) (Result, bool, error) {
	path, err := g.Path(p)
	if err != nil {
		return Result{}, false, err
	}
	if !params.Enabled(len(path)) {
		return Result{}, false, nil
	}

	var best Result
	haveBest := false

	for start := 0; start+params.ContextSize <= len(path); start++ {
		encountered, err := bootstrap(g, path, start, params.ContextSize)
		if err != nil {
			return Result{}, false, err
		}

		for k := 1; k < params.ContextSize-1; k++ {
			raw := encountered[k]
			if len(raw) <= 1 {
				continue
			}

			existing, ratio, found := bestOverlapMatch(g, raw, params.OverlapThreshold)

			var (
				members []rdsgraph.NodeID
				reuse   rdsgraph.NodeID
				isNew   bool
			)
			switch {
			case found && ratio >= 1.0:
				reuse, isNew = existing, false
			case found:
				existingNode, err := g.Node(existing)
				if err != nil {
					return Result{}, false, err
				}
				members = intersectKeepOrder(raw, existingNode.Lexicon.Members())
				isNew = true
			default:
				members, isNew = raw, true
			}
			if isNew && len(members) <= 1 {
				continue
			}

			absSlot := start + k
			cand, ok, err := simulate(g, p, path, absSlot, members, reuse, isNew, params)
			if err != nil {
				return Result{}, false, err
			}
			if !ok {
				continue
			}
			// spec.md §4.5: a new EC is only accepted if its slot lies
			// strictly inside the significant pattern range.
			if absSlot <= cand.Pattern.Start || absSlot >= cand.Pattern.End {
				continue
			}

			if !haveBest || cand.Pattern.Score() < best.Pattern.Score() {
				best, haveBest = cand, true
			}
		}
	}

	return best, haveBest, nil
}

// simulate implements spec.md §4.5 step 4: it clones the graph, installs
// the hypothetical equivalence class (or reuses an existing one
// wholesale), substitutes it into the cloned path at slot, and runs the
// significance kernel over the resulting matrices.
func simulate(g *rdsgraph.Graph, p rdsgraph.PathID, path rdsgraph.Path, slot int, members []rdsgraph.NodeID, reuse rdsgraph.NodeID, isNew bool, params Params) (Result, bool, error) {
	clone := g.Clone()

	substID := reuse
	if isNew {
		substID = clone.AddNode(rdsgraph.EquivalenceClass(members))
	}

	simPath := path.Clone()
	simPath[slot] = substID
	if err := clone.SetPath(p, simPath); err != nil {
		return Result{}, false, err
	}
	clone.RebuildIndices()

	cm, err := matrix.BuildConnections(clone, simPath)
	if err != nil {
		return Result{}, false, err
	}
	flow, descent, err := matrix.ComputeFlowsAndDescents(cm, clone.CorpusSize())
	if err != nil {
		return Result{}, false, err
	}
	cand, ok, err := significance.FindBestPattern(flow, descent, cm, params.Eta, params.Alpha)
	if err != nil || !ok {
		return Result{}, false, err
	}

	return Result{
		Path:          p,
		Slot:          slot,
		Pattern:       cand,
		Members:       members,
		ReuseExisting: reuse,
		IsNewEC:       isNew,
	}, true, nil
}

// Commit implements spec.md §4.5 step 6 and §4.6's note on
// EquivalenceClass installation: it installs the winning candidate's
// class for real (if new), substitutes it into the live path and parse
// tree, and then rewires the significant pattern range over every
// corpus occurrence of that range, not just the one found in r.Path
// (spec.md §4.4/§8 scenario 2 — a shared Pattern node, not one per
// path). It returns the installed equivalence-class id (or the reused
// one), the new pattern id, and the number of occurrences rewired.
func Commit(g *rdsgraph.Graph, r Result) (ecID, patternID rdsgraph.NodeID, rewired int, err error) {
	ecID = r.ReuseExisting
	if r.IsNewEC {
		ecID, _, err = g.InstallEquivalenceClass(r.Members, nil)
		if err != nil {
			return 0, 0, 0, err
		}
	}

	tree, err := g.Tree(r.Path)
	if err != nil {
		return 0, 0, 0, err
	}
	if err := tree.RewireChild(r.Slot, ecID); err != nil {
		return 0, 0, 0, err
	}

	path, err := g.Path(r.Path)
	if err != nil {
		return 0, 0, 0, err
	}
	newPath := path.Substitute(r.Slot, r.Slot, rdsgraph.Path{ecID})
	if err := g.SetPath(r.Path, newPath); err != nil {
		return 0, 0, 0, err
	}

	// Re-derive the occurrence set against the real, substituted graph
	// rather than reusing the disposable clone's matrix from simulate:
	// the winning pattern range is already known (r.Pattern.Start/End),
	// and rebuilding here sidesteps any question of whether the clone's
	// synthetic equivalence-class id still lines up with the one just
	// installed above.
	cm, err := matrix.BuildConnections(g, newPath)
	if err != nil {
		return ecID, 0, 0, err
	}
	occurrences, err := cm.At(r.Pattern.End, r.Pattern.Start)
	if err != nil {
		return ecID, 0, 0, err
	}

	children := append(rdsgraph.Path(nil), newPath[r.Pattern.Start:r.Pattern.End+1]...)
	patternID, rewired, err = g.InstallPattern(children, occurrences)
	if err != nil {
		return ecID, 0, 0, err
	}

	return ecID, patternID, rewired, nil
}
