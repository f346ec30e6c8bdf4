package generalise

import "github.com/adios/adios/rdsgraph"

// bootstrap implements spec.md §4.5 step 1: it scans every path in the
// graph for occurrences that coincide with the window
// path[start..start+contextSize-1] at its two endpoints, and for each
// interior slot gathers the distinct node ids seen there, in first-seen
// order. The window's own path always coincides with itself, so the
// returned map is never completely empty.
func bootstrap(g *rdsgraph.Graph, path rdsgraph.Path, start, contextSize int) (map[int][]rdsgraph.NodeID, error) {
	first := path[start]
	last := path[start+contextSize-1]

	encountered := make(map[int][]rdsgraph.NodeID)
	seen := make(map[int]map[rdsgraph.NodeID]bool)

	for p := 0; p < g.NumPaths(); p++ {
		other, err := g.Path(rdsgraph.PathID(p))
		if err != nil {
			return nil, err
		}
		for i := 0; i+contextSize-1 < len(other); i++ {
			if !g.Matches(first, other[i]) || !g.Matches(last, other[i+contextSize-1]) {
				continue
			}
			for k := 1; k < contextSize-1; k++ {
				id := other[i+k]
				if seen[k] == nil {
					seen[k] = make(map[rdsgraph.NodeID]bool)
				}
				if seen[k][id] {
					continue
				}
				seen[k][id] = true
				encountered[k] = append(encountered[k], id)
			}
		}
	}

	return encountered, nil
}

// bestOverlapMatch implements spec.md §9's overlap arithmetic: it finds
// the existing EquivalenceClass whose member set M maximises
// |raw ∩ M| / |M|, and reports it only if that ratio clears threshold.
// Ties favour the lowest node id, matching the "first found" convention
// used throughout this codebase's selection logic.
func bestOverlapMatch(g *rdsgraph.Graph, raw []rdsgraph.NodeID, threshold float64) (id rdsgraph.NodeID, ratio float64, found bool) {
	rawSet := make(map[rdsgraph.NodeID]bool, len(raw))
	for _, id := range raw {
		rawSet[id] = true
	}

	for i := 0; i < g.NumNodes(); i++ {
		n, err := g.Node(rdsgraph.NodeID(i))
		if err != nil || n.Kind() != rdsgraph.KindEquivalenceClass {
			continue
		}
		members := n.Lexicon.Members()
		if len(members) == 0 {
			continue
		}
		inter := 0
		for _, m := range members {
			if rawSet[m] {
				inter++
			}
		}
		r := float64(inter) / float64(len(members))
		if r < threshold {
			continue
		}
		if !found || r > ratio {
			id, ratio, found = rdsgraph.NodeID(i), r, true
		}
	}

	return id, ratio, found
}

// intersectKeepOrder returns the elements of raw that also belong to
// members, preserving raw's order (spec.md §4.5 step 6's "overlap
// restriction" when an existing class is only a partial match).
func intersectKeepOrder(raw, members []rdsgraph.NodeID) []rdsgraph.NodeID {
	memberSet := make(map[rdsgraph.NodeID]bool, len(members))
	for _, m := range members {
		memberSet[m] = true
	}
	out := make([]rdsgraph.NodeID, 0, len(raw))
	for _, id := range raw {
		if memberSet[id] {
			out = append(out, id)
		}
	}
	return out
}
