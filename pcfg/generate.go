package pcfg

import (
	"math/rand"

	"github.com/adios/adios/rdsgraph"
)

// GenerateNode implements spec.md §4.10's generate(node): Start and End
// expand to their sentinel strings, a Terminal to its symbol, an
// EquivalenceClass to a uniformly random member (recursively expanded),
// and a Pattern to the concatenation of its children's expansions in
// order. rng must be non-nil; spec.md §5 requires all randomness to flow
// from one deterministic, host-supplied source.
func GenerateNode(g *rdsgraph.Graph, id rdsgraph.NodeID, rng *rand.Rand) ([]string, error) {
	n, err := g.Node(id)
	if err != nil {
		return nil, err
	}

	switch n.Kind() {
	case rdsgraph.KindStart:
		return []string{"*"}, nil
	case rdsgraph.KindEnd:
		return []string{"#"}, nil
	case rdsgraph.KindTerminal:
		return []string{n.Lexicon.Symbol()}, nil
	case rdsgraph.KindEquivalenceClass:
		members := n.Lexicon.Members()
		if len(members) == 0 {
			return nil, nil // defensive: corrupt graph, skip rather than panic (spec.md §7)
		}
		choice := members[rng.Intn(len(members))]
		return GenerateNode(g, choice, rng)
	case rdsgraph.KindPattern:
		var out []string
		for _, c := range n.Lexicon.Children() {
			expanded, err := GenerateNode(g, c, rng)
			if err != nil {
				return nil, err
			}
			out = append(out, expanded...)
		}
		return out, nil
	default:
		return nil, nil
	}
}

// Generate expands node 0 — the Start sentinel — per spec.md §4.10's
// literal no-argument convention. It is rarely useful on its own; most
// callers want GenerateRandomPath.
func Generate(g *rdsgraph.Graph, rng *rand.Rand) ([]string, error) {
	return GenerateNode(g, rdsgraph.StartID, rng)
}

// GenerateRandomPath implements the "useful entry" spec.md §4.10
// describes: it picks one of the graph's stored paths uniformly at
// random and expands every element between its Start and End sentinels,
// returning the flat token sequence — the same shape as one input
// corpus sentence.
func GenerateRandomPath(g *rdsgraph.Graph, rng *rand.Rand) ([]string, error) {
	if g.NumPaths() == 0 {
		return nil, ErrNoPaths
	}
	p, err := g.Path(rdsgraph.PathID(rng.Intn(g.NumPaths())))
	if err != nil {
		return nil, err
	}
	if len(p) < 2 {
		return nil, nil
	}

	var out []string
	for _, id := range p[1 : len(p)-1] {
		expanded, err := GenerateNode(g, id, rng)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}
