package pcfg

import "github.com/adios/adios/rdsgraph"

// Grammar holds the production counts recovered from a distilled graph's
// parse trees (spec.md §4.9) and the graph they were estimated from, so
// Emit can resolve child names.
type Grammar struct {
	g *rdsgraph.Graph

	patternOccurrences map[rdsgraph.NodeID]int
	ecMemberUses       map[rdsgraph.NodeID]map[rdsgraph.NodeID]int
	sRules             []sRule
	totalSentences     int
}

type sRule struct {
	seq   []rdsgraph.NodeID
	count int
}

// Estimate walks every path's parse tree and tallies, per spec.md §4.9:
// one occurrence per Pattern node per interior tree node labelled with
// it, one use per member per EquivalenceClass node's single-child
// interior tree node, and one S-rule occurrence per distinct top-level
// sequence (the path with its Start/End sentinels dropped).
func Estimate(g *rdsgraph.Graph) (*Grammar, error) {
	gram := &Grammar{
		g:                  g,
		patternOccurrences: make(map[rdsgraph.NodeID]int),
		ecMemberUses:       make(map[rdsgraph.NodeID]map[rdsgraph.NodeID]int),
	}

	for p := 0; p < g.NumPaths(); p++ {
		tree, err := g.Tree(rdsgraph.PathID(p))
		if err != nil {
			return nil, err
		}
		for _, in := range tree.Interior() {
			kind, err := g.Kind(in.Value)
			if err != nil {
				return nil, err
			}
			switch kind {
			case rdsgraph.KindPattern:
				gram.patternOccurrences[in.Value]++
			case rdsgraph.KindEquivalenceClass:
				if len(in.Children) != 1 {
					continue
				}
				uses := gram.ecMemberUses[in.Value]
				if uses == nil {
					uses = make(map[rdsgraph.NodeID]int)
					gram.ecMemberUses[in.Value] = uses
				}
				uses[in.Children[0]]++
			}
		}
	}

	seqIndex := make(map[string]int)
	for p := 0; p < g.NumPaths(); p++ {
		path, err := g.Path(rdsgraph.PathID(p))
		if err != nil {
			return nil, err
		}
		interior := append([]rdsgraph.NodeID(nil), path[1:len(path)-1]...)
		key := sequenceKey(interior)
		if idx, ok := seqIndex[key]; ok {
			gram.sRules[idx].count++
			continue
		}
		seqIndex[key] = len(gram.sRules)
		gram.sRules = append(gram.sRules, sRule{seq: interior, count: 1})
	}
	gram.totalSentences = g.NumPaths()

	return gram, nil
}

func sequenceKey(seq []rdsgraph.NodeID) string {
	b := make([]byte, 0, len(seq)*5)
	for _, id := range seq {
		b = append(b, byte(id>>24), byte(id>>16), byte(id>>8), byte(id), ',')
	}
	return string(b)
}
