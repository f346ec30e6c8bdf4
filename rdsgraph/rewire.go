package rdsgraph

import "sort"

// InstallPattern implements spec.md §4.6: it appends a new Pattern node
// carrying children, then applies connections (each naming a path offset
// where the pattern was found to occur) by sorting them lexicographically
// by (path, offset), dropping any connection that overlaps a previously
// accepted one within the same path, and applying the surviving
// connections in descending offset order so that earlier offsets in the
// same path are never invalidated by an earlier (leftward) rewiring.
// Before collapsing a connection's range in the parse tree, any position
// where the path's actual node differs from the pattern's child (i.e. the
// pattern holds an EquivalenceClass id there and the path holds one of
// its members) is first individually rewired under that pattern child,
// inserting an intermediate EC node so the parse tree still records which
// member was actually matched (spec.md §4.6 step 3a). RebuildIndices is always
// called last, even if no connection survives deduplication, so callers
// never have to remember to do it themselves.
//
// An empty connections slice is legal and simply installs an "unrooted"
// Pattern/EquivalenceClass node with no occurrences yet rewritten into any
// path — used by the generalisation commit step to install a brand-new
// EquivalenceClass before the pattern range around it is rewired
// (spec.md §4.6, last paragraph).
//
// InstallPattern's second return value is the number of connections
// actually rewired once overlapping occurrences in the same path have
// been dropped (spec.md §4.6 step 2) — callers use it to drive
// telemetry's rewiring_count() accurately rather than counting one
// rewiring per call regardless of how many occurrences it covered.
func (g *Graph) InstallPattern(children []NodeID, connections []Connection) (NodeID, int, error) {
	newNode := g.AddNode(Pattern(children))
	n, err := g.applyConnections(newNode, children, connections)
	if err != nil {
		return newNode, n, err
	}
	return newNode, n, nil
}

// InstallEquivalenceClass appends a new EquivalenceClass node carrying
// members and, if connections is non-empty, rewires each of them to point
// at it (pattern length 1). In the generalisation flow this is almost
// always called with an empty connections slice (spec.md §4.6).
func (g *Graph) InstallEquivalenceClass(members []NodeID, connections []Connection) (NodeID, int, error) {
	if len(members) == 0 {
		return 0, 0, ErrEmptyEquivalenceClass
	}
	newNode := g.AddNode(EquivalenceClass(members))
	n, err := g.applyConnections(newNode, []NodeID{newNode}, connections)
	if err != nil {
		return newNode, n, err
	}
	return newNode, n, nil
}

func (g *Graph) applyConnections(newNode NodeID, pattern []NodeID, connections []Connection) (int, error) {
	if len(connections) == 0 {
		g.RebuildIndices()
		return 0, nil
	}
	patternLen := len(pattern)

	sorted := append([]Connection(nil), connections...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Path != sorted[j].Path {
			return sorted[i].Path < sorted[j].Path
		}
		return sorted[i].Offset < sorted[j].Offset
	})

	accepted := sorted[:0:0]
	for _, c := range sorted {
		if len(accepted) > 0 {
			last := accepted[len(accepted)-1]
			if c.Path == last.Path && c.Offset <= last.Offset+patternLen-1 {
				continue // overlaps the last accepted connection in this path
			}
		}
		accepted = append(accepted, c)
	}

	for i := len(accepted) - 1; i >= 0; i-- {
		c := accepted[i]
		if err := g.rewireOne(newNode, pattern, c); err != nil {
			return 0, err
		}
	}

	g.RebuildIndices()
	return len(accepted), nil
}

func (g *Graph) rewireOne(newNode NodeID, pattern []NodeID, c Connection) error {
	path, err := g.Path(c.Path)
	if err != nil {
		return err
	}
	patternLen := len(pattern)
	if c.Offset < 0 || c.Offset+patternLen-1 >= len(path) {
		return ErrRangeOutOfBounds
	}
	tree, err := g.Tree(c.Path)
	if err != nil {
		return err
	}

	for j := 0; j < patternLen; j++ {
		if path[c.Offset+j] != pattern[j] {
			if err := tree.RewireChild(c.Offset+j, pattern[j]); err != nil {
				return err
			}
		}
	}
	if err := tree.Rewire(c.Offset, c.Offset+patternLen-1, newNode); err != nil {
		return err
	}

	newPath := path.Rewire(c.Offset, c.Offset+patternLen-1, newNode)
	return g.SetPath(c.Path, newPath)
}
