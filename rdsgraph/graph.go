package rdsgraph

// StartID and EndID are the reserved node ids for the unique Start and End
// sentinels, present in every path as its first and last element
// (spec.md §3).
const (
	StartID NodeID = 0
	EndID   NodeID = 1
)

// Graph is the mutable RDS hypergraph: a node arena, a parallel path list,
// and one ParseTree per path (spec.md §3). Graph is not safe for
// concurrent use — the ADIOS algorithm is single-threaded by design
// (spec.md §5). InstallPattern and InstallEquivalenceClass leave the graph
// in a state that satisfies (I1)-(I4) or return an error. The lower-level
// SetPath and AddNode only replace a path or append a node: they do not
// rebuild the connection/parent indices and do not touch parse trees, so
// (I1)-(I4) do not hold again until RebuildIndices has run and each
// changed path's parse tree has been rewired to match it.
type Graph struct {
	nodes      []*Node
	paths      []Path
	trees      []*ParseTree
	corpusSize int

	internTerm map[string]NodeID // token -> terminal NodeID, construction-time only
}

// NewGraph performs spec.md §4.1's five-step initial construction: installs
// Start/End, interns one Terminal node per distinct token (in first-seen
// order), builds one Path per input sequence bracketed by Start/End, a
// matching ParseTree per path, and rebuilds the connection/parent indices.
func NewGraph(sequences [][]string) (*Graph, error) {
	if len(sequences) == 0 {
		return nil, ErrEmptyCorpus
	}

	g := &Graph{
		internTerm: make(map[string]NodeID),
	}
	g.nodes = append(g.nodes, &Node{Lexicon: Start()})
	g.nodes = append(g.nodes, &Node{Lexicon: End()})

	for _, seq := range sequences {
		for _, tok := range seq {
			if tok == "" {
				return nil, ErrEmptyToken
			}
			if _, ok := g.internTerm[tok]; !ok {
				id := NodeID(len(g.nodes))
				g.nodes = append(g.nodes, &Node{Lexicon: Terminal(tok)})
				g.internTerm[tok] = id
			}
		}
	}

	for _, seq := range sequences {
		path := make(Path, 0, len(seq)+2)
		path = append(path, StartID)
		for _, tok := range seq {
			path = append(path, g.internTerm[tok])
		}
		path = append(path, EndID)
		g.paths = append(g.paths, path)
		g.trees = append(g.trees, NewParseTree(path))
	}

	g.RebuildIndices()

	return g, nil
}

// NumNodes returns the size of the node arena.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumPaths returns the number of paths (sentences) in the graph.
func (g *Graph) NumPaths() int { return len(g.paths) }

// CorpusSize returns Σ|paths[p]|, recomputed at every RebuildIndices call.
func (g *Graph) CorpusSize() int { return g.corpusSize }

// Path returns a copy of the path with id p.
func (g *Graph) Path(p PathID) (Path, error) {
	if int(p) < 0 || int(p) >= len(g.paths) {
		return nil, ErrPathNotFound
	}
	return g.paths[p].Clone(), nil
}

// PathLen returns len(paths[p]) without cloning the path.
func (g *Graph) PathLen(p PathID) (int, error) {
	if int(p) < 0 || int(p) >= len(g.paths) {
		return 0, ErrPathNotFound
	}
	return len(g.paths[p]), nil
}

// PathAt returns paths[p][offset] without cloning the path.
func (g *Graph) PathAt(p PathID, offset int) (NodeID, error) {
	if int(p) < 0 || int(p) >= len(g.paths) {
		return 0, ErrPathNotFound
	}
	path := g.paths[p]
	if offset < 0 || offset >= len(path) {
		return 0, ErrRangeOutOfBounds
	}
	return path[offset], nil
}

// SetPath replaces the path with id p.
func (g *Graph) SetPath(p PathID, path Path) error {
	if int(p) < 0 || int(p) >= len(g.paths) {
		return ErrPathNotFound
	}
	g.paths[p] = path
	return nil
}

// Tree returns the parse tree for path id p.
func (g *Graph) Tree(p PathID) (*ParseTree, error) {
	if int(p) < 0 || int(p) >= len(g.trees) {
		return nil, ErrPathNotFound
	}
	return g.trees[p], nil
}

func (g *Graph) node(id NodeID) (*Node, error) {
	if int(id) < 0 || int(id) >= len(g.nodes) {
		return nil, ErrNodeNotFound
	}
	return g.nodes[id], nil
}

// Node returns the node with the given id.
func (g *Graph) Node(id NodeID) (*Node, error) { return g.node(id) }

// Kind returns the NodeKind of id, or an error if id is out of range.
func (g *Graph) Kind(id NodeID) (NodeKind, error) {
	n, err := g.node(id)
	if err != nil {
		return 0, err
	}
	return n.Kind(), nil
}

// Matches reports whether node `candidate` matches pattern-element `want`
// at one position of a connection-matrix comparison (spec.md §4.2): an
// EquivalenceClass matches any of its members, every other kind matches
// only by identity.
func (g *Graph) Matches(want, candidate NodeID) bool {
	if want == candidate {
		return true
	}
	n, err := g.node(want)
	if err != nil || n.Kind() != KindEquivalenceClass {
		return false
	}
	return n.Lexicon.HasMember(candidate)
}

// AddNode appends a new node to the arena and returns its id. Used by the
// rewiring operator to install Pattern/EquivalenceClass nodes.
func (g *Graph) AddNode(u LexiconUnit) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, &Node{Lexicon: u})
	return id
}

// RebuildIndices implements spec.md §4.8: clears every node's Connections
// and Parents, then rebuilds them in one pass over all paths (forward
// index) and all Pattern/EquivalenceClass payloads (backward index),
// recomputing CorpusSize along the way. It is idempotent: calling it twice
// in a row leaves every index bit-identical (spec.md (L1)).
func (g *Graph) RebuildIndices() {
	for _, n := range g.nodes {
		n.Connections = n.Connections[:0]
		n.Parents = n.Parents[:0]
	}

	g.corpusSize = 0
	for p, path := range g.paths {
		g.corpusSize += len(path)
		for j, id := range path {
			if int(id) < 0 || int(id) >= len(g.nodes) {
				continue // defensive: caller will surface via CheckInvariants
			}
			g.nodes[id].Connections = append(g.nodes[id].Connections, Connection{Path: PathID(p), Offset: j})
		}
	}

	for id, n := range g.nodes {
		switch n.Kind() {
		case KindPattern:
			for i, c := range n.Lexicon.Children() {
				if int(c) < 0 || int(c) >= len(g.nodes) {
					continue
				}
				g.nodes[c].Parents = append(g.nodes[c].Parents, ParentRef{Parent: NodeID(id), Position: i})
			}
		case KindEquivalenceClass:
			for _, m := range n.Lexicon.Members() {
				if int(m) < 0 || int(m) >= len(g.nodes) {
					continue
				}
				g.nodes[m].Parents = append(g.nodes[m].Parents, ParentRef{Parent: NodeID(id), Position: 0})
			}
		}
	}
}

// CheckInvariants walks (I1)-(I4) from spec.md §8 and returns the first
// violation found, or nil if the graph is consistent.
func (g *Graph) CheckInvariants() error {
	for id, n := range g.nodes {
		for _, c := range n.Connections {
			if int(c.Path) < 0 || int(c.Path) >= len(g.paths) {
				return inconsistency("I1", "node %d has connection to out-of-range path %d", id, c.Path)
			}
			path := g.paths[c.Path]
			if c.Offset < 0 || c.Offset >= len(path) {
				return inconsistency("I1", "node %d has connection to out-of-range offset %d in path %d", id, c.Offset, c.Path)
			}
			if path[c.Offset] != NodeID(id) {
				return inconsistency("I1", "path %d offset %d is %d, not %d", c.Path, c.Offset, path[c.Offset], id)
			}
		}
	}

	total := 0
	for _, path := range g.paths {
		total += len(path)
	}
	if total != g.corpusSize {
		return inconsistency("I2", "corpusSize=%d but sum of path lengths=%d", g.corpusSize, total)
	}

	for id, n := range g.nodes {
		if n.Kind() != KindPattern {
			continue
		}
		for i, c := range n.Lexicon.Children() {
			if int(c) < 0 || int(c) >= len(g.nodes) {
				return inconsistency("I3", "pattern %d references out-of-range child %d", id, c)
			}
			if !hasParentRef(g.nodes[c].Parents, NodeID(id), i) {
				return inconsistency("I3", "child %d of pattern %d missing parent ref (%d,%d)", c, id, id, i)
			}
		}
	}

	for p, tree := range g.trees {
		leaves := tree.Leaves()
		if len(leaves) != len(g.paths[p]) {
			return inconsistency("I4", "path %d has %d elements but parse tree has %d leaves", p, len(g.paths[p]), len(leaves))
		}
		for i, leaf := range leaves {
			if leaf != g.paths[p][i] {
				return inconsistency("I4", "path %d leaf %d is %d, expected %d", p, i, leaf, g.paths[p][i])
			}
		}
	}

	return nil
}

func hasParentRef(refs []ParentRef, parent NodeID, position int) bool {
	for _, r := range refs {
		if r.Parent == parent && r.Position == position {
			return true
		}
	}
	return false
}

// Clone returns a deep, fully independent copy of the graph: every node's
// LexiconUnit, every path, every parse tree, and the derived counters
// (spec.md §3 "Lifecycle", (L2) clone isolation). generalise uses this as
// a disposable scratchpad to simulate a rewiring before committing it.
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		corpusSize: g.corpusSize,
		internTerm: make(map[string]NodeID, len(g.internTerm)),
	}
	for k, v := range g.internTerm {
		clone.internTerm[k] = v
	}

	clone.nodes = make([]*Node, len(g.nodes))
	for i, n := range g.nodes {
		clone.nodes[i] = &Node{
			Lexicon:     n.Lexicon.Clone(),
			Connections: append([]Connection(nil), n.Connections...),
			Parents:     append([]ParentRef(nil), n.Parents...),
		}
	}

	clone.paths = make([]Path, len(g.paths))
	for i, p := range g.paths {
		clone.paths[i] = p.Clone()
	}

	clone.trees = make([]*ParseTree, len(g.trees))
	for i, t := range g.trees {
		clone.trees[i] = t.Clone()
	}

	return clone
}
