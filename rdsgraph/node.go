package rdsgraph

import "strconv"

// Connection marks one occurrence of a node in a path: the path it
// appears in and its offset within that path (spec.md §3).
type Connection struct {
	Path   PathID
	Offset int
}

// ParentRef marks one occurrence of a node as the i-th child of a Pattern,
// or the sole referenced member of an EquivalenceClass (spec.md §3).
type ParentRef struct {
	Parent   NodeID
	Position int
}

// Node owns exactly one LexiconUnit payload plus the two back/forward
// indices that spec.md §3 and §4.8 require: Connections (forward, where
// this node currently sits in the corpus) and Parents (backward, which
// Pattern/EquivalenceClass nodes reference it). Both indices are rebuilt
// from scratch after every mutation — never patched incrementally — so
// they can never drift out of sync with Paths (spec.md §4.8).
type Node struct {
	Lexicon     LexiconUnit
	Connections []Connection
	Parents     []ParentRef
}

// Kind is a convenience accessor for Lexicon.Kind().
func (n *Node) Kind() NodeKind { return n.Lexicon.Kind() }

// Name renders the id-dependent compact display form of this node
// (spec.md §6): "E{id}" for an equivalence class, "P{id}" for a pattern,
// and the id-independent LexiconUnit.String() for every other kind.
func (n *Node) Name(id NodeID) string {
	switch n.Kind() {
	case KindEquivalenceClass:
		return "E" + strconv.Itoa(int(id))
	case KindPattern:
		return "P" + strconv.Itoa(int(id))
	default:
		return n.Lexicon.String()
	}
}
