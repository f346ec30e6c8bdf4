package rdsgraph

// PathID indexes into a Graph's path list.
type PathID int

// Path is an ordered sequence of node ids through the graph — one per
// input sentence, mutated in place as structure is rewired (spec.md §3).
// Path is a value type: every transformation below returns a new Path
// rather than mutating the receiver, so callers must assign the result
// back (g.SetPath(p, path.Rewire(...))).
type Path []NodeID

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	return append(Path(nil), p...)
}

// Equal reports whether p and other contain the same node ids in the same
// order.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Slice returns the inclusive sub-path path[a..=b]. Both bounds must be
// in range and a <= b.
func (p Path) Slice(a, b int) Path {
	return append(Path(nil), p[a:b+1]...)
}

// Substitute returns a new path with the inclusive range [a,b] replaced by
// segment.
func (p Path) Substitute(a, b int, segment Path) Path {
	out := make(Path, 0, len(p)-(b-a+1)+len(segment))
	out = append(out, p[:a]...)
	out = append(out, segment...)
	out = append(out, p[b+1:]...)
	return out
}

// Rewire returns a new path with the inclusive range [start,finish]
// collapsed to the single element newNode (spec.md §3, SearchPath.rewire).
func (p Path) Rewire(start, finish int, newNode NodeID) Path {
	out := make(Path, 0, len(p)-(finish-start+1)+1)
	out = append(out, p[:start]...)
	out = append(out, newNode)
	out = append(out, p[finish+1:]...)
	return out
}
