package matrix

import "github.com/adios/adios/rdsgraph"

// ConnectionMatrix is the symmetric, set-valued matrix described in
// spec.md §4.2: cell (i,j) holds every corpus occurrence (path, offset)
// whose sub-path matches path[min(i,j)..max(i,j)], anchored at the
// occurrence's position of min(i,j).
type ConnectionMatrix struct {
	dim   int
	cells [][][]rdsgraph.Connection
}

// Dim returns the path length this matrix was built for.
func (m *ConnectionMatrix) Dim() int { return m.dim }

// At returns the occurrence set at (i,j).
func (m *ConnectionMatrix) At(i, j int) ([]rdsgraph.Connection, error) {
	if i < 0 || i >= m.dim || j < 0 || j >= m.dim {
		return nil, ErrOutOfRange
	}
	return m.cells[i][j], nil
}

// Size returns len(At(i,j)) directly, the quantity spec.md §4.3 calls
// |C(i,j)|.
func (m *ConnectionMatrix) Size(i, j int) int {
	if i < 0 || i >= m.dim || j < 0 || j >= m.dim {
		return 0
	}
	return len(m.cells[i][j])
}

// BuildConnections implements spec.md §4.2: the diagonal is seeded from
// each position's own occurrence set (expanding EquivalenceClass
// membership via allNodeConnections), then every column is intersected
// outward from the diagonal by one extra element of context per step
// (filterConnections), and the result is mirrored into the symmetric
// half.
func BuildConnections(g *rdsgraph.Graph, path rdsgraph.Path) (*ConnectionMatrix, error) {
	dim := len(path)
	if dim == 0 {
		return nil, ErrEmptyPath
	}

	cells := make([][][]rdsgraph.Connection, dim)
	for i := range cells {
		cells[i] = make([][]rdsgraph.Connection, dim)
	}

	for i := 0; i < dim; i++ {
		occ, err := allNodeConnections(g, path[i])
		if err != nil {
			return nil, err
		}
		cells[i][i] = occ

		for j := i + 1; j < dim; j++ {
			filtered := filterConnections(g, cells[j-1][i], j-i, path[j])
			cells[j][i] = filtered
			cells[i][j] = filtered
		}
	}

	return &ConnectionMatrix{dim: dim, cells: cells}, nil
}

// allNodeConnections returns every occurrence of id, expanded to include
// the occurrences of every member if id is an EquivalenceClass
// (spec.md §4.2's diagonal seeding).
func allNodeConnections(g *rdsgraph.Graph, id rdsgraph.NodeID) ([]rdsgraph.Connection, error) {
	n, err := g.Node(id)
	if err != nil {
		return nil, err
	}
	out := append([]rdsgraph.Connection(nil), n.Connections...)
	if n.Kind() == rdsgraph.KindEquivalenceClass {
		for _, m := range n.Lexicon.Members() {
			mn, err := g.Node(m)
			if err != nil {
				return nil, err
			}
			out = append(out, mn.Connections...)
		}
	}
	return out, nil
}

// filterConnections keeps only the occurrences in init whose path, offset
// by the fixed distance, still matches want (spec.md §4.2, per-element
// EC-aware matching).
func filterConnections(g *rdsgraph.Graph, init []rdsgraph.Connection, offset int, want rdsgraph.NodeID) []rdsgraph.Connection {
	out := make([]rdsgraph.Connection, 0, len(init))
	for _, c := range init {
		actualPos := c.Offset + offset
		got, err := g.PathAt(c.Path, actualPos)
		if err != nil {
			continue // out of bounds: this path is too short to extend
		}
		if g.Matches(want, got) {
			out = append(out, c)
		}
	}
	return out
}
