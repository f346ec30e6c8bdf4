package matrix

import (
	"testing"

	"github.com/adios/adios/rdsgraph"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T) *rdsgraph.Graph {
	t.Helper()
	g, err := rdsgraph.NewGraph([][]string{
		{"a", "b", "c"},
		{"a", "b", "d"},
		{"x", "b", "c"},
	})
	require.NoError(t, err)
	return g
}

func TestBuildConnectionsDiagonalCoversAllOccurrences(t *testing.T) {
	g := buildGraph(t)
	path, err := g.Path(0) // * a b c #
	require.NoError(t, err)

	cm, err := BuildConnections(g, path)
	require.NoError(t, err)
	require.Equal(t, len(path), cm.Dim())

	for i := range path {
		size := cm.Size(i, i)
		require.Greater(t, size, 0, "diagonal cell %d must contain at least its own occurrence", i)
	}
}

func TestBuildConnectionsIsSymmetric(t *testing.T) {
	g := buildGraph(t)
	path, err := g.Path(0)
	require.NoError(t, err)

	cm, err := BuildConnections(g, path)
	require.NoError(t, err)

	for i := 0; i < cm.Dim(); i++ {
		for j := 0; j < cm.Dim(); j++ {
			a, err := cm.At(i, j)
			require.NoError(t, err)
			b, err := cm.At(j, i)
			require.NoError(t, err)
			require.ElementsMatch(t, a, b)
		}
	}
}

func TestBuildConnectionsNarrowsAwayFromDiagonal(t *testing.T) {
	g := buildGraph(t)
	path, err := g.Path(0) // * a b c #
	require.NoError(t, err)

	cm, err := BuildConnections(g, path)
	require.NoError(t, err)

	// 'b' (index 2) occurs in all three sentences; the pair (b,c) occurs in
	// only two (sentences 0 and 2); widening context never increases the
	// occurrence count.
	require.GreaterOrEqual(t, cm.Size(2, 2), cm.Size(2, 3))
}

func TestBuildConnectionsRejectsEmptyPath(t *testing.T) {
	g := buildGraph(t)
	_, err := BuildConnections(g, rdsgraph.Path{})
	require.ErrorIs(t, err, ErrEmptyPath)
}
