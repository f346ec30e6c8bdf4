package significance

import (
	"testing"

	"github.com/adios/adios/matrix"
	"github.com/adios/adios/rdsgraph"
	"github.com/stretchr/testify/require"
)

func TestFindBestPatternOnRepeatedSentence(t *testing.T) {
	g, err := rdsgraph.NewGraph([][]string{
		{"a", "b", "c"},
		{"a", "b", "c"},
		{"a", "b", "c"},
		{"x", "y", "z"},
	})
	require.NoError(t, err)

	path, err := g.Path(0)
	require.NoError(t, err)

	cm, err := matrix.BuildConnections(g, path)
	require.NoError(t, err)
	flow, descent, err := matrix.ComputeFlowsAndDescents(cm, g.CorpusSize())
	require.NoError(t, err)

	best, ok, err := FindBestPattern(flow, descent, cm, 0.9, 0.5)
	require.NoError(t, err)
	require.True(t, ok, "three repeated occurrences of [a,b,c] against one unrelated sentence must surface a significant pattern")
	require.Less(t, best.LeftP, 0.5)
	require.Less(t, best.RightP, 0.5)
	require.LessOrEqual(t, best.Start, best.End)
}

func TestFindBestPatternRejectsDimensionMismatch(t *testing.T) {
	a, err := matrix.NewDense(3, 0)
	require.NoError(t, err)
	b, err := matrix.NewDense(4, 0)
	require.NoError(t, err)

	g, err := rdsgraph.NewGraph([][]string{{"a", "b"}})
	require.NoError(t, err)
	path, err := g.Path(0)
	require.NoError(t, err)
	cm, err := matrix.BuildConnections(g, path)
	require.NoError(t, err)

	_, _, err = FindBestPattern(a, b, cm, 0.9, 0.5)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestFindBestPatternNoSignalReturnsFalse(t *testing.T) {
	g, err := rdsgraph.NewGraph([][]string{{"a", "b", "c"}})
	require.NoError(t, err)
	path, err := g.Path(0)
	require.NoError(t, err)

	cm, err := matrix.BuildConnections(g, path)
	require.NoError(t, err)
	flow, descent, err := matrix.ComputeFlowsAndDescents(cm, g.CorpusSize())
	require.NoError(t, err)

	// alpha of 0 can never be beaten by a strictly-below-alpha test.
	_, ok, err := FindBestPattern(flow, descent, cm, 0.9, 0)
	require.NoError(t, err)
	require.False(t, ok)
}
