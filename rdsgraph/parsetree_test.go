package rdsgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParseTreeLeavesMatchInput(t *testing.T) {
	tr := NewParseTree([]NodeID{1, 2, 3})
	assert.Equal(t, []NodeID{1, 2, 3}, tr.Leaves())
}

func TestParseTreeRewireCollapsesRange(t *testing.T) {
	tr := NewParseTree([]NodeID{1, 2, 3, 4})
	require.NoError(t, tr.Rewire(1, 2, 99))
	assert.Equal(t, []NodeID{1, 99, 4}, tr.Leaves())
}

func TestParseTreeInteriorSkipsLeavesAndRoot(t *testing.T) {
	tr := NewParseTree([]NodeID{1, 2, 3})
	require.NoError(t, tr.Rewire(0, 1, 99))

	interior := tr.Interior()
	require.Len(t, interior, 1)
	assert.Equal(t, NodeID(99), interior[0].Value)
	assert.Equal(t, []NodeID{1, 2}, interior[0].Children)
}

func TestParseTreeRewireRejectsOutOfRange(t *testing.T) {
	tr := NewParseTree([]NodeID{1, 2})
	require.ErrorIs(t, tr.Rewire(0, 5, 99), ErrRangeOutOfBounds)
}

func TestParseTreeCloneIsIndependent(t *testing.T) {
	tr := NewParseTree([]NodeID{1, 2, 3})
	clone := tr.Clone()
	require.NoError(t, clone.Rewire(0, 1, 99))

	assert.Equal(t, []NodeID{1, 2, 3}, tr.Leaves())
	assert.Equal(t, []NodeID{99, 3}, clone.Leaves())
}
