package rdsgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayNameForEveryKind(t *testing.T) {
	g, err := NewGraph([][]string{{"a", "b"}})
	require.NoError(t, err)
	p0, err := g.Path(0)
	require.NoError(t, err)

	assert.Equal(t, "*", g.DisplayName(StartID))
	assert.Equal(t, "#", g.DisplayName(EndID))
	assert.Equal(t, "a", g.DisplayName(p0[1]))

	patID, _, err := g.InstallPattern([]NodeID{p0[1], p0[2]}, nil)
	require.NoError(t, err)
	ecID, _, err := g.InstallEquivalenceClass([]NodeID{p0[1], p0[2]}, nil)
	require.NoError(t, err)

	assert.Contains(t, g.DisplayName(patID), "P")
	assert.Contains(t, g.DisplayName(ecID), "E")
}

func TestDisplayPatternJoinsChildrenWithSeparator(t *testing.T) {
	g, err := NewGraph([][]string{{"a", "b"}})
	require.NoError(t, err)
	p0, err := g.Path(0)
	require.NoError(t, err)

	patID, _, err := g.InstallPattern([]NodeID{p0[1], p0[2]}, nil)
	require.NoError(t, err)

	s, err := g.DisplayPattern(patID, " - ")
	require.NoError(t, err)
	assert.Equal(t, "a - b", s)
}

func TestDisplayPatternRejectsNonPattern(t *testing.T) {
	g, err := NewGraph([][]string{{"a"}})
	require.NoError(t, err)
	_, err = g.DisplayPattern(StartID, "")
	require.ErrorIs(t, err, ErrNotPattern)
}

func TestDisplayEquivalenceClassJoinsMembersWithComma(t *testing.T) {
	g, err := NewGraph([][]string{{"a", "b"}})
	require.NoError(t, err)
	p0, err := g.Path(0)
	require.NoError(t, err)

	ecID, _, err := g.InstallEquivalenceClass([]NodeID{p0[1], p0[2]}, nil)
	require.NoError(t, err)

	s, err := g.DisplayEquivalenceClass(ecID)
	require.NoError(t, err)
	assert.Equal(t, "a,b", s)
}

func TestGraphStringIncludesEveryPath(t *testing.T) {
	g, err := NewGraph([][]string{{"a", "b"}, {"c"}})
	require.NoError(t, err)
	out := g.String()
	assert.Contains(t, out, "path 0")
	assert.Contains(t, out, "path 1")
}
