package pcfg

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/adios/adios/rdsgraph"
	"github.com/stretchr/testify/require"
)

func TestEmitTrivialCorpusHasOnlyStartRule(t *testing.T) {
	g, err := rdsgraph.NewGraph([][]string{{"a", "b", "c"}})
	require.NoError(t, err)

	gram, err := Estimate(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gram.Emit(&buf))

	out := buf.String()
	require.Equal(t, 1, strings.Count(out, "\n"))
	require.Contains(t, out, "S -> a b c [1.0]")
}

func TestEmitPatternRuleAlwaysHasProbabilityOne(t *testing.T) {
	g, err := rdsgraph.NewGraph([][]string{{"a", "b", "c"}})
	require.NoError(t, err)
	path, err := g.Path(0)
	require.NoError(t, err)

	patID, _, err := g.InstallPattern([]rdsgraph.NodeID{path[1], path[2], path[3]}, []rdsgraph.Connection{{Path: 0, Offset: 1}})
	require.NoError(t, err)

	gram, err := Estimate(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gram.Emit(&buf))

	require.Contains(t, buf.String(), gram.g.DisplayName(patID)+" -> a b c [1.0]")
}

func TestEmitEquivalenceClassProbabilitiesSumToOne(t *testing.T) {
	g, err := rdsgraph.NewGraph([][]string{{"a", "b", "c"}, {"a", "d", "c"}})
	require.NoError(t, err)

	pathB, err := g.Path(0)
	require.NoError(t, err)
	pathD, err := g.Path(1)
	require.NoError(t, err)

	ecID, _, err := g.InstallEquivalenceClass([]rdsgraph.NodeID{pathB[2], pathD[2]}, nil)
	require.NoError(t, err)

	tree0, err := g.Tree(0)
	require.NoError(t, err)
	require.NoError(t, tree0.RewireChild(2, ecID))
	require.NoError(t, g.SetPath(0, pathB.Substitute(2, 2, rdsgraph.Path{ecID})))

	tree1, err := g.Tree(1)
	require.NoError(t, err)
	require.NoError(t, tree1.RewireChild(2, ecID))
	require.NoError(t, g.SetPath(1, pathD.Substitute(2, 2, rdsgraph.Path{ecID})))

	gram, err := Estimate(g)
	require.NoError(t, err)

	sum := 0.0
	for _, n := range gram.ecMemberUses[ecID] {
		sum += float64(n)
	}
	require.Equal(t, 2, int(sum))

	var buf bytes.Buffer
	require.NoError(t, gram.Emit(&buf))
	require.Contains(t, buf.String(), g.DisplayName(ecID)+" -> b [0.5]")
	require.Contains(t, buf.String(), g.DisplayName(ecID)+" -> d [0.5]")
}

func TestGenerateRandomPathProducesKnownTokens(t *testing.T) {
	g, err := rdsgraph.NewGraph([][]string{{"a", "b", "c"}})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	tokens, err := GenerateRandomPath(g, rng)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, tokens)
}

func TestGenerateRandomPathRejectsEmptyGraph(t *testing.T) {
	_, err := GenerateRandomPath(&rdsgraph.Graph{}, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, ErrNoPaths)
}
