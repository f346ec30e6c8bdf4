package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSequencesStripsMarkers(t *testing.T) {
	seqs, warning, err := ReadSequences(strings.NewReader("* a b c #\n* d e #\n"))
	require.NoError(t, err)
	require.Nil(t, warning)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "e"}}, seqs)
}

func TestReadSequencesWarnsOnceForMissingMarkers(t *testing.T) {
	seqs, warning, err := ReadSequences(strings.NewReader("a b c\n* d e #\nf g\n"))
	require.NoError(t, err)
	require.NotNil(t, warning)
	assert.Equal(t, 1, warning.Line)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "e"}, {"f", "g"}}, seqs)
}

func TestReadSequencesSkipsBlankLines(t *testing.T) {
	seqs, _, err := ReadSequences(strings.NewReader("a b\n\n   \nc d\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, seqs)
}

func TestReadSequencesRejectsMarkersOnlyLine(t *testing.T) {
	_, _, err := ReadSequences(strings.NewReader("* #\n"))
	require.ErrorIs(t, err, ErrEmptyLine)
}
