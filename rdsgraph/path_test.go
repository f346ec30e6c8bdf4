package rdsgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathCloneIsIndependent(t *testing.T) {
	p := Path{1, 2, 3}
	clone := p.Clone()
	clone[0] = 99
	assert.Equal(t, NodeID(1), p[0])
}

func TestPathEqual(t *testing.T) {
	assert.True(t, Path{1, 2, 3}.Equal(Path{1, 2, 3}))
	assert.False(t, Path{1, 2, 3}.Equal(Path{1, 2}))
	assert.False(t, Path{1, 2, 3}.Equal(Path{1, 2, 4}))
}

func TestPathSlice(t *testing.T) {
	p := Path{0, 1, 2, 3, 4}
	assert.Equal(t, Path{1, 2, 3}, p.Slice(1, 3))
}

func TestPathSubstitute(t *testing.T) {
	p := Path{0, 1, 2, 3, 4}
	got := p.Substitute(1, 2, Path{9})
	assert.Equal(t, Path{0, 9, 3, 4}, got)
}

func TestPathRewire(t *testing.T) {
	p := Path{0, 1, 2, 3, 4}
	got := p.Rewire(1, 3, 99)
	assert.Equal(t, Path{0, 99, 4}, got)
	// original untouched
	require.Equal(t, Path{0, 1, 2, 3, 4}, p)
}
