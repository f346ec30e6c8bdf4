package rdsgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexiconUnitStringForms(t *testing.T) {
	assert.Equal(t, "*", Start().String())
	assert.Equal(t, "#", End().String())
	assert.Equal(t, "foo", Terminal("foo").String())
	assert.Equal(t, "2 - 3", Pattern([]NodeID{2, 3}).String())
	assert.Equal(t, "2,3", EquivalenceClass([]NodeID{2, 3}).String())
}

func TestLexiconUnitCloneIsIndependent(t *testing.T) {
	u := Pattern([]NodeID{1, 2})
	clone := u.Clone()
	clone.children[0] = 99
	assert.Equal(t, NodeID(1), u.children[0])
}

func TestEquivalenceClassHasMember(t *testing.T) {
	u := EquivalenceClass([]NodeID{1, 2, 3})
	assert.True(t, u.HasMember(2))
	assert.False(t, u.HasMember(9))
}
