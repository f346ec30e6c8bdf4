package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountersAccumulate(t *testing.T) {
	c := NewCounters()
	assert.Equal(t, 0, c.PatternCount())
	assert.Equal(t, 0, c.RewiringCount())

	c.PatternInstalled()
	c.PatternInstalled()
	c.EquivalenceClassInstalled()
	c.Rewired()
	c.Iteration()

	assert.Equal(t, 3, c.PatternCount())
	assert.Equal(t, 1, c.RewiringCount())
}
