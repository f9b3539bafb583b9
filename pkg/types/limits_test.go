package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphLimits_DefaultPermitsOrdinaryShapes(t *testing.T) {
	l := DefaultLimits()

	assert.True(t, l.Within(10, 1000, 100000))
}

func TestGraphLimits_RelaxedIsUnbounded(t *testing.T) {
	l := RelaxedLimits()

	assert.True(t, l.Within(1<<30, 1<<30, 1<<30))
}

func TestGraphLimits_StrictRejectsBeyondBounds(t *testing.T) {
	l := StrictLimits()

	assert.False(t, l.Within(l.MaxDepth+1, 0, 0))
	assert.False(t, l.Within(0, l.MaxChildrenPerContainer+1, 0))
	assert.False(t, l.Within(0, 0, l.MaxEntities+1))
	assert.True(t, l.Within(l.MaxDepth, l.MaxChildrenPerContainer, l.MaxEntities))
}

func TestGraphLimits_ZeroFieldTreatedAsUnboundedIndividually(t *testing.T) {
	l := GraphLimits{MaxDepth: 5}

	assert.True(t, l.Within(5, 1<<30, 1<<30))
	assert.False(t, l.Within(6, 0, 0))
}
