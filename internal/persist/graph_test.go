package persist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraph_InitializesEmptyMaps(t *testing.T) {
	g := NewGraph()

	require.NotNil(t, g.Types)
	assert.Empty(t, g.Groups)
	assert.Empty(t, g.Objects)
	assert.Empty(t, g.Data)
	assert.Nil(t, g.Root)

	g.Groups["x"] = nil
	assert.Len(t, g.Groups, 1)
}
