package concat

import (
	"testing"

	"github.com/geoh5kit/geoh5kit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcatenator_NonOverlappingSlices exercises spec scenario S3: two
// drillholes under the same group, each carrying interval data, must
// end up with non-overlapping slices in the shared channel array.
func TestConcatenator_NonOverlappingSlices(t *testing.T) {
	c := NewConcatenator(types.NewUID())
	a, b := types.NewUID(), types.NewUID()
	c.AddObject(a, map[string]any{"collar": [3]float64{0, 10, 10}})
	c.AddObject(b, map[string]any{"collar": [3]float64{10, 10, 10}})

	require.NoError(t, c.AppendChannel(a, "from-to", []float64{0, 1, 1, 2}))
	require.NoError(t, c.AppendChannel(b, "from-to", []float64{0, 1}))

	av, ok := c.Values(a, "from-to")
	require.True(t, ok)
	assert.Equal(t, []float64{0, 1, 1, 2}, av)

	bv, ok := c.Values(b, "from-to")
	require.True(t, ok)
	assert.Equal(t, []float64{0, 1}, bv)

	assert.Len(t, c.Channels["from-to"], 6)
}

func TestConcatenator_AppendChannel_UnknownObjectErrors(t *testing.T) {
	c := NewConcatenator(types.NewUID())

	err := c.AppendChannel(types.NewUID(), "from-to", []float64{1})

	assert.Error(t, err)
}

func TestConcatenator_RemoveObject_TombstonesWithoutTouchingArray(t *testing.T) {
	c := NewConcatenator(types.NewUID())
	a := types.NewUID()
	c.AddObject(a, nil)
	require.NoError(t, c.AppendChannel(a, "grade", []float64{1, 2, 3}))

	c.RemoveObject(a)

	_, ok := c.Values(a, "grade")
	assert.False(t, ok, "removed object's values must no longer resolve")
	assert.Len(t, c.Channels["grade"], 3, "RemoveObject must not touch the backing array itself")
	assert.NotContains(t, c.ObjectIDs, a)
}

func TestConcatenator_Reclaim_CompactsAroundTombstones(t *testing.T) {
	c := NewConcatenator(types.NewUID())
	a, b, d := types.NewUID(), types.NewUID(), types.NewUID()
	c.AddObject(a, nil)
	c.AddObject(b, nil)
	c.AddObject(d, nil)
	require.NoError(t, c.AppendChannel(a, "grade", []float64{1, 1}))
	require.NoError(t, c.AppendChannel(b, "grade", []float64{2, 2}))
	require.NoError(t, c.AppendChannel(d, "grade", []float64{3, 3}))

	c.RemoveObject(b)
	c.Reclaim()

	assert.Len(t, c.Channels["grade"], 4, "tombstoned b's slice must be dropped on reclaim")
	av, ok := c.Values(a, "grade")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 1}, av)
	dv, ok := c.Values(d, "grade")
	require.True(t, ok)
	assert.Equal(t, []float64{3, 3}, dv)
}

func TestConcatenator_DirtyTracking(t *testing.T) {
	c := NewConcatenator(types.NewUID())
	assert.False(t, c.Dirty())

	c.AddObject(types.NewUID(), nil)
	assert.True(t, c.Dirty())

	c.ClearDirty()
	assert.False(t, c.Dirty())
}
