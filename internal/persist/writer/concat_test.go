package writer

import (
	"testing"

	"github.com/geoh5kit/geoh5kit/internal/concat"
	"github.com/geoh5kit/geoh5kit/internal/container/containertest"
	"github.com/geoh5kit/geoh5kit/internal/format"
	"github.com/geoh5kit/geoh5kit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveConcatenator_WritesChannelArraysAndWindows(t *testing.T) {
	c := containertest.New("test.geoh5", types.ModeCreate)
	groupGroup, err := c.Group("drillholes/{group}", true)
	require.NoError(t, err)

	con := concat.NewConcatenator(types.NewUID())
	uidA, uidB := types.NewUID(), types.NewUID()
	con.AddObject(uidA, map[string]any{"Name": "dh-a"})
	con.AddObject(uidB, map[string]any{"Name": "dh-b"})
	require.NoError(t, con.AppendChannel(uidA, "Grade", []float64{1, 2}))
	require.NoError(t, con.AppendChannel(uidB, "Grade", []float64{3}))

	require.NoError(t, SaveConcatenator(groupGroup, con))

	cg, err := groupGroup.SubGroup(format.ConcatGroupName, false)
	require.NoError(t, err)

	ids, err := cg.Dataset(format.DatasetObjectIDs)
	require.NoError(t, err)
	assert.Equal(t, []string{uidA.String(), uidB.String()}, ids.Values)

	grade, err := cg.Dataset("Grade")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, grade.Values)

	starts, err := cg.Dataset("Grade" + format.ChannelStartSuffix)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 2}, starts.Values)

	lengths, err := cg.Dataset("Grade" + format.ChannelLengthSuffix)
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 1}, lengths.Values)

	assert.False(t, con.Dirty(), "a successful save must clear the concatenator's dirty flag")
}

func TestSaveConcatenator_NilIsNoop(t *testing.T) {
	c := containertest.New("test.geoh5", types.ModeCreate)
	g, err := c.Group("g", true)
	require.NoError(t, err)

	assert.NoError(t, SaveConcatenator(g, nil))
}
