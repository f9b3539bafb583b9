package reader

import (
	"testing"

	"github.com/geoh5kit/geoh5kit/internal/concat"
	"github.com/geoh5kit/geoh5kit/internal/container/containertest"
	"github.com/geoh5kit/geoh5kit/internal/persist/writer"
	"github.com/geoh5kit/geoh5kit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConcatenator_RoundTripsChannelsAndIndex(t *testing.T) {
	c := containertest.New("test.geoh5", types.ModeCreate)
	groupGroup, err := c.Group("drillholes/{group}", true)
	require.NoError(t, err)

	parentUID := types.NewUID()
	con := concat.NewConcatenator(parentUID)
	uidA, uidB := types.NewUID(), types.NewUID()
	con.AddObject(uidA, map[string]any{"Name": "dh-a"})
	con.AddObject(uidB, map[string]any{"Name": "dh-b"})
	require.NoError(t, con.AppendChannel(uidA, "Grade", []float64{1, 2}))
	require.NoError(t, con.AppendChannel(uidB, "Grade", []float64{3}))
	require.NoError(t, writer.SaveConcatenator(groupGroup, con))

	loaded := loadConcatenator(groupGroup, parentUID)

	require.NotNil(t, loaded)
	assert.Equal(t, []types.UID{uidA, uidB}, loaded.ObjectIDs)

	valsA, ok := loaded.Values(uidA, "Grade")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2}, valsA)

	valsB, ok := loaded.Values(uidB, "Grade")
	require.True(t, ok)
	assert.Equal(t, []float64{3}, valsB)
}

func TestLoadConcatenator_MissingGroupReturnsNil(t *testing.T) {
	c := containertest.New("test.geoh5", types.ModeCreate)
	g, err := c.Group("empty", true)
	require.NoError(t, err)

	assert.Nil(t, loadConcatenator(g, types.NewUID()))
}
