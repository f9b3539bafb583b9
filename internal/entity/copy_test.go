package entity

import (
	"testing"

	"github.com/geoh5kit/geoh5kit/internal/entitytype"
	"github.com/geoh5kit/geoh5kit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestObjectBase_Copy_WithMask exercises spec scenario S5: a Points
// object with 10 vertices and one Float data "v", copied with a mask
// keeping only the first half.
func TestObjectBase_Copy_WithMask(t *testing.T) {
	reg := entitytype.NewRegistry()
	obj := newTestPoints(t, reg, 10)
	_, err := obj.AddData(reg, "v", DataSpec{Values: []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}})
	require.NoError(t, err)

	mask := make([]bool, 10)
	for i := 0; i < 5; i++ {
		mask[i] = true
	}

	copied, err := obj.Copy(nil, true, false, mask)
	require.NoError(t, err)

	assert.Len(t, copied.Vertices, 5)
	require.Len(t, copied.Children, 1)
	cd := copied.Children[0].(*Data)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, cd.Values)
}

func TestObjectBase_Copy_MaskLengthMismatchErrors(t *testing.T) {
	reg := entitytype.NewRegistry()
	obj := newTestPoints(t, reg, 4)

	_, err := obj.Copy(nil, false, false, []bool{true, false})
	assert.Error(t, err)
}

func TestObjectBase_Copy_WithoutMaskCopiesEverything(t *testing.T) {
	reg := entitytype.NewRegistry()
	obj := newTestPoints(t, reg, 3)
	_, err := obj.AddData(reg, "v", DataSpec{Values: []float64{1, 2, 3}})
	require.NoError(t, err)

	copied, err := obj.Copy(nil, true, false, nil)
	require.NoError(t, err)

	assert.Equal(t, obj.Vertices, copied.Vertices)
	assert.NotEqual(t, obj.UID, copied.UID)
}

func TestObjectBase_Copy_RemapsPropertyGroupMembers(t *testing.T) {
	reg := entitytype.NewRegistry()
	obj := newTestPoints(t, reg, 3)
	a, err := obj.AddData(reg, "A", DataSpec{Values: []float64{1, 2, 3}})
	require.NoError(t, err)
	pg := obj.FindOrCreatePropertyGroup("group", PropertyGroupMulti)
	pg.AddMember(a.UID, types.AssociationVertex)

	copied, err := obj.Copy(nil, true, false, nil)
	require.NoError(t, err)

	require.Len(t, copied.PropertyGroups, 1)
	cpg := copied.PropertyGroups[0]
	require.Len(t, cpg.Properties, 1)
	assert.NotEqual(t, a.UID, cpg.Properties[0])

	// The remapped member uid must point at the copy's own Data child.
	copiedData := copied.Children[0].(*Data)
	assert.Equal(t, copiedData.UID, cpg.Properties[0])
}

func TestObjectBase_Copy_CellsDroppedWhenReferencingMaskedVertex(t *testing.T) {
	reg := entitytype.NewRegistry()
	obj := newTestPoints(t, reg, 4)
	obj.Cells = []Cell{{Indices: []int32{0, 1}}, {Indices: []int32{2, 3}}}
	mask := []bool{true, true, false, false}

	copied, err := obj.Copy(nil, false, false, mask)
	require.NoError(t, err)

	require.Len(t, copied.Cells, 1)
	assert.Equal(t, []int32{0, 1}, copied.Cells[0].Indices)
}
