package entity

import (
	"testing"

	"github.com/geoh5kit/geoh5kit/internal/entitytype"
	"github.com/geoh5kit/geoh5kit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIntegerData_RejectsFractionalValues(t *testing.T) {
	reg := entitytype.NewRegistry()
	dt := entitytype.FindOrCreateDataType(reg, types.NilUID, "Count", types.PrimitiveInteger)

	_, err := NewIntegerData("Count", types.AssociationVertex, dt, []float64{1, 2, 3.5})
	require.Error(t, err)

	d, err := NewIntegerData("Count", types.AssociationVertex, dt, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3}, d.Values)
}

func TestNewReferencedData_ValidatesAgainstValueMap(t *testing.T) {
	reg := entitytype.NewRegistry()
	vm := types.NewReferenceValueMap()
	vm.Set(1, "Ore")
	vm.Set(2, "Waste")
	dt := entitytype.ReferencedDataType(reg, types.NilUID, "Rock", vm)

	_, err := NewReferencedData("Rock", types.AssociationVertex, dt, []uint32{0, 1, 99})
	require.Error(t, err, "value 99 is not present in the value map")

	d, err := NewReferencedData("Rock", types.AssociationVertex, dt, []uint32{0, 1, 2, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 2, 1, 0}, d.Values)
}

func TestNewReferencedData_RequiresValueMap(t *testing.T) {
	reg := entitytype.NewRegistry()
	dt := entitytype.FindOrCreateDataType(reg, types.NilUID, "Rock", types.PrimitiveReferenced)

	_, err := NewReferencedData("Rock", types.AssociationVertex, dt, []uint32{0})
	assert.Error(t, err)
}

func TestReferenceToData(t *testing.T) {
	reg := entitytype.NewRegistry()
	vm := types.NewReferenceValueMap()
	vm.Set(1, "Ore")
	dt := entitytype.ReferencedDataType(reg, types.NilUID, "Rock", vm)

	label, err := ReferenceToData(dt, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ore", label)

	_, err = ReferenceToData(dt, 42)
	assert.Error(t, err)
}

func TestNewCommentsData(t *testing.T) {
	d := NewCommentsData("Comments", []string{"first note", "second note"})
	assert.Equal(t, types.AssociationObject, d.Association)
	assert.Equal(t, types.PrimitiveComments, d.EntityType.PrimitiveType)
	assert.Equal(t, []string{"first note", "second note"}, d.Values)
}
