package main

import (
	"testing"

	"github.com/geoh5kit/geoh5kit/internal/entity"
	"github.com/geoh5kit/geoh5kit/internal/entitytype"
	"github.com/geoh5kit/geoh5kit/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "512 bytes", humanSize(512))
	assert.Equal(t, "1.5 KB", humanSize(1536))
	assert.Equal(t, "2.0 MB", humanSize(2*1024*1024))
}

func TestEntityLabel(t *testing.T) {
	reg := entitytype.NewRegistry()
	gt := entitytype.FindOrCreateGroupType(reg, types.NilUID, "container")
	g := entity.NewGroup("my-group", entity.GroupKindCustom, gt)

	assert.Contains(t, entityLabel(g), "my-group")
	assert.Contains(t, entityLabel(g), "Group")
}

func TestChildrenOfNode_Group(t *testing.T) {
	reg := entitytype.NewRegistry()
	gt := entitytype.FindOrCreateGroupType(reg, types.NilUID, "container")
	parent := entity.NewGroup("parent", entity.GroupKindCustom, gt)
	child := entity.NewGroup("child", entity.GroupKindCustom, gt)
	parent.AddChildren([]entity.Node{child})

	assert.Len(t, childrenOfNode(parent), 1)
}

func TestChildrenOfNode_DataHasNone(t *testing.T) {
	reg := entitytype.NewRegistry()
	dt := entitytype.FindOrCreateDataType(reg, types.NilUID, "v", types.PrimitiveFloat)
	d := entity.NewData("v", types.AssociationVertex, dt, []float64{1, 2})
	assert.Nil(t, childrenOfNode(d))
}
