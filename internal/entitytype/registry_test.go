package entitytype

import (
	"testing"
	"weak"

	"github.com/geoh5kit/geoh5kit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weakHandle(h *types.WorkspaceHandle) weak.Pointer[types.WorkspaceHandle] {
	return weak.Make(h)
}

func TestRegistry_FindOrCreate_SharesExistingByUID(t *testing.T) {
	reg := NewRegistry()
	uid := types.NewUID()

	first := reg.FindOrCreate(uid, func() *Type {
		return &Type{Kind: KindGroup, Name: "Drillhole group"}
	})
	second := reg.FindOrCreate(uid, func() *Type {
		t.Fatal("build should not be called when uid is already registered")
		return nil
	})

	assert.Same(t, first, second)
	assert.Equal(t, uid, first.UID)
}

func TestRegistry_FindOrCreate_GeneratesUIDWhenNil(t *testing.T) {
	reg := NewRegistry()

	got := reg.FindOrCreate(types.NilUID, func() *Type {
		return &Type{Kind: KindGroup, Name: "Custom"}
	})

	assert.False(t, got.UID.IsNil())
	found, ok := reg.Find(got.UID)
	require.True(t, ok)
	assert.Same(t, got, found)
}

func TestRegistry_FindByNameAndKind(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&Type{Kind: KindData, Name: "A", PrimitiveType: types.PrimitiveFloat})
	reg.Register(&Type{Kind: KindGroup, Name: "A"})

	found, ok := reg.FindByNameAndKind("A", KindData)
	require.True(t, ok)
	assert.Equal(t, KindData, found.Kind)

	_, ok = reg.FindByNameAndKind("Missing", KindData)
	assert.False(t, ok)
}

func TestFindOrCreateDataType_InternsByNameAndPrimitiveWhenUIDNil(t *testing.T) {
	reg := NewRegistry()

	first := FindOrCreateDataType(reg, types.NilUID, "Grade", types.PrimitiveFloat)
	second := FindOrCreateDataType(reg, types.NilUID, "Grade", types.PrimitiveFloat)

	assert.Equal(t, first.UID, second.UID)

	// Same name, different primitive: must NOT share the same type.
	third := FindOrCreateDataType(reg, types.NilUID, "Grade", types.PrimitiveInteger)
	assert.NotEqual(t, first.UID, third.UID)
}

func TestType_SetWorkspace_RejectsReassignmentToDifferentWorkspace(t *testing.T) {
	typ := &Type{Kind: KindGroup, Name: "Root"}
	h1 := &types.WorkspaceHandle{UID: types.NewUID()}
	h2 := &types.WorkspaceHandle{UID: types.NewUID()}

	ok := typ.SetWorkspace(weakHandle(h1))
	require.True(t, ok)
	assert.True(t, typ.OnFile())

	ok = typ.SetWorkspace(weakHandle(h2))
	assert.False(t, ok)
}
