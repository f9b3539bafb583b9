package workspace

import (
	"testing"

	"github.com/geoh5kit/geoh5kit/internal/container/containertest"
	"github.com/geoh5kit/geoh5kit/internal/entity"
	"github.com/geoh5kit/geoh5kit/internal/persist/reader"
	"github.com/geoh5kit/geoh5kit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWorkspace builds an open, writable Workspace wired to an
// in-memory container, bypassing Open's hardcoded container.Open(...)
// call (the only HDF5-specific seam in the lifecycle) so the rest of
// the package's logic — dirty tracking, flush ordering, entity
// lookup — can be exercised without a real .geoh5 file.
func newTestWorkspace(t *testing.T) *Workspace {
	t.Helper()
	w := New("test.geoh5")
	w.mode = types.ModeCreate
	w.handle = &types.WorkspaceHandle{UID: types.NewUID()}
	w.container = containertest.New(w.path, w.mode)
	require.NoError(t, w.initNew(types.DefaultOpenOptions()))
	w.state = stateOpen
	return w
}

func TestWorkspace_InitNew_CreatesRootGroup(t *testing.T) {
	w := newTestWorkspace(t)

	root := w.Root()
	require.NotNil(t, root)
	assert.Equal(t, entity.GroupKindRoot, root.Kind)
}

func TestWorkspace_CreateEntity_RegistersAndMarksDirty(t *testing.T) {
	w := newTestWorkspace(t)
	ot := w.FindOrCreateObjectType(types.NilUID, "Points")
	obj := entity.NewObjectBase("pts", entity.ObjectKindPoints, ot)

	require.NoError(t, w.CreateEntity(obj, false))

	found, ok := w.FindObject(obj.UID)
	assert.True(t, ok)
	assert.Same(t, obj, found)
}

func TestWorkspace_Close_TwiceIsNoop(t *testing.T) {
	w := newTestWorkspace(t)
	require.NoError(t, w.Close(types.DefaultWriteOptions()))
	assert.NoError(t, w.Close(types.DefaultWriteOptions()), "closing an already-closed workspace must be a silent no-op")
}

func TestWorkspace_Close_FlushesRootAndReopenRoundTrips(t *testing.T) {
	w := newTestWorkspace(t)
	ot := w.FindOrCreateObjectType(types.NewUID(), "Points")
	obj := entity.NewObjectBase("pts", entity.ObjectKindPoints, ot)
	obj.Vertices = []entity.Vertex{{X: 1, Y: 2, Z: 3}}
	require.NoError(t, w.CreateEntity(obj, false))
	require.NoError(t, w.AddChildren(w.Root(), []entity.Node{obj}))

	require.NoError(t, w.Close(types.DefaultWriteOptions()))

	w2 := New(w.path)
	w2.mode = types.ModeReadWrite
	w2.handle = &types.WorkspaceHandle{UID: types.NewUID()}
	w2.container = w.container
	w2.dirty = newDirtySet()
	g, err := reader.Load(w2.container)
	require.NoError(t, err)
	w2.graph = g
	w2.state = stateOpen

	reopenedObj, ok := w2.FindObject(obj.UID)
	require.True(t, ok)
	assert.Equal(t, obj.Vertices, reopenedObj.Vertices)
	require.Len(t, w2.Root().Children, 1)
}

func TestWorkspace_RemoveEntity_DropsFromGraphAndParent(t *testing.T) {
	w := newTestWorkspace(t)
	ot := w.FindOrCreateObjectType(types.NilUID, "Points")
	obj := entity.NewObjectBase("pts", entity.ObjectKindPoints, ot)
	require.NoError(t, w.CreateEntity(obj, false))
	require.NoError(t, w.AddChildren(w.Root(), []entity.Node{obj}))

	require.NoError(t, w.RemoveEntity(obj))

	_, ok := w.FindObject(obj.UID)
	assert.False(t, ok)
	assert.NotContains(t, w.Root().Children, entity.Node(obj))
}

func TestWorkspace_GetEntity_ByUIDAndByName(t *testing.T) {
	w := newTestWorkspace(t)
	ot := w.FindOrCreateObjectType(types.NilUID, "Points")
	obj := entity.NewObjectBase("pts", entity.ObjectKindPoints, ot)
	require.NoError(t, w.CreateEntity(obj, false))

	byUID := w.GetEntity(obj.UID)
	require.Len(t, byUID, 1)
	assert.Same(t, obj, byUID[0])

	byName := w.GetEntity("pts")
	require.Len(t, byName, 1)
	assert.Same(t, obj, byName[0])

	empty := w.GetEntity(types.NewUID())
	require.Len(t, empty, 1)
	assert.Nil(t, empty[0])
}

func TestWorkspace_Stats_CountsLiveEntities(t *testing.T) {
	w := newTestWorkspace(t)
	ot := w.FindOrCreateObjectType(types.NilUID, "Points")
	obj := entity.NewObjectBase("pts", entity.ObjectKindPoints, ot)
	require.NoError(t, w.CreateEntity(obj, false))

	stats := w.Stats()
	assert.Equal(t, 1, stats.ObjectCount)
	assert.Equal(t, 0, stats.DataCount)
}

func TestWorkspace_CreateEntity_FailsWhenReadOnly(t *testing.T) {
	w := newTestWorkspace(t)
	w.mode = types.ModeReadOnly
	ot := w.FindOrCreateObjectType(types.NilUID, "Points")
	obj := entity.NewObjectBase("pts", entity.ObjectKindPoints, ot)

	err := w.CreateEntity(obj, false)

	assert.ErrorIs(t, err, types.ErrReadOnly)
}

func TestWorkspace_CreateEntity_FailsWhenClosed(t *testing.T) {
	w := newTestWorkspace(t)
	w.state = stateClosed
	ot := w.FindOrCreateObjectType(types.NilUID, "Points")
	obj := entity.NewObjectBase("pts", entity.ObjectKindPoints, ot)

	err := w.CreateEntity(obj, false)

	assert.ErrorIs(t, err, types.ErrClosed)
}

func TestWorkspace_CreateEntity_FailsWhenEntityLimitExceeded(t *testing.T) {
	w := newTestWorkspace(t)
	w.limits.MaxEntities = 1 // the root group itself already counts as one
	ot := w.FindOrCreateObjectType(types.NilUID, "Points")
	obj := entity.NewObjectBase("pts", entity.ObjectKindPoints, ot)

	err := w.CreateEntity(obj, false)

	assert.Error(t, err)
	_, ok := w.FindObject(obj.UID)
	assert.False(t, ok, "an entity rejected by limits must not be registered")
}

func TestWorkspace_AddChildren_FailsWhenChildLimitExceeded(t *testing.T) {
	w := newTestWorkspace(t)
	w.limits.MaxChildrenPerContainer = 1
	ot := w.FindOrCreateObjectType(types.NilUID, "Points")
	first := entity.NewObjectBase("first", entity.ObjectKindPoints, ot)
	second := entity.NewObjectBase("second", entity.ObjectKindPoints, ot)
	require.NoError(t, w.CreateEntity(first, false))
	require.NoError(t, w.CreateEntity(second, false))
	require.NoError(t, w.AddChildren(w.Root(), []entity.Node{first}))

	err := w.AddChildren(w.Root(), []entity.Node{second})

	assert.Error(t, err)
	assert.Len(t, w.Root().Children, 1)
}
