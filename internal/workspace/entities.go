package workspace

import (
	"fmt"
	"weak"

	"github.com/geoh5kit/geoh5kit/internal/container"
	"github.com/geoh5kit/geoh5kit/internal/entity"
	"github.com/geoh5kit/geoh5kit/internal/entitytype"
	"github.com/geoh5kit/geoh5kit/internal/format"
	"github.com/geoh5kit/geoh5kit/internal/persist/writer"
	"github.com/geoh5kit/geoh5kit/pkg/types"
)

// CreateEntity registers n in the workspace's live graph and marks it
// dirty, dispatching on its concrete class (spec §4.3
// "create_entity(class, entity, entity_type)"). If saveOnCreation is
// true the entity is flushed to the file immediately rather than
// waiting for the next Close.
func (w *Workspace) CreateEntity(n entity.Node, saveOnCreation bool) error {
	if err := w.checkWritable(); err != nil {
		return err
	}
	if !w.limits.Within(0, 0, w.totalEntities()+1) {
		return types.Validation("entity", "graph limits: max entity count exceeded")
	}
	ref := weak.Make(w.handle)
	switch e := n.(type) {
	case *entity.Group:
		w.graph.Groups[e.UID.String()] = e
		e.SetWorkspace(ref)
	case *entity.ObjectBase:
		w.graph.Objects[e.UID.String()] = e
		e.SetWorkspace(ref)
	case *entity.Data:
		w.graph.Data[e.UID.String()] = e
		e.SetWorkspace(ref)
	default:
		return types.Validation("entity", fmt.Sprintf("unsupported entity class %T", n))
	}
	entity.MarkDirty(n)
	w.dirty.add(n)
	if saveOnCreation {
		return w.SaveEntity(n, false)
	}
	return nil
}

// GetEntity returns every live entity matching key: a types.UID looks up
// exactly that entity, a string matches by name. Per spec §4.3, an empty
// result is represented as a single nil element rather than an empty
// slice.
func (w *Workspace) GetEntity(key any) []entity.Node {
	switch v := key.(type) {
	case types.UID:
		if n, ok := w.FindEntity(v); ok {
			return []entity.Node{n}
		}
		return []entity.Node{nil}
	case string:
		var out []entity.Node
		for _, n := range w.allEntities() {
			if name, ok := entityName(n); ok && name == v {
				out = append(out, n)
			}
		}
		if len(out) == 0 {
			return []entity.Node{nil}
		}
		return out
	default:
		return []entity.Node{nil}
	}
}

// Stats summarizes the live entity graph, grounded on the teacher's
// hive.HiveStats summary shape.
type Stats struct {
	GroupCount  int
	ObjectCount int
	DataCount   int
	TypeCount   int
}

// Stats reports entity counts for the currently loaded graph.
func (w *Workspace) Stats() Stats {
	return Stats{
		GroupCount:  len(w.graph.Groups),
		ObjectCount: len(w.graph.Objects),
		DataCount:   len(w.graph.Data),
		TypeCount:   len(w.graph.Types.All()),
	}
}

// FindType looks up a registered type by uid (spec §4.3 "find_type").
func (w *Workspace) FindType(uid types.UID) (*entitytype.Type, bool) {
	return w.graph.Types.Find(uid)
}

// FindGroup looks up a live Group by uid.
func (w *Workspace) FindGroup(uid types.UID) (*entity.Group, bool) {
	if w.graph.Root != nil && w.graph.Root.UID == uid {
		return w.graph.Root, true
	}
	g, ok := w.graph.Groups[uid.String()]
	return g, ok
}

// FindObject looks up a live ObjectBase by uid.
func (w *Workspace) FindObject(uid types.UID) (*entity.ObjectBase, bool) {
	o, ok := w.graph.Objects[uid.String()]
	return o, ok
}

// FindData looks up a live Data entity by uid.
func (w *Workspace) FindData(uid types.UID) (*entity.Data, bool) {
	d, ok := w.graph.Data[uid.String()]
	return d, ok
}

// FindEntity looks up any live entity by uid regardless of class.
func (w *Workspace) FindEntity(uid types.UID) (entity.Node, bool) {
	if g, ok := w.FindGroup(uid); ok {
		return g, true
	}
	if o, ok := w.FindObject(uid); ok {
		return o, true
	}
	if d, ok := w.FindData(uid); ok {
		return d, true
	}
	return nil, false
}

// FindOrCreateGroupType interns a GroupType in this workspace's
// registry.
func (w *Workspace) FindOrCreateGroupType(uid types.UID, name string) entitytype.GroupType {
	return entitytype.FindOrCreateGroupType(w.graph.Types, uid, name)
}

// FindOrCreateObjectType interns an ObjectType in this workspace's
// registry.
func (w *Workspace) FindOrCreateObjectType(uid types.UID, name string) entitytype.ObjectType {
	return entitytype.FindOrCreateObjectType(w.graph.Types, uid, name)
}

// FindOrCreateDataType interns a DataType in this workspace's registry.
func (w *Workspace) FindOrCreateDataType(uid types.UID, name string, primitive types.PrimitiveType) entitytype.DataType {
	return entitytype.FindOrCreateDataType(w.graph.Types, uid, name, primitive)
}

// SaveEntity delegates n (and, if addChildren, its descendants) to the
// writer, then clears their dirty flags (spec §4.3 "save_entity").
func (w *Workspace) SaveEntity(n entity.Node, addChildren bool) error {
	if err := w.checkWritable(); err != nil {
		return err
	}
	order := []entity.Node{n}
	if addChildren {
		order = append(order, descendantsOf(n)...)
	}
	if err := writer.SaveEntities(w.container, w.graph, order); err != nil {
		return err
	}
	for _, e := range order {
		if cd, ok := e.(interface{ ClearDirty() }); ok {
			cd.ClearDirty()
		}
		w.dirty.remove(e.EntityUID())
	}
	return nil
}

// UpdateAttribute writes a single attribute on n's on-disk record, only
// if the entity is already on file (spec §4.3 "update_attribute").
// Concatenated-entity channel updates are left to the concatenation
// layer, which redirects save_entity for its members.
func (w *Workspace) UpdateAttribute(n entity.Node, name string, value any) error {
	if err := w.checkWritable(); err != nil {
		return err
	}
	if !w.onFile(n) {
		return nil
	}
	g, err := w.entityGroup(n)
	if te, ok := err.(*types.Error); ok && te.Kind == types.ErrKindNotFound {
		return nil // registered but no record written yet
	}
	if err != nil {
		return err
	}
	return g.SetAttr(format.ToFileName(name), value)
}

// RemoveEntity recursively removes n's subtree from both the live graph
// and the file (spec §4.3 "remove_entity"). Types are not swept: the
// type registry keeps every type, including ones no remaining entity
// references.
func (w *Workspace) RemoveEntity(n entity.Node) error {
	if err := w.checkWritable(); err != nil {
		return err
	}
	ids := collectSubtreeUIDs(n, make(map[types.UID]bool))
	for _, uid := range ids {
		target, ok := w.FindEntity(uid)
		if !ok {
			continue
		}
		w.detachFromParents(target)
		w.removeFromMemory(uid)
		if err := w.removeFromFile(target); err != nil {
			return err
		}
		w.dirty.remove(uid)
	}
	return nil
}

// AddChildren dispatches to parent's AddChildren, logging a warning for
// any child skipped as a duplicate (spec §4.2 "add_children"). The
// resulting child count and the parent's depth from the root are
// checked against the workspace's GraphLimits before anything is
// attached.
func (w *Workspace) AddChildren(parent entity.Node, children []entity.Node) error {
	if err := w.checkWritable(); err != nil {
		return err
	}
	adder, ok := parent.(interface{ AddChildren([]entity.Node) []entity.Node })
	if !ok {
		return types.Validation("parent", fmt.Sprintf("%T does not accept children", parent))
	}
	if !w.limits.Within(w.depthOf(parent.EntityUID())+1, len(childrenOf(parent))+len(children), 0) {
		return types.Validation("parent", "graph limits: max depth or children per container exceeded")
	}
	if obj, ok := parent.(*entity.ObjectBase); ok {
		for _, c := range children {
			d, ok := c.(*entity.Data)
			if !ok {
				continue
			}
			if !obj.ValidateAssociation(d.Association, entity.ValueLen(d.Values)) {
				return types.Validation(d.UID.String(), "add_children: data value count does not match association")
			}
		}
	}
	added := adder.AddChildren(children)
	if len(added) != len(children) {
		w.log().Warn("add_children: duplicate child skipped", "parent", parent.EntityUID().String())
	}
	for _, c := range added {
		w.registerByClass(c)
		w.dirty.add(c)
	}
	w.dirty.add(parent)
	return nil
}

// RemoveChildren dispatches to parent's RemoveChildren, then notifies
// the file to drop the removed children's records (spec §4.2
// "remove_children").
func (w *Workspace) RemoveChildren(parent entity.Node, uids []types.UID) error {
	if err := w.checkWritable(); err != nil {
		return err
	}
	remover, ok := parent.(interface{ RemoveChildren([]types.UID) []types.UID })
	if !ok {
		return types.Validation("parent", fmt.Sprintf("%T does not support child removal", parent))
	}
	removed := remover.RemoveChildren(uids)
	for _, uid := range removed {
		if target, ok := w.FindEntity(uid); ok {
			if err := w.removeFromFile(target); err != nil {
				return err
			}
		}
		w.removeFromMemory(uid)
		w.dirty.remove(uid)
	}
	w.dirty.add(parent)
	return nil
}

// entityGroup resolves n's backing container.Group for direct attribute
// writes (UpdateAttribute's single-field path).
func (w *Workspace) entityGroup(n entity.Node) (container.Group, error) {
	root, err := w.container.Group(format.RootGroupName, false)
	if err != nil {
		return nil, err
	}
	var treeName string
	switch n.(type) {
	case *entity.Group:
		if w.graph.Root != nil && n.EntityUID() == w.graph.Root.UID {
			return root.SubGroup(format.RootAttrName, false)
		}
		treeName = format.GroupsGroupName
	case *entity.ObjectBase:
		treeName = format.ObjectsGroupName
	case *entity.Data:
		treeName = format.DataGroupName
	default:
		return nil, types.Validation("entity", fmt.Sprintf("unsupported entity class %T", n))
	}
	tree, err := root.SubGroup(treeName, false)
	if err != nil {
		return nil, err
	}
	return tree.SubGroup(n.EntityUID().String(), false)
}

func (w *Workspace) onFile(n entity.Node) bool {
	wb, ok := n.(interface{ Workspace() *types.WorkspaceHandle })
	return ok && wb.Workspace() != nil
}

func (w *Workspace) registerByClass(n entity.Node) {
	ref := weak.Make(w.handle)
	switch e := n.(type) {
	case *entity.Group:
		w.graph.Groups[e.UID.String()] = e
		e.SetWorkspace(ref)
	case *entity.ObjectBase:
		w.graph.Objects[e.UID.String()] = e
		e.SetWorkspace(ref)
	case *entity.Data:
		w.graph.Data[e.UID.String()] = e
		e.SetWorkspace(ref)
	}
}

func (w *Workspace) lookupNode(uid types.UID) (entity.Node, bool) {
	return w.FindEntity(uid)
}

func (w *Workspace) removeFromMemory(uid types.UID) {
	delete(w.graph.Groups, uid.String())
	delete(w.graph.Objects, uid.String())
	delete(w.graph.Data, uid.String())
}

func (w *Workspace) detachFromParents(n entity.Node) {
	pn, ok := n.(interface{ ParentNodes() []entity.Node })
	if !ok {
		return
	}
	for _, p := range pn.ParentNodes() {
		if remover, ok := p.(interface{ RemoveChildren([]types.UID) []types.UID }); ok {
			remover.RemoveChildren([]types.UID{n.EntityUID()})
		}
	}
}

// removeFromFile drops n's record from its kind's directory (spec §4.5
// "remove_entity(uid, kind, parent)"). A not-yet-persisted entity has no
// record to drop, which is not an error.
func (w *Workspace) removeFromFile(n entity.Node) error {
	var treeName string
	switch n.(type) {
	case *entity.Group:
		treeName = format.GroupsGroupName
	case *entity.ObjectBase:
		treeName = format.ObjectsGroupName
	case *entity.Data:
		treeName = format.DataGroupName
	default:
		return nil
	}
	root, err := w.container.Group(format.RootGroupName, false)
	if err != nil {
		return err
	}
	tree, err := root.SubGroup(treeName, false)
	if err != nil {
		return nil //nolint:nilerr // kind directory absent: nothing to remove
	}
	if err := tree.Delete(n.EntityUID().String()); err != nil {
		return nil //nolint:nilerr // not on file: nothing to remove
	}
	return nil
}

func descendantsOf(n entity.Node) []entity.Node {
	var out []entity.Node
	for _, c := range childrenOf(n) {
		out = append(out, c)
		out = append(out, descendantsOf(c)...)
	}
	return out
}

func childrenOf(n entity.Node) []entity.Node {
	switch e := n.(type) {
	case *entity.Group:
		return e.Children
	case *entity.ObjectBase:
		return e.Children
	default:
		return nil
	}
}

func collectSubtreeUIDs(n entity.Node, seen map[types.UID]bool) []types.UID {
	uid := n.EntityUID()
	if seen[uid] {
		return nil
	}
	seen[uid] = true
	out := []types.UID{uid}
	for _, c := range childrenOf(n) {
		out = append(out, collectSubtreeUIDs(c, seen)...)
	}
	return out
}

// totalEntities counts every live entity including the root group, the
// quantity GraphLimits.MaxEntities bounds.
func (w *Workspace) totalEntities() int {
	n := len(w.graph.Groups) + len(w.graph.Objects) + len(w.graph.Data)
	if w.graph.Root != nil {
		n++
	}
	return n
}

func (w *Workspace) allEntities() []entity.Node {
	var out []entity.Node
	if w.graph.Root != nil {
		out = append(out, w.graph.Root)
	}
	for _, g := range w.graph.Groups {
		out = append(out, g)
	}
	for _, o := range w.graph.Objects {
		out = append(out, o)
	}
	for _, d := range w.graph.Data {
		out = append(out, d)
	}
	return out
}

func entityName(n entity.Node) (string, bool) {
	switch e := n.(type) {
	case *entity.Group:
		return e.Name, true
	case *entity.ObjectBase:
		return e.Name, true
	case *entity.Data:
		return e.Name, true
	case *entity.PropertyGroup:
		return e.Name, true
	default:
		return "", false
	}
}
