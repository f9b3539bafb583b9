// Package entity implements C3 (Entity graph): Group, ObjectBase and
// its concrete object subtypes, Data and its primitive subtypes, and
// PropertyGroup, plus the dirty-tracking and parent/child bookkeeping
// the graph needs between a caller's mutations and the next flush.
//
// Grounded on the teacher's dirty-tracking tree (pkg/ast.Node: Dirty,
// MarkDirty bubbling to ancestors) generalized from a registry-key tree
// to an arbitrary-shape DAG of Group/Object/Data nodes, since geoh5's
// graph allows an Object to belong to Groups and a Data to be
// referenced by multiple Objects, rather than the strict single-parent
// tree a registry hive has.
package entity

import (
	"weak"

	"github.com/geoh5kit/geoh5kit/internal/entitytype"
	"github.com/geoh5kit/geoh5kit/pkg/types"
)

// Base is embedded by every entity kind (Group, ObjectBase, Data,
// PropertyGroup) and carries the attributes and dirty/graph bookkeeping
// common to all of them (spec §2, "Entity" common fields).
type Base struct {
	UID  types.UID
	Name string

	Public      bool
	Visible     bool
	AllowDelete bool
	AllowRename bool
	AllowMove   bool

	Parents  []Node
	Children []Node

	dirty     bool
	workspace weak.Pointer[types.WorkspaceHandle]
}

// Node is the minimal interface the graph bookkeeping needs from any
// entity kind, letting Base.MarkDirty and add/remove-children logic
// operate uniformly over Group, ObjectBase, and Data without a
// dependency cycle back onto the concrete types.
type Node interface {
	EntityUID() types.UID
	markDirtyNode()
}

// EntityUID returns the entity's identifier.
func (b *Base) EntityUID() types.UID { return b.UID }

// NewBase returns a Base with a fresh uid and the permissive defaults
// geoh5py assigns new entities (public/visible true, deletion allowed).
func NewBase(name string) Base {
	return Base{
		UID:         types.NewUID(),
		Name:        name,
		Public:      true,
		Visible:     true,
		AllowDelete: true,
		AllowRename: true,
		AllowMove:   true,
	}
}

// Dirty reports whether this entity has unflushed changes.
func (b *Base) Dirty() bool { return b.dirty }

// ClearDirty resets the dirty flag after a successful flush.
func (b *Base) ClearDirty() { b.dirty = false }

// markDirtyNode marks this entity dirty. It does not bubble to parents
// by itself — MarkDirty (below) does that, mirroring the teacher's
// Node.MarkDirty walking Parent pointers; here there may be several
// parents, so the bubbling walks a slice instead of a single pointer.
func (b *Base) markDirtyNode() { b.dirty = true }

// MarkDirty marks self dirty and recurses into every parent, stopping
// early down any branch whose parent is already dirty (an ancestor
// chain that is already marked has nothing left to propagate), exactly
// as the teacher's AST dirty-bubbling short-circuits.
func MarkDirty(n Node) {
	n.markDirtyNode()
	if b, ok := n.(interface{ ParentNodes() []Node }); ok {
		for _, p := range b.ParentNodes() {
			if pb, ok := p.(interface{ IsDirty() bool }); ok && pb.IsDirty() {
				continue
			}
			MarkDirty(p)
		}
	}
}

// ParentNodes exposes Parents for the MarkDirty walk.
func (b *Base) ParentNodes() []Node { return b.Parents }

// addParentNode lets a container register itself as a parent on a
// newly-added child without needing a direct dependency on the child's
// concrete type — every Base-embedding entity gets this for free.
func (b *Base) addParentNode(parent Node) bool { return b.addParent(parent) }

// IsDirty exposes the dirty flag for the MarkDirty walk's
// already-dirty short-circuit.
func (b *Base) IsDirty() bool { return b.dirty }

// SetWorkspace assigns the owning workspace exactly once; see
// entitytype.Type.SetWorkspace for the identical contract.
func (b *Base) SetWorkspace(w weak.Pointer[types.WorkspaceHandle]) bool {
	if b.workspace != (weak.Pointer[types.WorkspaceHandle]{}) {
		existing := b.workspace.Value()
		next := w.Value()
		if existing != nil && next != nil && existing.UID != next.UID {
			return false
		}
	}
	b.workspace = w
	return true
}

// Workspace returns the owning workspace handle, or nil if the
// workspace has since been closed/garbage-collected or was never set.
func (b *Base) Workspace() *types.WorkspaceHandle {
	return b.workspace.Value()
}

// addChild appends child to b.Children, refusing a duplicate uid
// (spec §3, add_children: "duplicate child insertion" is a warning
// condition the caller (Workspace) logs, not an error here — base just
// reports whether it was actually added).
func (b *Base) addChild(child Node) bool {
	for _, c := range b.Children {
		if c.EntityUID() == child.EntityUID() {
			return false
		}
	}
	b.Children = append(b.Children, child)
	return true
}

// removeChild removes child by uid. Returns false if not present.
func (b *Base) removeChild(uid types.UID) bool {
	for i, c := range b.Children {
		if c.EntityUID() == uid {
			b.Children = append(b.Children[:i], b.Children[i+1:]...)
			return true
		}
	}
	return false
}

// addParent appends parent to b.Parents, refusing a duplicate.
func (b *Base) addParent(parent Node) bool {
	for _, p := range b.Parents {
		if p.EntityUID() == parent.EntityUID() {
			return false
		}
	}
	b.Parents = append(b.Parents, parent)
	return true
}

// removeParent removes parent by uid.
func (b *Base) removeParent(uid types.UID) bool {
	for i, p := range b.Parents {
		if p.EntityUID() == uid {
			b.Parents = append(b.Parents[:i], b.Parents[i+1:]...)
			return true
		}
	}
	return false
}

// TypeRef is embedded by entities that carry a reference to their
// entitytype.Type (every entity kind except PropertyGroup, which has no
// type of its own per spec §3).
type TypeRef struct {
	EntityType *entitytype.Type
}
