package entity

import (
	"github.com/geoh5kit/geoh5kit/internal/concat"
	"github.com/geoh5kit/geoh5kit/internal/entitytype"
	"github.com/geoh5kit/geoh5kit/pkg/types"
)

// Group is a container entity whose children may be any entity kind
// (spec §2, "Group — children: any entities"). RootGroup and
// DrillholeGroup are distinguished by Kind; every group-type uid the
// registry doesn't recognize falls back to GroupKindCustom, matching
// spec §9's note that CustomGroup is the catch-all for unregistered
// group-type uids.
type Group struct {
	Base
	TypeRef

	Kind GroupKind

	// Concatenator owns the shared per-channel arrays and uid index for
	// descendants whose records are concatenated rather than
	// individually stored (populated only when Kind ==
	// GroupKindDrillhole — spec §4.7).
	Concatenator *concat.Concatenator
}

// GroupKind distinguishes the group flavors spec §2/§9 name.
type GroupKind int

const (
	GroupKindCustom GroupKind = iota
	GroupKindRoot
	GroupKindDrillhole
)

// NewGroup constructs a Group of the given kind, registered against
// groupType.
func NewGroup(name string, kind GroupKind, groupType entitytype.GroupType) *Group {
	g := &Group{
		Base:    NewBase(name),
		TypeRef: TypeRef{EntityType: groupType.Type},
		Kind:    kind,
	}
	if kind == GroupKindDrillhole {
		g.Concatenator = concat.NewConcatenator(g.UID)
	}
	return g
}

// AddChildren appends each of children not already present, matching
// spec §3's add_children contract. It returns the subset actually
// added (duplicates are skipped, not erroneous) so the caller
// (Workspace) can log a warning for any short-circuited entry. Adding
// an ObjectBase under a DrillholeGroup binds its storage to the
// group's shared concatenated arrays rather than leaving it to save as
// a standalone record (spec §4.7).
func (g *Group) AddChildren(children []Node) []Node {
	added := make([]Node, 0, len(children))
	for _, c := range children {
		if g.addChild(c) {
			added = append(added, c)
			if p, ok := c.(interface{ addParentNode(Node) bool }); ok {
				p.addParentNode(g)
			}
			if g.Kind == GroupKindDrillhole && g.Concatenator != nil {
				if obj, ok := c.(*ObjectBase); ok {
					g.Concatenator.AddObject(obj.UID, map[string]any{"Name": obj.Name})
				}
			}
			MarkDirty(c)
		}
	}
	if len(added) > 0 {
		MarkDirty(g)
	}
	return added
}

// RemoveChildren removes each of uids from g's child list, matching
// spec §3's remove_children contract (PropertyGroup/Data-specific
// cleanup is handled by ObjectBase.RemoveChildren, which this package's
// Group does not need since property groups only attach to objects).
func (g *Group) RemoveChildren(uids []types.UID) []types.UID {
	removed := make([]types.UID, 0, len(uids))
	for _, uid := range uids {
		if g.removeChild(uid) {
			removed = append(removed, uid)
		}
	}
	if len(removed) > 0 {
		MarkDirty(g)
	}
	return removed
}

// Copy deep-copies g under newParent (nil leaves it unparented),
// matching spec §4.2's container-level "copy(parent, copy_children,
// clear_cache, mask)". Mask has no meaning for a Group's own geometry
// (groups carry none); it is threaded through to each copied
// *ObjectBase child, per the same contract applied at that level.
func (g *Group) Copy(newParent *Group, copyChildren bool, clearCache bool, mask []bool) *Group {
	dst := NewGroup(g.Name, g.Kind, entitytype.GroupType{Type: g.EntityType})

	if newParent != nil {
		newParent.AddChildren([]Node{dst})
	}

	if copyChildren {
		for _, c := range g.Children {
			switch child := c.(type) {
			case *ObjectBase:
				_, _ = child.Copy(dst, true, clearCache, mask)
			case *Group:
				child.Copy(dst, true, clearCache, mask)
			}
		}
	}

	if clearCache {
		dst.ClearDirty()
	}
	return dst
}
