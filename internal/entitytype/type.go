// Package entitytype implements C2 (Entity type registry): GroupType,
// ObjectType, and DataType, and the workspace-scoped registry that
// interns them by uid so identical types are shared rather than
// duplicated (spec §3, "find_or_create").
package entitytype

import (
	"weak"

	"github.com/geoh5kit/geoh5kit/pkg/types"
)

// Kind distinguishes the three entity-type flavors (spec §3).
type Kind int

const (
	KindGroup Kind = iota
	KindObject
	KindData
)

// Type is the shared base for GroupType, ObjectType, and DataType,
// grounded on geoh5py's EntityType (original_source
// geoh5py/shared/entity_type.py): a uid-identified, workspace-owned
// record that entities of the matching kind all point back to.
//
// Workspace is a weak.Pointer rather than a plain pointer: a Type must
// never keep its owning Workspace alive by itself (mirrors the
// teacher's dirty-tracking ownership direction — types are owned BY the
// registry, they do not own it back).
//
// Kind-specific fields are flattened onto Type rather than split into
// separate embedding structs, because the Registry interns *Type
// values: a GroupType/ObjectType/DataType is a thin view constructor
// over a shared *Type, so any field that needs to survive a
// Registry.Find round-trip has to live on Type itself.
type Type struct {
	Kind Kind
	UID  types.UID

	Name        string
	Description string

	// GroupType fields.
	AllowMoveContent bool

	// DataType fields (spec §4's Data primitive-type metadata).
	PrimitiveType types.PrimitiveType
	Units         string
	NumberOfBins  int
	Hidden        bool
	Transparent   bool
	MappingType   string
	ValueMap      *types.ReferenceValueMap

	workspace weak.Pointer[types.WorkspaceHandle]
}

// SetWorkspace assigns the owning workspace exactly once, per
// geoh5py's "_workspace" setter raising if already set. Returns false
// if a different workspace was already assigned.
func (t *Type) SetWorkspace(w weak.Pointer[types.WorkspaceHandle]) bool {
	if t.workspace != (weak.Pointer[types.WorkspaceHandle]{}) {
		existing := t.workspace.Value()
		next := w.Value()
		if existing != nil && next != nil && existing.UID != next.UID {
			return false
		}
	}
	t.workspace = w
	return true
}

// OnFile reports whether this type is already registered to a live
// workspace, mirroring geoh5py's EntityType.on_file.
func (t *Type) OnFile() bool {
	return t.workspace.Value() != nil
}
