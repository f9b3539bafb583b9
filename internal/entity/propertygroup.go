package entity

import "github.com/geoh5kit/geoh5kit/pkg/types"

// PropertyGroupType enumerates the group_type values spec §2 names for
// PropertyGroup.
type PropertyGroupType int

const (
	PropertyGroupMulti PropertyGroupType = iota
	PropertyGroupDipDirectionDip
	PropertyGroupStrikeDip
	PropertyGroup3DVector
	PropertyGroupDepth
	PropertyGroupStratigraphy
	PropertyGroupInterval
)

func (t PropertyGroupType) String() string {
	switch t {
	case PropertyGroupDipDirectionDip:
		return "Dip direction & dip"
	case PropertyGroupStrikeDip:
		return "Strike & dip"
	case PropertyGroup3DVector:
		return "3D vector"
	case PropertyGroupDepth:
		return "Depth"
	case PropertyGroupStratigraphy:
		return "Stratigraphy"
	case PropertyGroupInterval:
		return "Interval"
	default:
		return "Multi"
	}
}

// ParsePropertyGroupType reverses PropertyGroupType.String, defaulting
// to PropertyGroupMulti for an unrecognized or empty string.
func ParsePropertyGroupType(s string) PropertyGroupType {
	switch s {
	case "Dip direction & dip":
		return PropertyGroupDipDirectionDip
	case "Strike & dip":
		return PropertyGroupStrikeDip
	case "3D vector":
		return PropertyGroup3DVector
	case "Depth":
		return PropertyGroupDepth
	case "Stratigraphy":
		return PropertyGroupStratigraphy
	case "Interval":
		return PropertyGroupInterval
	default:
		return PropertyGroupMulti
	}
}

// PropertyGroup is a named, ordered list of data identifiers sharing a
// common association on one parent object (spec §2). It is a child of
// exactly one ObjectBase; its members are Data entities that are
// siblings of it, not children.
type PropertyGroup struct {
	UID  types.UID
	Name string
	Kind PropertyGroupType

	Association types.Association
	Properties  []types.UID // ordered member data uids

	parents []Node
}

// NewPropertyGroup constructs a PropertyGroup with a fresh uid.
func NewPropertyGroup(name string, kind PropertyGroupType) *PropertyGroup {
	return &PropertyGroup{UID: types.NewUID(), Name: name, Kind: kind}
}

// EntityUID satisfies Node.
func (pg *PropertyGroup) EntityUID() types.UID { return pg.UID }

func (pg *PropertyGroup) markDirtyNode() {}

func (pg *PropertyGroup) addParentNode(parent Node) bool {
	for _, p := range pg.parents {
		if p.EntityUID() == parent.EntityUID() {
			return false
		}
	}
	pg.parents = append(pg.parents, parent)
	return true
}

// AddMember appends dataUID to Properties if not already present,
// setting Association from the first member added when pg.Association
// is still AssociationUnknown.
func (pg *PropertyGroup) AddMember(dataUID types.UID, assoc types.Association) {
	for _, uid := range pg.Properties {
		if uid == dataUID {
			return
		}
	}
	if pg.Association == types.AssociationUnknown {
		pg.Association = assoc
	}
	pg.Properties = append(pg.Properties, dataUID)
}

// RemoveMember strips dataUID from Properties, matching spec §3's
// remove_children contract for Data removal.
func (pg *PropertyGroup) RemoveMember(dataUID types.UID) {
	for i, uid := range pg.Properties {
		if uid == dataUID {
			pg.Properties = append(pg.Properties[:i], pg.Properties[i+1:]...)
			return
		}
	}
}
