package entity

import (
	"github.com/geoh5kit/geoh5kit/internal/entitytype"
	"github.com/geoh5kit/geoh5kit/pkg/types"
)

// ObjectKind distinguishes the concrete object subtypes spec §2 names
// (Points, Curve, Surface, GridObject, Drillhole), plus a catch-all for
// unregistered object-type uids (mirrors GroupKindCustom).
type ObjectKind int

const (
	ObjectKindCustom ObjectKind = iota
	ObjectKindPoints
	ObjectKindCurve
	ObjectKindSurface
	ObjectKindGrid
	ObjectKindDrillhole
)

// Vertex is a single 3-D point in an object's vertex array.
type Vertex struct{ X, Y, Z float64 }

// Cell is an index tuple into an object's vertex array. Points objects
// never populate Cells; Curve uses 2-vertex segments, Surface uses
// 3-vertex triangles.
type Cell struct{ Indices []int32 }

// ObjectBase is the geometry-carrying entity kind (spec §2). Its
// geometry payload varies with Kind: Points only has Vertices; Curve
// and Surface also have Cells; GridObject and Drillhole have their own
// kind-specific fields below.
type ObjectBase struct {
	Base
	TypeRef

	Kind ObjectKind

	Vertices []Vertex
	Cells    []Cell

	// PropertyGroups holds the object's named data groupings (spec §2,
	// PropertyGroup: "a child of one object").
	PropertyGroups []*PropertyGroup

	// Grid fields, populated only when Kind == ObjectKindGrid.
	Grid GridGeometry

	// Drillhole fields, populated only when Kind == ObjectKindDrillhole.
	Drillhole DrillholeGeometry
}

// GridGeometry holds the structured-grid geometry a GridObject carries
// in place of an explicit vertex/cell array (spec §2, "centroids").
type GridGeometry struct {
	Origin        Vertex
	CellSizeU     []float64
	CellSizeV     []float64
	CellSizeW     []float64
	RotationDeg   float64
}

// DrillholeGeometry holds a Drillhole's collar and survey geometry
// (spec's S3 scenario: "collars", "interval data").
type DrillholeGeometry struct {
	Collar     Vertex
	SurveyDepths []float64
	SurveyDipAzm [][2]float64 // (dip, azimuth) pairs, one per survey depth
}

// NewObjectBase constructs an ObjectBase of the given kind, registered
// against objectType.
func NewObjectBase(name string, kind ObjectKind, objectType entitytype.ObjectType) *ObjectBase {
	return &ObjectBase{
		Base:    NewBase(name),
		TypeRef: TypeRef{EntityType: objectType.Type},
		Kind:    kind,
	}
}

// NVertices reports the object's vertex count, used by association
// inference in AddData (spec §3, add_data step 1).
func (o *ObjectBase) NVertices() int { return len(o.Vertices) }

// NCells reports the object's cell count.
func (o *ObjectBase) NCells() int { return len(o.Cells) }

// AddChildren appends each of children not already present. Adding a
// PropertyGroup also registers it in o.PropertyGroups, per spec §3. If
// o is itself concatenated under a DrillholeGroup parent, adding a
// float-valued Data child re-dispatches its storage to the parent's
// shared arrays instead of leaving it to save as a standalone record
// (spec §4.7).
func (o *ObjectBase) AddChildren(children []Node) []Node {
	added := make([]Node, 0, len(children))
	dhGroup := o.drillholeGroup()
	for _, c := range children {
		if !o.addChild(c) {
			continue
		}
		added = append(added, c)
		if p, ok := c.(interface{ addParentNode(Node) bool }); ok {
			p.addParentNode(o)
		}
		if pg, ok := c.(*PropertyGroup); ok {
			o.PropertyGroups = append(o.PropertyGroups, pg)
		}
		if d, ok := c.(*Data); ok && dhGroup != nil {
			if vals, ok := d.Values.([]float64); ok {
				_ = dhGroup.Concatenator.AppendChannel(o.UID, d.Name, vals)
			}
		}
		MarkDirty(c)
	}
	if len(added) > 0 {
		MarkDirty(o)
	}
	return added
}

// drillholeGroup returns the DrillholeGroup-kind Group o is a direct
// child of, or nil if o is unparented or its parent is a plain group.
func (o *ObjectBase) drillholeGroup() *Group {
	for _, p := range o.Parents {
		if g, ok := p.(*Group); ok && g.Kind == GroupKindDrillhole && g.Concatenator != nil {
			return g
		}
	}
	return nil
}

// RemoveChildren removes each of uids from o's child list. Removing a
// PropertyGroup detaches it from o.PropertyGroups; removing a Data
// entity strips its uid from every property group's member list — spec
// §3's remove_children contract.
func (o *ObjectBase) RemoveChildren(uids []types.UID) []types.UID {
	removed := make([]types.UID, 0, len(uids))
	for _, uid := range uids {
		if !o.removeChild(uid) {
			continue
		}
		removed = append(removed, uid)
		o.detachPropertyGroup(uid)
		o.removeDataFromGroups(uid)
	}
	if len(removed) > 0 {
		MarkDirty(o)
	}
	return removed
}

func (o *ObjectBase) detachPropertyGroup(uid types.UID) {
	for i, pg := range o.PropertyGroups {
		if pg.UID == uid {
			o.PropertyGroups = append(o.PropertyGroups[:i], o.PropertyGroups[i+1:]...)
			return
		}
	}
}

// removeDataFromGroups strips dataUID from every property group's
// member list, matching the teacher's RemoveChildrenValues cleanup
// shape generalized to property-group membership instead of a
// registry value list.
func (o *ObjectBase) removeDataFromGroups(dataUID types.UID) {
	for _, pg := range o.PropertyGroups {
		pg.RemoveMember(dataUID)
	}
}

// FindOrCreatePropertyGroup returns the property group named name,
// creating one of groupType if absent (spec §3).
func (o *ObjectBase) FindOrCreatePropertyGroup(name string, groupType PropertyGroupType) *PropertyGroup {
	if pg := o.GetPropertyGroup(name); pg != nil {
		return pg
	}
	pg := NewPropertyGroup(name, groupType)
	o.PropertyGroups = append(o.PropertyGroups, pg)
	pg.addParentNode(o)
	MarkDirty(o)
	return pg
}

// AddDataToGroup resolves group — a name (creating a PropertyGroupMulti
// group if none exists yet) or an existing *PropertyGroup — and adds
// each of dataUIDs as a member, mirroring geoh5py's
// object_base.add_data_to_group (spec §4.2 "add_data_to_group"). Each
// uid must already name a Data child of o.
func (o *ObjectBase) AddDataToGroup(dataUIDs []types.UID, group any) (*PropertyGroup, error) {
	var pg *PropertyGroup
	switch g := group.(type) {
	case *PropertyGroup:
		pg = g
	case string:
		pg = o.FindOrCreatePropertyGroup(g, PropertyGroupMulti)
	default:
		return nil, types.Validation("group", "add_data_to_group: group must be a name or *PropertyGroup")
	}
	for _, uid := range dataUIDs {
		d := o.findDataChild(uid)
		if d == nil {
			return nil, types.Validation(uid.String(), "add_data_to_group: uid is not a data child of this object")
		}
		pg.AddMember(d.UID, d.Association)
	}
	MarkDirty(o)
	return pg, nil
}

func (o *ObjectBase) findDataChild(uid types.UID) *Data {
	for _, c := range o.Children {
		if d, ok := c.(*Data); ok && d.UID == uid {
			return d
		}
	}
	return nil
}

// GetPropertyGroup returns the property group named name, or nil.
func (o *ObjectBase) GetPropertyGroup(name string) *PropertyGroup {
	for _, pg := range o.PropertyGroups {
		if pg.Name == name {
			return pg
		}
	}
	return nil
}

// ValidateAssociation reports whether values of the given association
// are a legal length for this object, per spec invariant: "∀ Data d
// with association == Vertex: len(d.values) == d.parent.n_vertices.
// Analogously for Cell."
func (o *ObjectBase) ValidateAssociation(assoc types.Association, length int) bool {
	switch assoc {
	case types.AssociationVertex:
		return length == o.NVertices()
	case types.AssociationCell:
		return length == o.NCells()
	default:
		return true
	}
}
