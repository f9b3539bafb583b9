// Package reader implements C5 (Persistence reader): decoding a
// container.Container's on-disk layout (spec §6.1) into a persist.Graph.
package reader

import (
	"fmt"

	"github.com/geoh5kit/geoh5kit/internal/container"
	"github.com/geoh5kit/geoh5kit/internal/entity"
	"github.com/geoh5kit/geoh5kit/internal/entitytype"
	"github.com/geoh5kit/geoh5kit/internal/format"
	"github.com/geoh5kit/geoh5kit/internal/persist"
	"github.com/geoh5kit/geoh5kit/pkg/types"
)

// Load decodes c's full entity graph per the §6.1 layout: Types first
// (so Groups/Objects/Data can resolve their Type ID links against an
// already-populated registry), then Groups/Objects/Data themselves,
// then a second pass wiring the children links each entity's subgroup
// carries.
func Load(c container.Container) (*persist.Graph, error) {
	root, err := c.Group(format.RootGroupName, false)
	if err != nil {
		return nil, err
	}

	g := persist.NewGraph()

	if err := loadTypes(root, g.Types); err != nil {
		return nil, err
	}

	rootEntityGroup, err := root.SubGroup(format.RootAttrName, false)
	if err != nil {
		return nil, format.MissingAttribute(format.RootGroupName, format.RootAttrName)
	}
	g.Root, err = loadGroup(rootEntityGroup, g.Types)
	if err != nil {
		return nil, err
	}
	g.Root.Kind = entity.GroupKindRoot

	groupsTree, err := root.SubGroup(format.GroupsGroupName, false)
	if err == nil {
		if err := loadGroups(groupsTree, g); err != nil {
			return nil, err
		}
	}

	objectsTree, err := root.SubGroup(format.ObjectsGroupName, false)
	if err == nil {
		if err := loadObjects(objectsTree, g); err != nil {
			return nil, err
		}
	}

	dataTree, err := root.SubGroup(format.DataGroupName, false)
	if err == nil {
		if err := loadData(dataTree, g); err != nil {
			return nil, err
		}
	}

	if err := wireChildren(rootEntityGroup, g.Root, g); err != nil {
		return nil, err
	}
	for uid, grp := range g.Groups {
		childGroup, err := groupsTree.SubGroup(uid, false)
		if err != nil {
			continue
		}
		if err := wireChildren(childGroup, grp, g); err != nil {
			return nil, err
		}
	}
	for uid, obj := range g.Objects {
		childGroup, err := objectsTree.SubGroup(uid, false)
		if err != nil {
			continue
		}
		if err := wireChildren(childGroup, obj, g); err != nil {
			return nil, err
		}
		if err := wirePropertyGroups(childGroup, obj); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func loadTypes(root container.Group, reg *entitytype.Registry) error {
	typesTree, err := root.SubGroup(format.TypesGroupName, false)
	if err != nil {
		return nil // no Types tree yet: brand-new file
	}
	if err := loadTypeKind(typesTree, format.GroupTypesGroupName, entitytype.KindGroup, reg); err != nil {
		return err
	}
	if err := loadTypeKind(typesTree, format.ObjectTypesGroupName, entitytype.KindObject, reg); err != nil {
		return err
	}
	return loadTypeKind(typesTree, format.DataTypesGroupName, entitytype.KindData, reg)
}

func loadTypeKind(typesTree container.Group, subName string, kind entitytype.Kind, reg *entitytype.Registry) error {
	kindTree, err := typesTree.SubGroup(subName, false)
	if err != nil {
		return nil
	}
	names, err := kindTree.SubGroupNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		tg, err := kindTree.SubGroup(name, false)
		if err != nil {
			continue
		}
		uid, err := types.ParseUID(name)
		if err != nil {
			return format.WrapCorrupt(tg.Path(), err)
		}
		t := &entitytype.Type{Kind: kind, UID: uid}
		if err := applyAttributes(tg, t); err != nil {
			return err
		}
		reg.Register(t)
	}
	return nil
}

// applyAttributes reads every attribute on g and assigns the ones Type
// understands, via format's field-name mangling table.
func applyAttributes(g container.Group, t *entitytype.Type) error {
	names, err := g.AttrNames()
	if err != nil {
		return err
	}
	for _, fileName := range names {
		value, ok := g.Attr(fileName)
		if !ok {
			continue
		}
		field := format.ToFieldName(fileName)
		switch field {
		case "Name":
			if s, ok := value.(string); ok {
				t.Name = s
			}
		case "Description":
			if s, ok := value.(string); ok {
				t.Description = s
			}
		case "Units":
			if s, ok := value.(string); ok {
				t.Units = s
			}
		case "Hidden":
			if i, ok := value.(int32); ok {
				t.Hidden = format.Int8ToBool(int8(i))
			}
		case "MappingType":
			if s, ok := value.(string); ok {
				t.MappingType = s
			}
		}
	}
	if name, ok := g.Attr(format.AttrPrimitiveType); ok {
		if s, ok := name.(string); ok {
			t.PrimitiveType = parsePrimitive(s)
		}
	}
	if vm, err := loadValueMap(g); err == nil && vm != nil {
		t.ValueMap = vm
	}
	return nil
}

func parsePrimitive(s string) types.PrimitiveType {
	for p := types.PrimitiveUnknown; p <= types.PrimitiveComments; p++ {
		if p.String() == s {
			return p
		}
	}
	return types.PrimitiveUnknown
}

func loadValueMap(g container.Group) (*types.ReferenceValueMap, error) {
	ds, err := g.Dataset(format.DatasetValueMap)
	if err != nil {
		return nil, nil //nolint:nilerr // absent value map is not an error
	}
	vm := types.NewReferenceValueMap()
	if pairs, ok := ds.Values.([]string); ok {
		// Value map stored as alternating key/label strings by the
		// writer; keys are parsed back to uint32 here.
		for i := 0; i+1 < len(pairs); i += 2 {
			var key uint32
			if _, err := fmt.Sscan(pairs[i], &key); err == nil {
				vm.Set(key, pairs[i+1])
			}
		}
	}
	return vm, nil
}

func loadGroups(groupsTree container.Group, g *persist.Graph) error {
	names, err := groupsTree.SubGroupNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		gg, err := groupsTree.SubGroup(name, false)
		if err != nil {
			continue
		}
		grp, err := loadGroup(gg, g.Types)
		if err != nil {
			return err
		}
		g.Groups[grp.UID.String()] = grp
	}
	return nil
}

func loadGroup(gg container.Group, reg *entitytype.Registry) (*entity.Group, error) {
	grp := entity.NewGroup("", entity.GroupKindCustom, entitytype.GroupType{Type: &entitytype.Type{Kind: entitytype.KindGroup}})
	if err := applyEntityAttributes(gg, &grp.Base); err != nil {
		return nil, err
	}
	if tid, ok := groupTypeUID(gg); ok {
		if t, ok := reg.Find(tid); ok {
			grp.EntityType = t
		}
	}
	if grp.EntityType != nil && grp.EntityType.Name == format.DrillholeGroupTypeName {
		grp.Kind = entity.GroupKindDrillhole
		grp.Concatenator = loadConcatenator(gg, grp.UID)
	}
	return grp, nil
}

func loadObjects(objectsTree container.Group, g *persist.Graph) error {
	names, err := objectsTree.SubGroupNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		og, err := objectsTree.SubGroup(name, false)
		if err != nil {
			continue
		}
		obj := entity.NewObjectBase("", entity.ObjectKindCustom, entitytype.ObjectType{Type: &entitytype.Type{Kind: entitytype.KindObject}})
		if err := applyEntityAttributes(og, &obj.Base); err != nil {
			return err
		}
		if tid, ok := groupTypeUID(og); ok {
			if t, ok := g.Types.Find(tid); ok {
				obj.EntityType = t
			}
		}
		if ds, err := og.Dataset(format.DatasetVertices); err == nil {
			obj.Vertices = decodeVertices(ds)
		}
		if ds, err := og.Dataset(format.DatasetCells); err == nil {
			obj.Cells = decodeCells(ds)
		}
		g.Objects[obj.UID.String()] = obj
	}
	return nil
}

func decodeVertices(ds container.Dataset) []entity.Vertex {
	flat, ok := ds.Values.([]float64)
	if !ok {
		return nil
	}
	out := make([]entity.Vertex, 0, len(flat)/3)
	for i := 0; i+2 < len(flat); i += 3 {
		out = append(out, entity.Vertex{X: flat[i], Y: flat[i+1], Z: flat[i+2]})
	}
	return out
}

func decodeCells(ds container.Dataset) []entity.Cell {
	flat, ok := ds.Values.([]int32)
	if !ok || len(ds.Dims) != 2 {
		return nil
	}
	width := ds.Dims[1]
	out := make([]entity.Cell, 0, len(flat)/width)
	for i := 0; i+width <= len(flat); i += width {
		idx := make([]int32, width)
		copy(idx, flat[i:i+width])
		out = append(out, entity.Cell{Indices: idx})
	}
	return out
}

func loadData(dataTree container.Group, g *persist.Graph) error {
	names, err := dataTree.SubGroupNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		dg, err := dataTree.SubGroup(name, false)
		if err != nil {
			continue
		}
		d := &entity.Data{Base: entity.NewBase("")}
		if err := applyEntityAttributes(dg, &d.Base); err != nil {
			return err
		}
		if assocAttr, ok := dg.Attr(format.AttrAssociation); ok {
			if s, ok := assocAttr.(string); ok {
				d.Association = types.ParseAssociation(s)
			}
		}
		if tid, ok := groupTypeUID(dg); ok {
			if t, ok := g.Types.Find(tid); ok {
				d.EntityType = t
			}
		}
		if ds, err := dg.Dataset(format.DatasetValues); err == nil {
			d.Values = decodeValues(ds, d.EntityType)
		}
		g.Data[d.UID.String()] = d
	}
	return nil
}

func decodeValues(ds container.Dataset, t *entitytype.Type) any {
	if t == nil {
		return ds.Values
	}
	switch t.PrimitiveType {
	case types.PrimitiveBoolean:
		if v, ok := ds.Values.([]byte); ok {
			asInt8 := make([]int8, len(v))
			for i, b := range v {
				asInt8[i] = int8(b)
			}
			return format.Int8SliceToBool(asInt8)
		}
	}
	return ds.Values
}

func groupTypeUID(g container.Group) (types.UID, bool) {
	v, ok := g.Attr(format.AttrTypeUID)
	if !ok {
		return types.NilUID, false
	}
	s, ok := v.(string)
	if !ok {
		return types.NilUID, false
	}
	uid, err := types.ParseUID(s)
	if err != nil {
		return types.NilUID, false
	}
	return uid, true
}

func applyEntityAttributes(g container.Group, b *entity.Base) error {
	if v, ok := g.Attr(format.AttrUID); ok {
		if s, ok := v.(string); ok {
			uid, err := types.ParseUID(s)
			if err != nil {
				return format.WrapCorrupt(g.Path(), err)
			}
			b.UID = uid
		}
	}
	if v, ok := g.Attr(format.AttrName); ok {
		if s, ok := v.(string); ok {
			b.Name = s
		}
	}
	if v, ok := g.Attr(format.AttrPublic); ok {
		if i, ok := v.(int32); ok {
			b.Public = format.Int8ToBool(int8(i))
		}
	}
	if v, ok := g.Attr(format.AttrVisible); ok {
		if i, ok := v.(int32); ok {
			b.Visible = format.Int8ToBool(int8(i))
		}
	}
	if v, ok := g.Attr(format.AttrAllowDelete); ok {
		if i, ok := v.(int32); ok {
			b.AllowDelete = format.Int8ToBool(int8(i))
		}
	}
	if v, ok := g.Attr(format.AttrAllowRename); ok {
		if i, ok := v.(int32); ok {
			b.AllowRename = format.Int8ToBool(int8(i))
		}
	}
	if v, ok := g.Attr(format.AttrAllowMove); ok {
		if i, ok := v.(int32); ok {
			b.AllowMove = format.Int8ToBool(int8(i))
		}
	}
	if b.UID.IsNil() {
		b.UID = types.NewUID()
	}
	return nil
}

// wireChildren reads the Groups/Objects/Data child-link subgroups
// beneath entityGroup and attaches the resolved entities as children
// of parent.
func wireChildren(entityGroup container.Group, parent interface {
	AddChildren([]entity.Node) []entity.Node
}, g *persist.Graph) error {
	var children []entity.Node

	if childTree, err := entityGroup.SubGroup(format.GroupsGroupName, false); err == nil {
		names, _ := childTree.SubGroupNames()
		for _, uid := range names {
			if c, ok := g.Groups[uid]; ok {
				children = append(children, c)
			}
		}
	}
	if childTree, err := entityGroup.SubGroup(format.ObjectsGroupName, false); err == nil {
		names, _ := childTree.SubGroupNames()
		for _, uid := range names {
			if c, ok := g.Objects[uid]; ok {
				children = append(children, c)
			}
		}
	}
	if childTree, err := entityGroup.SubGroup(format.DataGroupName, false); err == nil {
		names, _ := childTree.SubGroupNames()
		for _, uid := range names {
			if c, ok := g.Data[uid]; ok {
				children = append(children, c)
			}
		}
	}

	parent.AddChildren(children)
	return nil
}

func wirePropertyGroups(objGroup container.Group, obj *entity.ObjectBase) error {
	pgTree, err := objGroup.SubGroup(format.GroupPropertyGroups, false)
	if err != nil {
		return nil
	}
	names, err := pgTree.SubGroupNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		pgGroup, err := pgTree.SubGroup(name, false)
		if err != nil {
			continue
		}
		pg := entity.NewPropertyGroup("", entity.PropertyGroupMulti)
		if uid, err := types.ParseUID(name); err == nil {
			pg.UID = uid
		}
		if v, ok := pgGroup.Attr(format.AttrName); ok {
			if s, ok := v.(string); ok {
				pg.Name = s
			}
		}
		if v, ok := pgGroup.Attr(format.AttrAssociation); ok {
			if s, ok := v.(string); ok {
				pg.Association = types.ParseAssociation(s)
			}
		}
		if v, ok := pgGroup.Attr(format.AttrPropertyGroupType); ok {
			if s, ok := v.(string); ok {
				pg.Kind = entity.ParsePropertyGroupType(s)
			}
		}
		if propsDS, err := pgGroup.Dataset(format.DatasetProperties); err == nil {
			if ids, ok := propsDS.Values.([]string); ok {
				for _, s := range ids {
					if uid, err := types.ParseUID(s); err == nil {
						pg.Properties = append(pg.Properties, uid)
					}
				}
			}
		}
		obj.PropertyGroups = append(obj.PropertyGroups, pg)
	}
	return nil
}
