// Package writer implements C6 (Persistence writer): encoding a
// persist.Graph's entities into a container.Container per the §6.1
// on-disk layout.
package writer

import (
	"fmt"

	"github.com/geoh5kit/geoh5kit/internal/container"
	"github.com/geoh5kit/geoh5kit/internal/entity"
	"github.com/geoh5kit/geoh5kit/internal/entitytype"
	"github.com/geoh5kit/geoh5kit/internal/format"
	"github.com/geoh5kit/geoh5kit/internal/persist"
	"github.com/geoh5kit/geoh5kit/pkg/types"
)

// Init lays out the five fixed root-level groups a brand-new geoh5
// file needs (spec §6.1), and stamps the project attributes.
func Init(c container.Container, projectAttrs map[string]any) error {
	root, err := c.Group(format.RootGroupName, true)
	if err != nil {
		return err
	}
	for name, value := range projectAttrs {
		if err := root.SetAttr(name, value); err != nil {
			return err
		}
	}
	if _, ok := projectAttrs[format.AttrVersion]; !ok {
		if err := root.SetAttr(format.AttrVersion, format.CurrentFormatVersion); err != nil {
			return err
		}
	}
	for _, name := range []string{format.RootAttrName, format.GroupsGroupName, format.ObjectsGroupName, format.DataGroupName} {
		if _, err := root.SubGroup(name, true); err != nil {
			return err
		}
	}
	typesRoot, err := root.SubGroup(format.TypesGroupName, true)
	if err != nil {
		return err
	}
	for _, name := range []string{format.GroupTypesGroupName, format.ObjectTypesGroupName, format.DataTypesGroupName} {
		if _, err := typesRoot.SubGroup(name, true); err != nil {
			return err
		}
	}
	return nil
}

// SaveEntities writes every entity in order (parents before
// children, per spec §5's topological ordering), ensuring each
// entity's type record exists first — spec §6.2's save_entity
// contract: "ensure the entity's type record exists, write the
// entity's attributes, create typed sub-groups ... as required".
func SaveEntities(c container.Container, g *persist.Graph, order []entity.Node) error {
	root, err := c.Group(format.RootGroupName, true)
	if err != nil {
		return err
	}
	for _, n := range order {
		switch e := n.(type) {
		case *entity.Group:
			if err := saveType(root, e.EntityType, entitytype.KindGroup); err != nil {
				return err
			}
			if err := saveGroup(root, e); err != nil {
				return err
			}
			if e.Kind == entity.GroupKindDrillhole && e.Concatenator != nil {
				groupsTree, err := root.SubGroup(format.GroupsGroupName, true)
				if err != nil {
					return err
				}
				gg, err := groupsTree.SubGroup(e.UID.String(), true)
				if err != nil {
					return err
				}
				if err := SaveConcatenator(gg, e.Concatenator); err != nil {
					return err
				}
			}
		case *entity.ObjectBase:
			if err := saveType(root, e.EntityType, entitytype.KindObject); err != nil {
				return err
			}
			if err := saveObject(root, e); err != nil {
				return err
			}
		case *entity.Data:
			if err := saveType(root, e.EntityType, entitytype.KindData); err != nil {
				return err
			}
			if err := saveData(root, e); err != nil {
				return err
			}
		}
	}
	return nil
}

func kindTreeName(kind entitytype.Kind) string {
	switch kind {
	case entitytype.KindGroup:
		return format.GroupTypesGroupName
	case entitytype.KindObject:
		return format.ObjectTypesGroupName
	default:
		return format.DataTypesGroupName
	}
}

func saveType(root container.Group, t *entitytype.Type, kind entitytype.Kind) error {
	if t == nil {
		return nil
	}
	typesRoot, err := root.SubGroup(format.TypesGroupName, true)
	if err != nil {
		return err
	}
	kindTree, err := typesRoot.SubGroup(kindTreeName(kind), true)
	if err != nil {
		return err
	}
	tg, err := kindTree.SubGroup(t.UID.String(), true)
	if err != nil {
		return err
	}
	if err := tg.SetAttr(format.AttrName, format.NormalizeName(t.Name)); err != nil {
		return err
	}
	if t.Description != "" {
		if err := tg.SetAttr(format.AttrTypeDescription, t.Description); err != nil {
			return err
		}
	}
	if kind == entitytype.KindData {
		if err := tg.SetAttr(format.AttrPrimitiveType, t.PrimitiveType.String()); err != nil {
			return err
		}
		if t.Units != "" {
			if err := tg.SetAttr(format.AttrTypeUnits, t.Units); err != nil {
				return err
			}
		}
		if t.ValueMap != nil {
			if err := saveValueMap(tg, t.ValueMap); err != nil {
				return err
			}
		}
	}
	return nil
}

func saveValueMap(tg container.Group, vm *types.ReferenceValueMap) error {
	keys := vm.Keys()
	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		label, _ := vm.Label(k)
		pairs = append(pairs, fmt.Sprintf("%d", k), label)
	}
	return tg.WriteDataset(format.DatasetValueMap, container.Dataset{Values: pairs, Dims: []int{len(pairs)}})
}

func saveEntityAttrs(g container.Group, b *entity.Base) error {
	if err := g.SetAttr(format.AttrUID, b.UID.String()); err != nil {
		return err
	}
	if err := g.SetAttr(format.AttrName, format.NormalizeName(b.Name)); err != nil {
		return err
	}
	if err := g.SetAttr(format.AttrPublic, int32(format.BoolToInt8(b.Public))); err != nil {
		return err
	}
	if err := g.SetAttr(format.AttrVisible, int32(format.BoolToInt8(b.Visible))); err != nil {
		return err
	}
	if err := g.SetAttr(format.AttrAllowDelete, int32(format.BoolToInt8(b.AllowDelete))); err != nil {
		return err
	}
	if err := g.SetAttr(format.AttrAllowRename, int32(format.BoolToInt8(b.AllowRename))); err != nil {
		return err
	}
	return g.SetAttr(format.AttrAllowMove, int32(format.BoolToInt8(b.AllowMove)))
}

func saveGroup(root container.Group, grp *entity.Group) error {
	var gg container.Group
	var err error
	if grp.Kind == entity.GroupKindRoot {
		// The root group's own record lives directly under the fixed
		// "Root" subgroup (spec §6.1), not under Groups/<uid> like every
		// other group — reader.Load resolves it the same way.
		gg, err = root.SubGroup(format.RootAttrName, true)
	} else {
		var groupsTree container.Group
		groupsTree, err = root.SubGroup(format.GroupsGroupName, true)
		if err == nil {
			gg, err = groupsTree.SubGroup(grp.UID.String(), true)
		}
	}
	if err != nil {
		return err
	}
	if err := saveEntityAttrs(gg, &grp.Base); err != nil {
		return err
	}
	if grp.EntityType != nil {
		if err := gg.SetAttr(format.AttrTypeUID, grp.EntityType.UID.String()); err != nil {
			return err
		}
	}
	return saveChildLinks(gg, grp.Children)
}

func saveObject(root container.Group, obj *entity.ObjectBase) error {
	objectsTree, err := root.SubGroup(format.ObjectsGroupName, true)
	if err != nil {
		return err
	}
	og, err := objectsTree.SubGroup(obj.UID.String(), true)
	if err != nil {
		return err
	}
	if err := saveEntityAttrs(og, &obj.Base); err != nil {
		return err
	}
	if obj.EntityType != nil {
		if err := og.SetAttr(format.AttrTypeUID, obj.EntityType.UID.String()); err != nil {
			return err
		}
	}
	if len(obj.Vertices) > 0 {
		flat := make([]float64, 0, len(obj.Vertices)*3)
		for _, v := range obj.Vertices {
			flat = append(flat, v.X, v.Y, v.Z)
		}
		if err := og.WriteDataset(format.DatasetVertices, container.Dataset{Values: flat, Dims: []int{len(obj.Vertices), 3}}); err != nil {
			return err
		}
	}
	if len(obj.Cells) > 0 {
		width := len(obj.Cells[0].Indices)
		flat := make([]int32, 0, len(obj.Cells)*width)
		for _, c := range obj.Cells {
			flat = append(flat, c.Indices...)
		}
		if err := og.WriteDataset(format.DatasetCells, container.Dataset{Values: flat, Dims: []int{len(obj.Cells), width}}); err != nil {
			return err
		}
	}
	if err := savePropertyGroups(og, obj.PropertyGroups); err != nil {
		return err
	}
	return saveChildLinks(og, obj.Children)
}

func savePropertyGroups(og container.Group, groups []*entity.PropertyGroup) error {
	if len(groups) == 0 {
		return nil
	}
	pgTree, err := og.SubGroup(format.GroupPropertyGroups, true)
	if err != nil {
		return err
	}
	for _, pg := range groups {
		pgGroup, err := pgTree.SubGroup(pg.UID.String(), true)
		if err != nil {
			return err
		}
		if err := pgGroup.SetAttr(format.AttrName, format.NormalizeName(pg.Name)); err != nil {
			return err
		}
		if err := pgGroup.SetAttr(format.AttrAssociation, pg.Association.String()); err != nil {
			return err
		}
		if err := pgGroup.SetAttr(format.AttrPropertyGroupType, pg.Kind.String()); err != nil {
			return err
		}
		if len(pg.Properties) > 0 {
			ids := make([]string, len(pg.Properties))
			for i, uid := range pg.Properties {
				ids[i] = uid.String()
			}
			if err := pgGroup.WriteDataset(format.DatasetProperties, container.Dataset{Values: ids, Dims: []int{len(ids)}}); err != nil {
				return err
			}
		}
	}
	return nil
}

func saveData(root container.Group, d *entity.Data) error {
	dataTree, err := root.SubGroup(format.DataGroupName, true)
	if err != nil {
		return err
	}
	dg, err := dataTree.SubGroup(d.UID.String(), true)
	if err != nil {
		return err
	}
	if err := saveEntityAttrs(dg, &d.Base); err != nil {
		return err
	}
	if d.EntityType != nil {
		if err := dg.SetAttr(format.AttrTypeUID, d.EntityType.UID.String()); err != nil {
			return err
		}
	}
	if err := dg.SetAttr(format.AttrAssociation, d.Association.String()); err != nil {
		return err
	}
	return saveDataValues(dg, d)
}

func saveDataValues(dg container.Group, d *entity.Data) error {
	switch values := d.Values.(type) {
	case []int32:
		return dg.WriteDataset(format.DatasetValues, container.Dataset{Values: values, Dims: []int{len(values)}})
	case []float64:
		return dg.WriteDataset(format.DatasetValues, container.Dataset{Values: values, Dims: []int{len(values)}})
	case []string:
		return dg.WriteDataset(format.DatasetValues, container.Dataset{Values: values, Dims: []int{len(values)}})
	case []bool:
		packed := format.BoolSliceToInt8(values)
		asBytes := make([]byte, len(packed))
		for i, b := range packed {
			asBytes[i] = byte(b)
		}
		return dg.WriteDataset(format.DatasetValues, container.Dataset{Values: asBytes, Dims: []int{len(values)}})
	default:
		return nil
	}
}

// saveChildLinks mirrors the children's uids into the Groups/Objects/
// Data subgroups under parentGroup, the "links into the trees" spec
// §6.1 describes.
func saveChildLinks(parentGroup container.Group, children []entity.Node) error {
	for _, child := range children {
		var subName string
		switch child.(type) {
		case *entity.Group:
			subName = format.GroupsGroupName
		case *entity.ObjectBase:
			subName = format.ObjectsGroupName
		case *entity.Data:
			subName = format.DataGroupName
		default:
			continue
		}
		tree, err := parentGroup.SubGroup(subName, true)
		if err != nil {
			return err
		}
		if _, err := tree.SubGroup(child.EntityUID().String(), true); err != nil {
			return err
		}
	}
	return nil
}
