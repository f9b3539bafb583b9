package entity

import (
	"time"

	"github.com/geoh5kit/geoh5kit/internal/entitytype"
	"github.com/geoh5kit/geoh5kit/pkg/types"
)

// Copy deep-copies o under newParent (nil leaves the copy unparented),
// matching spec §4.2 "copy(parent, copy_children, clear_cache, mask)":
// children whose association is Vertex or Cell are copied with mask
// applied to their values, and copied property groups are rewired so
// their member uids point at the copies rather than the originals.
func (o *ObjectBase) Copy(newParent *Group, copyChildren bool, clearCache bool, mask []bool) (*ObjectBase, error) {
	ot := entitytype.ObjectType{Type: o.EntityType}
	dst := NewObjectBase(o.Name, o.Kind, ot)

	var keptVertices []int
	if mask != nil {
		if len(mask) != o.NVertices() {
			return nil, types.Validation(o.UID.String(), "copy: mask length must equal vertex count")
		}
		dst.Vertices, keptVertices = maskVertices(o.Vertices, mask)
	} else {
		dst.Vertices = append([]Vertex(nil), o.Vertices...)
		keptVertices = allIndices(len(o.Vertices))
	}
	var keptCells []int
	dst.Cells, keptCells = remapCells(o.Cells, keptVertices)
	dst.Grid = o.Grid
	dst.Drillhole = o.Drillhole

	if newParent != nil {
		newParent.AddChildren([]Node{dst})
	}

	if copyChildren {
		memberRemap := make(map[types.UID]types.UID, len(o.Children))
		for _, c := range o.Children {
			d, ok := c.(*Data)
			if !ok {
				continue
			}
			cd := copyDataMasked(d, keptVertices, keptCells)
			dst.AddChildren([]Node{cd})
			memberRemap[d.UID] = cd.UID
		}
		for _, pg := range o.PropertyGroups {
			npg := NewPropertyGroup(pg.Name, pg.Kind)
			npg.Association = pg.Association
			for _, uid := range pg.Properties {
				if newUID, ok := memberRemap[uid]; ok {
					npg.Properties = append(npg.Properties, newUID)
				}
			}
			dst.PropertyGroups = append(dst.PropertyGroups, npg)
			npg.addParentNode(dst)
		}
	}

	if clearCache {
		dst.ClearDirty()
	}
	return dst, nil
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func maskVertices(vertices []Vertex, mask []bool) (kept []Vertex, keptIdx []int) {
	for i, keep := range mask {
		if keep {
			kept = append(kept, vertices[i])
			keptIdx = append(keptIdx, i)
		}
	}
	return
}

// remapCells drops any cell referencing a vertex not present in
// keptVertices and remaps the survivors' indices to the compacted
// vertex array, returning the indices (into the original Cells slice)
// of the cells that survived.
func remapCells(cells []Cell, keptVertices []int) (newCells []Cell, keptCellIdx []int) {
	oldToNew := make(map[int32]int32, len(keptVertices))
	for newIdx, oldIdx := range keptVertices {
		oldToNew[int32(oldIdx)] = int32(newIdx)
	}
	for i, c := range cells {
		remapped := make([]int32, len(c.Indices))
		ok := true
		for j, idx := range c.Indices {
			nv, present := oldToNew[idx]
			if !present {
				ok = false
				break
			}
			remapped[j] = nv
		}
		if ok {
			newCells = append(newCells, Cell{Indices: remapped})
			keptCellIdx = append(keptCellIdx, i)
		}
	}
	return
}

// copyDataMasked copies d, reslicing Values to the kept indices for its
// association (Vertex/Cell) and copying the full array unchanged for
// any other association (Object, Group, Depth).
func copyDataMasked(d *Data, keptVertices, keptCells []int) *Data {
	cd := &Data{
		Base:        NewBase(d.Name),
		TypeRef:     TypeRef{EntityType: d.EntityType},
		Association: d.Association,
	}
	switch d.Association {
	case types.AssociationVertex:
		cd.Values = resliceAny(d.Values, keptVertices)
	case types.AssociationCell:
		cd.Values = resliceAny(d.Values, keptCells)
	default:
		cd.Values = d.Values
	}
	return cd
}

func resliceAny(values any, indices []int) any {
	switch v := values.(type) {
	case []float64:
		return resliceSlice(v, indices)
	case []int32:
		return resliceSlice(v, indices)
	case []string:
		return resliceSlice(v, indices)
	case []bool:
		return resliceSlice(v, indices)
	case []time.Time:
		return resliceSlice(v, indices)
	case []time.Duration:
		return resliceSlice(v, indices)
	case [][]string:
		return resliceSlice(v, indices)
	case [][]byte:
		return resliceSlice(v, indices)
	default:
		return values
	}
}

func resliceSlice[T any](values []T, indices []int) []T {
	out := make([]T, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(values) {
			out = append(out, values[i])
		}
	}
	return out
}
