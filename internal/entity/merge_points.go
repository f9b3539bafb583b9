package entity

import (
	"github.com/geoh5kit/geoh5kit/internal/entitytype"
	"github.com/geoh5kit/geoh5kit/pkg/types"
)

// MergePoints concatenates the vertices of several Points objects into
// one new ObjectBase, grounded on geoh5py's PointsMerger
// (original_source geoh5py/shared/merging/points.py): every input must
// be a Points object (no subclasses), and the merged object's vertices
// are the row-stacked concatenation of each input's vertices in order.
func MergePoints(name string, inputs []*ObjectBase, objectType entitytype.ObjectType) (*ObjectBase, error) {
	for _, in := range inputs {
		if in.Kind != ObjectKindPoints {
			return nil, types.Validation(in.UID.String(), "MergePoints requires Points objects, got a different object kind")
		}
	}

	merged := NewObjectBase(name, ObjectKindPoints, objectType)
	for _, in := range inputs {
		merged.Vertices = append(merged.Vertices, in.Vertices...)
	}
	return merged, nil
}
