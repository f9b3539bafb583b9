package entity

import (
	"github.com/geoh5kit/geoh5kit/internal/entitytype"
	"github.com/geoh5kit/geoh5kit/pkg/types"
)

// DataSpec is the per-channel input to AddData, mirroring the mapping
// spec §4.2's add_data accepts: values plus optional association/value
// map overrides. Association and ValueMap are left zero/nil to request
// inference.
type DataSpec struct {
	Values      any
	Association types.Association
	ValueMap    *types.ReferenceValueMap
}

// AddData infers association and primitive type from spec, obtains or
// creates the matching DataType in reg, constructs the Data entity, and
// appends it as a child of o (spec §4.2 "add_data" steps 1-3).
func (o *ObjectBase) AddData(reg *entitytype.Registry, name string, spec DataSpec) (*Data, error) {
	assoc := spec.Association
	if assoc == types.AssociationUnknown {
		assoc = o.inferAssociation(spec.Values)
	} else if !o.ValidateAssociation(assoc, ValueLen(spec.Values)) {
		return nil, types.Validation(name, "add_data: value count does not match association")
	}

	d, err := newDataForValues(reg, name, assoc, spec.Values, spec.ValueMap)
	if err != nil {
		return nil, err
	}

	o.AddChildren([]Node{d})
	return d, nil
}

// inferAssociation applies spec §4.2 step 1: cell-length match wins
// over vertex-length match, anything else is Object-associated.
func (o *ObjectBase) inferAssociation(values any) types.Association {
	n := ValueLen(values)
	switch {
	case n == o.NCells():
		return types.AssociationCell
	case n == o.NVertices():
		return types.AssociationVertex
	default:
		return types.AssociationObject
	}
}

// ValueLen reports the element count of values' concrete Data-value
// slice type, 0 for anything else.
func ValueLen(values any) int {
	switch v := values.(type) {
	case []float64:
		return len(v)
	case []int32:
		return len(v)
	case []uint32:
		return len(v)
	case []string:
		return len(v)
	case []bool:
		return len(v)
	case [][]string:
		return len(v)
	default:
		return 0
	}
}

// newDataForValues infers a primitive type from values' Go element
// type (spec §4.2 step 2: integral -> Integer, floating -> Float,
// strings -> Text, a supplied value map promotes to Referenced) and
// constructs the matching Data entity.
func newDataForValues(reg *entitytype.Registry, name string, assoc types.Association, values any, valueMap *types.ReferenceValueMap) (*Data, error) {
	if valueMap != nil {
		uvals, ok := values.([]uint32)
		if !ok {
			return nil, types.Validation(name, "value_map requires uint32 values")
		}
		dt := entitytype.ReferencedDataType(reg, types.NilUID, name, valueMap)
		return NewReferencedData(name, assoc, dt, uvals)
	}

	switch v := values.(type) {
	case []int32:
		dt := entitytype.FindOrCreateDataType(reg, types.NilUID, name, types.PrimitiveInteger)
		asFloat := make([]float64, len(v))
		for i, x := range v {
			asFloat[i] = float64(x)
		}
		return NewIntegerData(name, assoc, dt, asFloat)
	case []float64:
		dt := entitytype.FindOrCreateDataType(reg, types.NilUID, name, types.PrimitiveFloat)
		return NewData(name, assoc, dt, v), nil
	case []string:
		dt := entitytype.FindOrCreateDataType(reg, types.NilUID, name, types.PrimitiveText)
		return NewData(name, assoc, dt, v), nil
	case []bool:
		dt := entitytype.BooleanDataType(reg, types.NilUID, name)
		return NewBooleanData(name, assoc, dt, v), nil
	default:
		return nil, types.Validation(name, "add_data: unsupported value type")
	}
}
