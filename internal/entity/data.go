package entity

import (
	"time"

	"github.com/geoh5kit/geoh5kit/internal/entitytype"
	"github.com/geoh5kit/geoh5kit/pkg/types"
)

// Data is the value-carrying entity kind (spec §2/§4). Values is typed
// per entitytype.Type.PrimitiveType; the concrete Go element type
// stored there is documented per-primitive below. A thin set of
// constructors (NewIntegerData, NewReferencedData, ...) validate the
// primitive-specific invariants geoh5py enforces in its subclasses
// (e.g. IntegerData.check_type) before wrapping Values.
type Data struct {
	Base
	TypeRef

	Association types.Association

	// Values holds the payload; concrete element type depends on
	// EntityType.PrimitiveType:
	//   INTEGER, REFERENCED      -> []int32
	//   FLOAT, VECTOR, GEOMETRIC -> []float64 (VECTOR: 3 per element, row-major)
	//   TEXT, FILENAME, COMMENTS -> []string
	//   MULTI_TEXT               -> [][]string
	//   BOOLEAN                  -> []bool
	//   DATETIME                 -> []time.Time
	//   DATETIME_DELTA           -> []time.Duration
	//   BLOB                     -> [][]byte
	Values any
}

// NewData constructs a Data entity of the given association, wrapping
// values without primitive-specific validation. Most callers should
// use the typed constructors below instead.
func NewData(name string, association types.Association, dataType entitytype.DataType, values any) *Data {
	return &Data{
		Base:        NewBase(name),
		TypeRef:     TypeRef{EntityType: dataType.Type},
		Association: association,
		Values:      values,
	}
}

// NewIntegerData validates that every value in values is an exact
// integer and constructs an INTEGER Data entity, grounded on geoh5py's
// IntegerData.check_type (casts to int32, errors if the cast is lossy).
func NewIntegerData(name string, association types.Association, dataType entitytype.DataType, values []float64) (*Data, error) {
	ints := make([]int32, len(values))
	for i, v := range values {
		iv := int32(v)
		if float64(iv) != v {
			return nil, types.Validation(name, "INTEGER data values must be whole numbers")
		}
		ints[i] = iv
	}
	return NewData(name, association, dataType, ints), nil
}

// NewReferencedData constructs a REFERENCED Data entity. Every value
// must resolve in dataType.ValueMap; key 0 ("Unknown") is always valid
// even if absent from values, per geoh5py's reference_value_map
// convention.
func NewReferencedData(name string, association types.Association, dataType entitytype.DataType, values []uint32) (*Data, error) {
	if dataType.ValueMap == nil {
		return nil, types.Validation(name, "REFERENCED data requires a value map")
	}
	for _, v := range values {
		if _, ok := dataType.ValueMap.Label(v); !ok {
			return nil, types.Validation(name, "value not present in value map")
		}
	}
	ints := make([]int32, len(values))
	for i, v := range values {
		ints[i] = int32(v)
	}
	return NewData(name, association, dataType, ints), nil
}

// NewBooleanData constructs a BOOLEAN Data entity, stored on disk as a
// ReferencedData with the fixed True/False value map (spec §11.1).
func NewBooleanData(name string, association types.Association, dataType entitytype.DataType, values []bool) *Data {
	return NewData(name, association, dataType, values)
}

// NewCommentsData constructs a COMMENTS Data entity. geoh5py tags this
// subtype explicitly at construction (a "Comments" kwarg) rather than
// sniffing a reserved name, resolving spec §9's open question (§11.1).
func NewCommentsData(name string, comments []string) *Data {
	dataType := entitytype.NewDataType(name, types.PrimitiveComments)
	return NewData(name, types.AssociationObject, dataType, comments)
}

// ReferenceToData resolves key against dataType.ValueMap, the
// "reference_to_data" operation spec §7 names as an explicit
// error-surfacing example (recovered from geoh5py's
// reference_value_map.py: §11.1).
func ReferenceToData(dataType entitytype.DataType, key uint32) (string, error) {
	if dataType.ValueMap == nil {
		return "", types.Validation(dataType.Name, "entity type has no value map")
	}
	label, ok := dataType.ValueMap.Label(key)
	if !ok {
		return "", types.NotFound(dataType.Name)
	}
	return label, nil
}

// DateTimeValues and DateTimeDeltaValues are thin accessors asserting
// Values' concrete type, returning ok=false on a type mismatch (e.g.
// calling this on a non-DATETIME Data entity).
func DateTimeValues(d *Data) (values []time.Time, ok bool) {
	values, ok = d.Values.([]time.Time)
	return
}

func DateTimeDeltaValues(d *Data) (values []time.Duration, ok bool) {
	values, ok = d.Values.([]time.Duration)
	return
}
