package entitytype

import "github.com/geoh5kit/geoh5kit/pkg/types"

// DataType is a *Type view constructor for the Data kind. Unlike
// GroupType/ObjectType, DataType identity is keyed by name + primitive
// type rather than a caller-chosen uid (spec §3: "find_or_create" for
// DataType looks up by name first) — grounded on geoh5py's
// DataType.find_or_create, which hashes on (name, primitive_type) when
// no uid is supplied.
type DataType struct{ *Type }

// NewDataType builds an unregistered DataType of the given primitive.
func NewDataType(name string, primitive types.PrimitiveType) DataType {
	return DataType{&Type{Kind: KindData, Name: name, PrimitiveType: primitive}}
}

// FindOrCreateDataType interns a DataType by uid when one is supplied,
// otherwise by (name, primitive) — matching geoh5py's dual lookup path.
func FindOrCreateDataType(reg *Registry, uid types.UID, name string, primitive types.PrimitiveType) DataType {
	if !uid.IsNil() {
		t := reg.FindOrCreate(uid, func() *Type {
			dt := NewDataType(name, primitive)
			dt.UID = uid
			return dt.Type
		})
		return DataType{t}
	}
	for _, existing := range reg.All() {
		if existing.Kind == KindData && existing.Name == name && existing.PrimitiveType == primitive {
			return DataType{existing}
		}
	}
	dt := NewDataType(name, primitive)
	return DataType{reg.Register(dt.Type)}
}

// ReferencedDataType builds a DataType of PrimitiveReferenced carrying
// valueMap, the on-disk value map for a ReferencedData entity (spec §4).
func ReferencedDataType(reg *Registry, uid types.UID, name string, valueMap *types.ReferenceValueMap) DataType {
	dt := FindOrCreateDataType(reg, uid, name, types.PrimitiveReferenced)
	if dt.ValueMap == nil {
		dt.ValueMap = valueMap
	}
	return dt
}

// BooleanDataType builds the fixed True/False ReferencedData type
// BOOLEAN data uses (spec §11.1 / geoh5py BOOLEAN_VALUE_MAP).
func BooleanDataType(reg *Registry, uid types.UID, name string) DataType {
	return ReferencedDataType(reg, uid, name, types.BooleanValueMap())
}
