package entitytype

import "github.com/geoh5kit/geoh5kit/pkg/types"

// ObjectType is a *Type view constructor for the Object kind (Points,
// Curve, Surface, GridObject, Drillhole, ...). geoh5 carries a single
// shared type record per distinct object "flavor"; the flavor itself is
// determined by the Object's own Go concrete type, not by ObjectType.
type ObjectType struct{ *Type }

// NewObjectType builds an unregistered ObjectType.
func NewObjectType(name string) ObjectType {
	return ObjectType{&Type{Kind: KindObject, Name: name}}
}

// FindOrCreateObjectType interns an ObjectType by uid.
func FindOrCreateObjectType(reg *Registry, uid types.UID, name string) ObjectType {
	t := reg.FindOrCreate(uid, func() *Type {
		ot := NewObjectType(name)
		ot.UID = uid
		return ot.Type
	})
	return ObjectType{t}
}
