package entitytype

import "github.com/geoh5kit/geoh5kit/pkg/types"

// GroupType is a *Type view constructor for the Group kind. The
// custom/root/container distinction the spec's Group taxonomy draws
// (CustomGroup, DrillholeGroup, the implicit root group type) lives
// entirely in Name/Description — geoh5 itself has no separate
// group-type kind enum.
type GroupType struct{ *Type }

// NewGroupType builds an unregistered GroupType; call
// Registry.Register (or FindOrCreateGroupType) to intern it.
func NewGroupType(name string) GroupType {
	return GroupType{&Type{Kind: KindGroup, Name: name}}
}

// FindOrCreateGroupType interns a GroupType by uid, matching
// EntityType.find_or_create for the Group case.
func FindOrCreateGroupType(reg *Registry, uid types.UID, name string) GroupType {
	t := reg.FindOrCreate(uid, func() *Type {
		gt := NewGroupType(name)
		gt.UID = uid
		return gt.Type
	})
	return GroupType{t}
}
