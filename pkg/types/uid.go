package types

import (
	"fmt"

	"github.com/google/uuid"
)

// UID is the 128-bit identifier backing every entity, entity type, and
// property group (spec §6.1, "uid" attribute). It wraps uuid.UUID so the
// zero value is the nil UID rather than a usable one.
type UID uuid.UUID

// NilUID is the all-zero UID. It never identifies a real entity.
var NilUID UID

// NewUID generates a random (version 4) UID.
func NewUID() UID {
	return UID(uuid.New())
}

// ParseUID parses the canonical "{xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}"
// or bare "xxxxxxxx-..." form used on disk (spec §6.1).
func ParseUID(s string) (UID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return NilUID, Validation("uid", "malformed uid: "+err.Error())
	}
	return UID(u), nil
}

// String renders the brace-wrapped canonical form used for on-disk
// attribute values and dataset/group names.
func (u UID) String() string {
	return fmt.Sprintf("{%s}", uuid.UUID(u).String())
}

// IsNil reports whether u is the zero UID.
func (u UID) IsNil() bool {
	return u == NilUID
}
