package format

import (
	"fmt"

	"github.com/geoh5kit/geoh5kit/pkg/types"
)

// MissingAttribute wraps a missing required on-disk attribute as an
// ErrKindCorrupt *types.Error, attributing it to the group path it was
// expected under.
func MissingAttribute(groupPath, attr string) *types.Error {
	return types.Corrupt(groupPath, fmt.Sprintf("missing required attribute %q", attr), nil)
}

// MissingDataset wraps a missing required on-disk dataset the same way.
func MissingDataset(groupPath, dataset string) *types.Error {
	return types.Corrupt(groupPath, fmt.Sprintf("missing required dataset %q", dataset), nil)
}

// WrapCorrupt wraps an arbitrary lower-level decode error (a malformed
// datetime string, an unparsable uid, ...) as ErrKindCorrupt, attributed
// to groupPath.
func WrapCorrupt(groupPath string, err error) *types.Error {
	return types.Corrupt(groupPath, "corrupt on-disk record", err)
}
