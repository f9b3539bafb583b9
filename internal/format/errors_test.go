package format

import (
	"errors"
	"testing"

	"github.com/geoh5kit/geoh5kit/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestMissingAttribute_ReportsCorruptKind(t *testing.T) {
	err := MissingAttribute("/Objects/{uid}", "Name")

	assert.Equal(t, types.ErrKindCorrupt, err.Kind)
	assert.Contains(t, err.Error(), "Name")
	assert.Contains(t, err.Error(), "/Objects/{uid}")
}

func TestMissingDataset_ReportsCorruptKind(t *testing.T) {
	err := MissingDataset("/Objects/{uid}", "Vertices")

	assert.Equal(t, types.ErrKindCorrupt, err.Kind)
	assert.Contains(t, err.Error(), "Vertices")
}

func TestWrapCorrupt_PreservesUnderlyingError(t *testing.T) {
	cause := errors.New("bad datetime")

	err := WrapCorrupt("/Data/{uid}", cause)

	assert.ErrorIs(t, err, cause)
}
