package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssociation_StringRoundTripsThroughParseAssociation(t *testing.T) {
	for _, a := range []Association{AssociationVertex, AssociationCell, AssociationObject, AssociationGroup, AssociationDepth} {
		assert.Equal(t, a, ParseAssociation(a.String()))
	}
}

func TestAssociation_UnknownStringDefaultsToUnknown(t *testing.T) {
	assert.Equal(t, AssociationUnknown, ParseAssociation("GARBAGE"))
	assert.Equal(t, "UNKNOWN", AssociationUnknown.String())
}
