package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFileName_MapsKnownFields(t *testing.T) {
	assert.Equal(t, AttrUID, ToFileName("UID"))
	assert.Equal(t, AttrName, ToFileName("Name"))
	assert.Equal(t, AttrAssociation, ToFileName("Association"))
}

func TestToFileName_PassesThroughUnknownFields(t *testing.T) {
	assert.Equal(t, "SomeCustomField", ToFileName("SomeCustomField"))
}

func TestToFieldName_MapsKnownAttributes(t *testing.T) {
	assert.Equal(t, "UID", ToFieldName(AttrUID))
	assert.Equal(t, "Name", ToFieldName(AttrName))
}

func TestToFieldName_PassesThroughUnrecognizedAttributes(t *testing.T) {
	assert.Equal(t, "some_custom_attribute", ToFieldName("some_custom_attribute"))
}

func TestAttrMap_RoundTrips(t *testing.T) {
	for field, attr := range fieldToFile {
		assert.Equal(t, attr, ToFileName(field))
		assert.Equal(t, field, ToFieldName(attr))
	}
}
