package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUID_IsNotNilAndUnique(t *testing.T) {
	a := NewUID()
	b := NewUID()

	assert.False(t, a.IsNil())
	assert.NotEqual(t, a, b)
}

func TestParseUID_RoundTripsThroughString(t *testing.T) {
	original := NewUID()

	parsed, err := ParseUID(original.String())

	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestParseUID_RejectsMalformedInput(t *testing.T) {
	_, err := ParseUID("not-a-uid")

	assert.Error(t, err)
}

func TestUID_StringIsBraceWrapped(t *testing.T) {
	u := NewUID()

	s := u.String()

	assert.True(t, len(s) >= 2 && s[0] == '{' && s[len(s)-1] == '}')
}

func TestNilUID_IsNil(t *testing.T) {
	assert.True(t, NilUID.IsNil())

	var zero UID
	assert.True(t, zero.IsNil())
}
