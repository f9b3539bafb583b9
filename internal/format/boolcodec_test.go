package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoolToInt8(t *testing.T) {
	assert.Equal(t, int8(1), BoolToInt8(true))
	assert.Equal(t, int8(0), BoolToInt8(false))
}

func TestInt8ToBool(t *testing.T) {
	assert.True(t, Int8ToBool(1))
	assert.False(t, Int8ToBool(0))
	assert.True(t, Int8ToBool(-1), "any nonzero byte decodes true")
}

func TestBoolSliceToInt8(t *testing.T) {
	assert.Equal(t, []int8{1, 0, 1}, BoolSliceToInt8([]bool{true, false, true}))
}

func TestInt8SliceToBool(t *testing.T) {
	assert.Equal(t, []bool{true, false, true}, Int8SliceToBool([]int8{1, 0, 1}))
}

func TestBoolCodec_RoundTrips(t *testing.T) {
	values := []bool{true, true, false, true, false, false}
	assert.Equal(t, values, Int8SliceToBool(BoolSliceToInt8(values)))
}
