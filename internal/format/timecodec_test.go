package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDateTime(t *testing.T) {
	tm := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-15T10:30:00Z", EncodeDateTime(tm))
}

func TestDecodeDateTime(t *testing.T) {
	tm, err := DecodeDateTime("2024-03-15T10:30:00Z")
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC).Equal(tm))
}

func TestDecodeDateTime_RejectsMalformed(t *testing.T) {
	_, err := DecodeDateTime("not-a-timestamp")
	assert.Error(t, err)
}

func TestDateTime_RoundTrips(t *testing.T) {
	tm := time.Date(2023, 11, 2, 5, 17, 42, 0, time.FixedZone("", -7*3600))
	decoded, err := DecodeDateTime(EncodeDateTime(tm))
	require.NoError(t, err)
	assert.True(t, tm.Equal(decoded))
}

func TestEncodeDateTimeDelta(t *testing.T) {
	d := 26*time.Hour + 3*time.Minute + 4*time.Second
	assert.Equal(t, "P1DT2H3M4S", EncodeDateTimeDelta(d))
}

func TestEncodeDateTimeDelta_Negative(t *testing.T) {
	d := -(2*time.Hour + 30*time.Minute)
	assert.Equal(t, "-P0DT2H30M0S", EncodeDateTimeDelta(d))
}

func TestDecodeDateTimeDelta(t *testing.T) {
	d, err := DecodeDateTimeDelta("P1DT2H3M4S")
	require.NoError(t, err)
	assert.Equal(t, 26*time.Hour+3*time.Minute+4*time.Second, d)
}

func TestDecodeDateTimeDelta_Negative(t *testing.T) {
	d, err := DecodeDateTimeDelta("-P0DT2H30M0S")
	require.NoError(t, err)
	assert.Equal(t, -(2*time.Hour + 30*time.Minute), d)
}

func TestDecodeDateTimeDelta_RejectsMalformed(t *testing.T) {
	_, err := DecodeDateTimeDelta("garbage")
	assert.Error(t, err)
}

func TestDateTimeDelta_RoundTrips(t *testing.T) {
	d := 3*24*time.Hour + 7*time.Hour + 45*time.Minute + 12*time.Second
	decoded, err := DecodeDateTimeDelta(EncodeDateTimeDelta(d))
	require.NoError(t, err)
	assert.Equal(t, d, decoded)
}
