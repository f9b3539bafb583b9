package format

import (
	"fmt"
	"time"
)

// dateTimeLayout is the on-disk string form of the DATETIME primitive
// type (spec §4): an ISO-8601 timestamp, not the Windows FILETIME the
// teacher format used. geoh5 has no binary datetime representation —
// every DateTime value is stored as a UTF-8 string attribute/dataset
// entry.
const dateTimeLayout = "2006-01-02T15:04:05Z07:00"

// EncodeDateTime renders t in the on-disk DATETIME string form.
func EncodeDateTime(t time.Time) string {
	return t.UTC().Format(dateTimeLayout)
}

// DecodeDateTime parses the on-disk DATETIME string form.
func DecodeDateTime(s string) (time.Time, error) {
	t, err := time.Parse(dateTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("format: malformed datetime %q: %w", s, err)
	}
	return t.UTC(), nil
}

// EncodeDateTimeDelta renders d in the on-disk DATETIME_DELTA string
// form, an ISO-8601 duration limited to the day/hour/minute/second
// fields geoh5 actually uses.
func EncodeDateTimeDelta(d time.Duration) string {
	total := int64(d / time.Second)
	neg := total < 0
	if neg {
		total = -total
	}
	days := total / 86400
	total -= days * 86400
	hours := total / 3600
	total -= hours * 3600
	minutes := total / 60
	seconds := total - minutes*60

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%sP%dDT%dH%dM%dS", sign, days, hours, minutes, seconds)
}

// DecodeDateTimeDelta parses the on-disk DATETIME_DELTA string form
// produced by EncodeDateTimeDelta.
func DecodeDateTimeDelta(s string) (time.Duration, error) {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var days, hours, minutes, seconds int64
	n, err := fmt.Sscanf(s, "P%dDT%dH%dM%dS", &days, &hours, &minutes, &seconds)
	if err != nil || n != 4 {
		return 0, fmt.Errorf("format: malformed datetime delta %q", s)
	}
	total := ((days*24+hours)*60+minutes)*60 + seconds
	d := time.Duration(total) * time.Second
	if neg {
		d = -d
	}
	return d, nil
}
