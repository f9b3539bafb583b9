package types

import "sort"

// ReferenceValueMap is the key->label table backing a ReferencedData
// entity (spec §4), grounded on geoh5py's
// data/reference_value_map.py. Key 0 is reserved, by convention, for
// "Unknown" — readers and writers must preserve it even when the
// caller never referenced it explicitly.
type ReferenceValueMap struct {
	labels map[uint32]string
}

// UnknownKey is the reserved key every reference value map carries.
const UnknownKey uint32 = 0

// NewReferenceValueMap builds a map seeded with the reserved Unknown
// entry, mirroring geoh5py's constructor behaviour.
func NewReferenceValueMap() *ReferenceValueMap {
	return &ReferenceValueMap{labels: map[uint32]string{UnknownKey: "Unknown"}}
}

// BooleanValueMap is the fixed two-entry map geoh5py uses to represent
// BOOLEAN data as a ReferencedData in contexts requiring a value map
// (geoh5py's BOOLEAN_VALUE_MAP).
func BooleanValueMap() *ReferenceValueMap {
	return &ReferenceValueMap{labels: map[uint32]string{0: "False", 1: "True"}}
}

// Set assigns label to key, overwriting any existing label. Setting key
// 0 overrides the reserved "Unknown" label, matching geoh5py (which
// allows but warns on this).
func (m *ReferenceValueMap) Set(key uint32, label string) {
	m.labels[key] = label
}

// Label resolves key to its label. ok is false if key is absent.
func (m *ReferenceValueMap) Label(key uint32) (label string, ok bool) {
	label, ok = m.labels[key]
	return
}

// KeyFor returns the first key mapped to label. Used by
// reference_to_data's inverse lookup. ok is false if no key maps to
// label.
func (m *ReferenceValueMap) KeyFor(label string) (key uint32, ok bool) {
	for k, v := range m.labels {
		if v == label {
			return k, true
		}
	}
	return 0, false
}

// Keys returns the map's keys in ascending order, the order entries are
// written to the value-map dataset (spec §6.1).
func (m *ReferenceValueMap) Keys() []uint32 {
	keys := make([]uint32, 0, len(m.labels))
	for k := range m.labels {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Len reports the number of entries, including the reserved Unknown key.
func (m *ReferenceValueMap) Len() int {
	return len(m.labels)
}
