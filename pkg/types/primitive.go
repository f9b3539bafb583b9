package types

// PrimitiveType enumerates the Data primitive types named in spec §4
// (the Data subtype taxonomy). It drives both which Go concrete type a
// Data entity's values are stored as and how the value dataset is coded
// on disk.
type PrimitiveType int

const (
	PrimitiveUnknown PrimitiveType = iota
	PrimitiveInteger
	PrimitiveFloat
	PrimitiveText
	PrimitiveBoolean
	PrimitiveReferenced
	PrimitiveVector
	PrimitiveDateTime
	PrimitiveDateTimeDelta
	PrimitiveFilename
	PrimitiveBlob
	PrimitiveGeometric
	PrimitiveMultiText
	PrimitiveComments
)

func (p PrimitiveType) String() string {
	switch p {
	case PrimitiveInteger:
		return "INTEGER"
	case PrimitiveFloat:
		return "FLOAT"
	case PrimitiveText:
		return "TEXT"
	case PrimitiveBoolean:
		return "BOOLEAN"
	case PrimitiveReferenced:
		return "REFERENCED"
	case PrimitiveVector:
		return "VECTOR"
	case PrimitiveDateTime:
		return "DATETIME"
	case PrimitiveDateTimeDelta:
		return "DATETIME_DELTA"
	case PrimitiveFilename:
		return "FILENAME"
	case PrimitiveBlob:
		return "BLOB"
	case PrimitiveGeometric:
		return "GEOMETRIC"
	case PrimitiveMultiText:
		return "MULTI_TEXT"
	case PrimitiveComments:
		return "COMMENTS"
	default:
		return "UNKNOWN"
	}
}

// NoDataValue returns the sentinel value geoh5 uses in place of a real
// value for this primitive type (spec §4, "no-data value" per type).
// Only primitives with a defined sentinel return ok=true.
func (p PrimitiveType) NoDataValue() (value float64, ok bool) {
	switch p {
	case PrimitiveInteger, PrimitiveReferenced:
		return -2147483648, true // int32 minimum
	case PrimitiveFloat:
		return -1.0e32, true
	default:
		return 0, false
	}
}
