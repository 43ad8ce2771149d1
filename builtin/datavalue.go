package builtin

// DataValue bundles a Variant with quality and timestamp metadata. Every
// field is independently omittable from JSON: Value when it is the null
// Variant, Status when Good, the timestamps when nil, and the picosecond
// fields when their pointer is nil (note that a *present* zero picoseconds
// value is still emitted).
type DataValue struct {
	Value *Variant

	Status StatusCode

	SourceTimestamp   *DateTime
	SourcePicoseconds *uint16

	ServerTimestamp   *DateTime
	ServerPicoseconds *uint16
}

// IsAllDefault reports whether every field of v is at its default (no
// value, Good status, no timestamps, no picoseconds) -- the condition under
// which an unkeyed DataValue writes as the empty JSON string and a keyed
// one omits its key entirely.
func (v DataValue) IsAllDefault() bool {
	return (v.Value == nil || v.Value.Shape == ShapeNull) &&
		v.Status.IsGood() &&
		v.SourceTimestamp == nil &&
		v.SourcePicoseconds == nil &&
		v.ServerTimestamp == nil &&
		v.ServerPicoseconds == nil
}
