package codec

import "github.com/opcua-json/opcuajson/builtin"

// DataValue writes dv per the Part 6 JSON mapping: an object with each of Value,
// Status, SourceTimestamp, SourcePicoseconds, ServerTimestamp, and
// ServerPicoseconds omitted independently when at its default. A
// fully-default DataValue is a special case: unkeyed, it writes as the
// empty string (there being no meaningful content at all), and keyed,
// the whole field is omitted by the caller -- DataValueKeyed implements
// that omission directly.
func (e *Encoder) DataValue(dv builtin.DataValue) error {
	if dv.IsAllDefault() {
		return e.String("")
	}

	if err := e.checkDepth("DataValue"); err != nil {
		return err
	}
	if err := e.wrapTokenErr("DataValue", e.tokens.BeginObject()); err != nil {
		return err
	}

	if dv.Value != nil && dv.Value.Shape != builtin.ShapeNull {
		if err := e.VariantKeyed("Value", *dv.Value); err != nil {
			return err
		}
	}
	if !dv.Status.IsGood() {
		if err := e.statusCodeKeyedAlways("Status", dv.Status); err != nil {
			return err
		}
	}
	if dv.SourceTimestamp != nil {
		if err := e.DateTimeKeyed("SourceTimestamp", *dv.SourceTimestamp); err != nil {
			return err
		}
	}
	if dv.SourcePicoseconds != nil {
		if err := e.UInt16Keyed("SourcePicoseconds", *dv.SourcePicoseconds); err != nil {
			return err
		}
	}
	if dv.ServerTimestamp != nil {
		if err := e.DateTimeKeyed("ServerTimestamp", *dv.ServerTimestamp); err != nil {
			return err
		}
	}
	if dv.ServerPicoseconds != nil {
		if err := e.UInt16Keyed("ServerPicoseconds", *dv.ServerPicoseconds); err != nil {
			return err
		}
	}

	return e.wrapTokenErr("DataValue", e.tokens.EndObject())
}

// DataValueKeyed writes name:{...}, or omits the field entirely when dv
// is fully default.
func (e *Encoder) DataValueKeyed(name string, dv builtin.DataValue) error {
	if dv.IsAllDefault() {
		return nil
	}
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.DataValue(dv)
}
