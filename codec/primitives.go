package codec

import (
	"math"
	"strconv"

	"github.com/opcua-json/opcuajson/builtin"
)

// This file implements the unkeyed/keyed emit pairs for the scalar
// built-in types, per the formatting table in the Part 6 JSON mapping: Boolean,
// SByte/Byte/Int16/UInt16/Int32/UInt32 as bare JSON numbers, Int64/UInt64
// as quoted decimal strings (JSON numbers are not guaranteed 64-bit
// precision in every consumer), Float/Double with the non-finite
// special-token rule, String, and the opaque binary types.

// Boolean writes b as a bare JSON boolean.
func (e *Encoder) Boolean(b bool) error {
	return e.wrapTokenErr("Boolean", e.tokens.ValueBool(b))
}

// BooleanKeyed writes name:b inside the currently open object. Per
// the Part 6 JSON mapping, a false Boolean field may be omitted by the
// caller when
// the whole value is optional; this method always writes it.
func (e *Encoder) BooleanKeyed(name string, b bool) error {
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.Boolean(b)
}

// SByte writes v as a bare JSON number.
func (e *Encoder) SByte(v int8) error { return e.smallInt(int64(v)) }

// SByteKeyed writes name:v.
func (e *Encoder) SByteKeyed(name string, v int8) error {
	return e.smallIntKeyed(name, int64(v))
}

// Byte writes v as a bare JSON number.
func (e *Encoder) Byte(v uint8) error { return e.smallUint(uint64(v)) }

// ByteKeyed writes name:v.
func (e *Encoder) ByteKeyed(name string, v uint8) error {
	return e.smallUintKeyed(name, uint64(v))
}

// Int16 writes v as a bare JSON number.
func (e *Encoder) Int16(v int16) error { return e.smallInt(int64(v)) }

// Int16Keyed writes name:v.
func (e *Encoder) Int16Keyed(name string, v int16) error {
	return e.smallIntKeyed(name, int64(v))
}

// UInt16 writes v as a bare JSON number.
func (e *Encoder) UInt16(v uint16) error { return e.smallUint(uint64(v)) }

// UInt16Keyed writes name:v.
func (e *Encoder) UInt16Keyed(name string, v uint16) error {
	return e.smallUintKeyed(name, uint64(v))
}

// Int32 writes v as a bare JSON number.
func (e *Encoder) Int32(v int32) error { return e.smallInt(int64(v)) }

// Int32Keyed writes name:v.
func (e *Encoder) Int32Keyed(name string, v int32) error {
	return e.smallIntKeyed(name, int64(v))
}

// UInt32 writes v as a bare JSON number.
func (e *Encoder) UInt32(v uint32) error { return e.smallUint(uint64(v)) }

// UInt32Keyed writes name:v.
func (e *Encoder) UInt32Keyed(name string, v uint32) error {
	return e.smallUintKeyed(name, uint64(v))
}

func (e *Encoder) smallInt(v int64) error {
	return e.wrapTokenErr("Int", e.tokens.ValueInt64(v))
}

func (e *Encoder) smallIntKeyed(name string, v int64) error {
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.smallInt(v)
}

func (e *Encoder) smallUint(v uint64) error {
	return e.wrapTokenErr("UInt", e.tokens.ValueUint64(v))
}

func (e *Encoder) smallUintKeyed(name string, v uint64) error {
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.smallUint(v)
}

// Int64 writes v as a quoted decimal string, per the Part 6 JSON
// mapping's rule that
// 64-bit integers are encoded as JSON strings in both modes.
func (e *Encoder) Int64(v int64) error {
	return e.wrapTokenErr("Int64", e.tokens.ValueString(strconv.FormatInt(v, 10)))
}

// Int64Keyed writes name:"v".
func (e *Encoder) Int64Keyed(name string, v int64) error {
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.Int64(v)
}

// UInt64 writes v as a quoted decimal string.
func (e *Encoder) UInt64(v uint64) error {
	return e.wrapTokenErr("UInt64", e.tokens.ValueString(strconv.FormatUint(v, 10)))
}

// UInt64Keyed writes name:"v".
func (e *Encoder) UInt64Keyed(name string, v uint64) error {
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.UInt64(v)
}

// floatToken renders f as the JSON value the mapping requires: the
// quoted tokens "Infinity", "-Infinity", "NaN" for non-finite values,
// and otherwise a JSON number that always carries a fractional component
// (so 1.0 is never mistaken for an Int64) even though JSON itself does
// not distinguish 1 from 1.0.
func floatToken(f float64, bits int) (raw string, quoted bool) {
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "Infinity", true
	case math.IsInf(f, -1):
		return "-Infinity", true
	}
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !hasFractionOrExponent(s) {
		s += ".0"
	}
	return s, false
}

func hasFractionOrExponent(s string) bool {
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return true
		}
	}
	return false
}

func (e *Encoder) writeFloatToken(where string, f float64, bits int) error {
	raw, quoted := floatToken(f, bits)
	if quoted {
		return e.wrapTokenErr(where, e.tokens.ValueString(raw))
	}
	return e.wrapTokenErr(where, e.tokens.ValueRaw(raw))
}

// Float writes a 32-bit float per the Double/Float formatting rule,
// using the shortest decimal that round-trips at 32-bit precision.
func (e *Encoder) Float(f float32) error {
	return e.writeFloatToken("Float", float64(f), 32)
}

// FloatKeyed writes name:f.
func (e *Encoder) FloatKeyed(name string, f float32) error {
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.Float(f)
}

// Double writes a 64-bit float.
func (e *Encoder) Double(f float64) error {
	return e.writeFloatToken("Double", f, 64)
}

// DoubleKeyed writes name:f.
func (e *Encoder) DoubleKeyed(name string, f float64) error {
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.Double(f)
}

// String writes s as a quoted JSON string.
func (e *Encoder) String(s string) error {
	if err := e.checkStringLen("String", len(s)); err != nil {
		return err
	}
	return e.wrapTokenErr("String", e.tokens.ValueString(s))
}

// StringKeyed writes name:"s". Per the Part 6 JSON mapping, an empty
// String field on
// an optional struct may be omitted by the caller; this method always
// writes it.
func (e *Encoder) StringKeyed(name string, s string) error {
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.String(s)
}

// DateTime writes dt using the ISO 8601 profile required by the
// mapping, clamping to the OPC UA min/max range first.
func (e *Encoder) DateTime(dt builtin.DateTime) error {
	return e.wrapTokenErr("DateTime", e.tokens.ValueString(dt.Clamped().ISO8601()))
}

// DateTimeKeyed writes name:"dt".
func (e *Encoder) DateTimeKeyed(name string, dt builtin.DateTime) error {
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.DateTime(dt)
}

// Guid writes g as its upper-case hyphenated string form.
func (e *Encoder) Guid(g builtin.Guid) error {
	return e.wrapTokenErr("Guid", e.tokens.ValueString(g.String()))
}

// GuidKeyed writes name:"g".
func (e *Encoder) GuidKeyed(name string, g builtin.Guid) error {
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.Guid(g)
}

// ByteString writes bs base64-encoded, or JSON null if bs is nil (the
// Part 6 mapping distinguishes an absent ByteString from an empty one).
func (e *Encoder) ByteString(bs builtin.ByteString) error {
	if bs == nil {
		return e.wrapTokenErr("ByteString", e.tokens.ValueNull())
	}
	if err := e.checkStringLen("ByteString", len(bs)); err != nil {
		return err
	}
	return e.wrapTokenErr("ByteString", e.tokens.ValueString(base64Encode(bs)))
}

// ByteStringKeyed writes name:"...", or name:null.
func (e *Encoder) ByteStringKeyed(name string, bs builtin.ByteString) error {
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.ByteString(bs)
}

// XmlElement writes a raw XML fragment as a JSON string, the way
// the Part 6 JSON mapping maps the XmlElement built-in type.
func (e *Encoder) XmlElement(xml string) error {
	return e.String(xml)
}

// XmlElementKeyed writes name:"xml".
func (e *Encoder) XmlElementKeyed(name string, xml string) error {
	return e.StringKeyed(name, xml)
}
