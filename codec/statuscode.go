package codec

import (
	"github.com/opcua-json/opcuajson/builtin"
	"github.com/opcua-json/opcuajson/statuscode"
)

// StatusCode writes c per the Part 6 JSON mapping. Reversible mode writes
// the bare number, Good included. This unkeyed form always writes the
// value, since an unkeyed StatusCode (inside an array, say) must keep its
// slot even when Good; the omission of a Good field in non-reversible
// mode is done by StatusCodeKeyed. Non-reversible mode additionally
// resolves the code to its symbolic name and nests both under an
// object, the way a diagnostic tool would rather not have to memorize
// 0x80AF0000.
func (e *Encoder) StatusCode(c builtin.StatusCode) error {
	if e.reversible {
		return e.smallUint(uint64(c))
	}

	if err := e.checkDepth("StatusCode"); err != nil {
		return err
	}
	if err := e.wrapTokenErr("StatusCode", e.tokens.BeginObject()); err != nil {
		return err
	}
	if err := e.UInt32Keyed("Code", uint32(c)); err != nil {
		return err
	}
	if name, ok := statuscode.Symbol(uint32(c)); ok {
		if err := e.StringKeyed("Symbol", name); err != nil {
			return err
		}
	}
	return e.wrapTokenErr("StatusCode", e.tokens.EndObject())
}

// StatusCodeKeyed writes name:code. Per the Part 6 JSON mapping's rule, Good is
// omitted only in non-reversible mode; reversible mode always writes the
// field, Good included.
func (e *Encoder) StatusCodeKeyed(name string, c builtin.StatusCode) error {
	if !e.reversible && c.IsGood() {
		return nil
	}
	return e.statusCodeKeyedAlways(name, c)
}

// statusCodeKeyedAlways writes name:code unconditionally, bypassing the
// Good-omission rule above, for callers (DataValue.Status,
// DiagnosticInfo.InnerStatusCode) whose own container rule already
// decided whether the field is present at all.
func (e *Encoder) statusCodeKeyedAlways(name string, c builtin.StatusCode) error {
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.StatusCode(c)
}
