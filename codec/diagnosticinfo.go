package codec

import "github.com/opcua-json/opcuajson/builtin"

// DiagnosticInfo writes di per the Part 6 JSON mapping: an object with each index
// field omitted when it equals builtin.UnsetIndex, AdditionalInfo
// omitted when nil, InnerStatusCode omitted only when nil (a Good inner
// status is written), and
// InnerDiagnosticInfo recursing the same way. A fully-default
// DiagnosticInfo (every index unset, every pointer nil) writes as an
// empty object rather than being special-cased to a bare value -- unlike
// DataValue, the mapping gives DiagnosticInfo no empty-string shortcut.
func (e *Encoder) DiagnosticInfo(di builtin.DiagnosticInfo) error {
	if err := e.checkDepth("DiagnosticInfo"); err != nil {
		return err
	}
	if err := e.wrapTokenErr("DiagnosticInfo", e.tokens.BeginObject()); err != nil {
		return err
	}

	if di.SymbolicId != builtin.UnsetIndex {
		if err := e.Int32Keyed("SymbolicId", di.SymbolicId); err != nil {
			return err
		}
	}
	if di.NamespaceUri != builtin.UnsetIndex {
		if err := e.Int32Keyed("NamespaceUri", di.NamespaceUri); err != nil {
			return err
		}
	}
	if di.Locale != builtin.UnsetIndex {
		if err := e.Int32Keyed("Locale", di.Locale); err != nil {
			return err
		}
	}
	if di.LocalizedTextIdx != builtin.UnsetIndex {
		if err := e.Int32Keyed("LocalizedText", di.LocalizedTextIdx); err != nil {
			return err
		}
	}
	if di.AdditionalInfo != nil {
		if err := e.StringKeyed("AdditionalInfo", *di.AdditionalInfo); err != nil {
			return err
		}
	}
	if di.InnerStatusCode != nil {
		if err := e.statusCodeKeyedAlways("InnerStatusCode", *di.InnerStatusCode); err != nil {
			return err
		}
	}
	if di.InnerDiagnosticInfo != nil {
		if err := e.DiagnosticInfoKeyed("InnerDiagnosticInfo", *di.InnerDiagnosticInfo); err != nil {
			return err
		}
	}

	return e.wrapTokenErr("DiagnosticInfo", e.tokens.EndObject())
}

// DiagnosticInfoKeyed writes name:{...}.
func (e *Encoder) DiagnosticInfoKeyed(name string, di builtin.DiagnosticInfo) error {
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.DiagnosticInfo(di)
}
