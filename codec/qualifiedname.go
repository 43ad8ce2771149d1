package codec

import "github.com/opcua-json/opcuajson/builtin"

// QualifiedName writes q per the Part 6 JSON mapping:
// {"Name":"...","Uri":ns}, with
// "Uri" omitted when the namespace index is 0 in both modes. Reversible
// mode keeps "Uri" numeric; non-reversible mode resolves it to the
// namespace URI when the index is greater than 1 and the table has an
// entry, falling back to the numeric index otherwise (the same rule
// NodeId applies to its own "Namespace" field).
func (e *Encoder) QualifiedName(q builtin.QualifiedName) error {
	if err := e.checkDepth("QualifiedName"); err != nil {
		return err
	}
	if err := e.wrapTokenErr("QualifiedName", e.tokens.BeginObject()); err != nil {
		return err
	}
	if q.Name != "" {
		if err := e.StringKeyed("Name", q.Name); err != nil {
			return err
		}
	}
	if err := e.writeQualifiedNameUri(q.NamespaceIndex); err != nil {
		return err
	}
	return e.wrapTokenErr("QualifiedName", e.tokens.EndObject())
}

func (e *Encoder) writeQualifiedNameUri(ns uint16) error {
	if ns == 0 {
		return nil
	}
	if e.reversible || ns <= 1 {
		return e.UInt16Keyed("Uri", ns)
	}
	if e.ctx != nil {
		if uri, ok := e.ctx.Namespaces().URI(ns); ok {
			return e.StringKeyed("Uri", uri)
		}
	}
	return e.UInt16Keyed("Uri", ns)
}

// QualifiedNameKeyed writes name:{...}.
func (e *Encoder) QualifiedNameKeyed(name string, q builtin.QualifiedName) error {
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.QualifiedName(q)
}

// LocalizedText writes lt per the Part 6 JSON mapping. Reversible mode writes
// {"Locale":"...","Text":"..."} with either field omitted when its
// pointer is nil, and an empty object when both are nil. Non-reversible
// mode discards the locale entirely and writes the Text alone as a bare
// JSON string (the empty string when Text is nil).
func (e *Encoder) LocalizedText(lt builtin.LocalizedText) error {
	if !e.reversible {
		if lt.Text != nil {
			return e.String(*lt.Text)
		}
		return e.String("")
	}

	if err := e.checkDepth("LocalizedText"); err != nil {
		return err
	}
	if err := e.wrapTokenErr("LocalizedText", e.tokens.BeginObject()); err != nil {
		return err
	}
	if lt.Locale != nil {
		if err := e.StringKeyed("Locale", *lt.Locale); err != nil {
			return err
		}
	}
	if lt.Text != nil {
		if err := e.StringKeyed("Text", *lt.Text); err != nil {
			return err
		}
	}
	return e.wrapTokenErr("LocalizedText", e.tokens.EndObject())
}

// LocalizedTextKeyed writes name:{...}.
func (e *Encoder) LocalizedTextKeyed(name string, lt builtin.LocalizedText) error {
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.LocalizedText(lt)
}
