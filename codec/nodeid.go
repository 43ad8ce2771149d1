package codec

import "github.com/opcua-json/opcuajson/builtin"

// NodeId writes n per the Part 6 JSON mapping. Reversible encoding always
// uses the
// compact {"IdType":k,"Id":v,"Namespace":ns} form with the numeric
// namespace index (Namespace omitted when 0). Non-reversible encoding
// resolves the namespace index to its URI through the Context's
// NamespaceTable and writes it under "Namespace" as a string instead,
// falling back to the numeric index when the table has no entry for it
// (the mapping leaves that case to the implementation; emitting the raw
// index keeps the document self-describing rather than silently
// dropping information).
func (e *Encoder) NodeId(n builtin.NodeId) error {
	if err := e.checkDepth("NodeId"); err != nil {
		return err
	}
	if err := e.wrapTokenErr("NodeId", e.tokens.BeginObject()); err != nil {
		return err
	}
	if err := e.writeNodeIdFields(n); err != nil {
		return err
	}
	return e.wrapTokenErr("NodeId", e.tokens.EndObject())
}

// NodeIdKeyed writes name:{...}.
func (e *Encoder) NodeIdKeyed(name string, n builtin.NodeId) error {
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.NodeId(n)
}

func (e *Encoder) writeNodeIdFields(n builtin.NodeId) error {
	switch n.Kind {
	case builtin.IdentifierNumeric:
		if err := e.UInt32Keyed("Id", n.Numeric); err != nil {
			return err
		}
	case builtin.IdentifierString:
		if err := e.Int32Keyed("IdType", 1); err != nil {
			return err
		}
		if err := e.StringKeyed("Id", n.Str); err != nil {
			return err
		}
		return e.writeNodeIdNamespace(n.Namespace)
	case builtin.IdentifierGuid:
		if err := e.Int32Keyed("IdType", 2); err != nil {
			return err
		}
		if err := e.GuidKeyed("Id", n.GuidVal); err != nil {
			return err
		}
		return e.writeNodeIdNamespace(n.Namespace)
	case builtin.IdentifierOpaque:
		if err := e.Int32Keyed("IdType", 3); err != nil {
			return err
		}
		if err := e.ByteStringKeyed("Id", n.Opaque); err != nil {
			return err
		}
		return e.writeNodeIdNamespace(n.Namespace)
	default:
		return newUnknownTypeError("NodeId.IdType", nil)
	}
	return e.writeNodeIdNamespace(n.Namespace)
}

// writeNodeIdNamespace applies the Part 6 JSON mapping omission rule: a
// Namespace of 0 is never written, and index 1 (the local server's own
// namespace) is written as the number 1 in both modes.
func (e *Encoder) writeNodeIdNamespace(ns uint16) error {
	if ns == 0 {
		return nil
	}
	if e.reversible || ns <= 1 {
		return e.UInt16Keyed("Namespace", ns)
	}
	if e.ctx != nil {
		if uri, ok := e.ctx.Namespaces().URI(ns); ok {
			return e.StringKeyed("Namespace", uri)
		}
	}
	return e.UInt16Keyed("Namespace", ns)
}

// ExpandedNodeId writes x per the Part 6 JSON mapping: the embedded
// NodeId's fields
// plus an optional "ServerUri" field when x.ServerIndex is non-zero (the
// numeric index in reversible mode, the resolved server URI in
// non-reversible mode when the table has one), and x.NamespaceURI written
// as a string under "Namespace" when it is set (taking precedence over
// the numeric namespace index in both modes).
func (e *Encoder) ExpandedNodeId(x builtin.ExpandedNodeId) error {
	if err := e.checkDepth("ExpandedNodeId"); err != nil {
		return err
	}
	if err := e.wrapTokenErr("ExpandedNodeId", e.tokens.BeginObject()); err != nil {
		return err
	}
	if err := e.writeExpandedNodeIdFields(x); err != nil {
		return err
	}
	return e.wrapTokenErr("ExpandedNodeId", e.tokens.EndObject())
}

// ExpandedNodeIdKeyed writes name:{...}.
func (e *Encoder) ExpandedNodeIdKeyed(name string, x builtin.ExpandedNodeId) error {
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.ExpandedNodeId(x)
}

func (e *Encoder) writeExpandedNodeIdFields(x builtin.ExpandedNodeId) error {
	switch x.Kind {
	case builtin.IdentifierNumeric:
		if err := e.UInt32Keyed("Id", x.Numeric); err != nil {
			return err
		}
	case builtin.IdentifierString:
		if err := e.Int32Keyed("IdType", 1); err != nil {
			return err
		}
		if err := e.StringKeyed("Id", x.Str); err != nil {
			return err
		}
	case builtin.IdentifierGuid:
		if err := e.Int32Keyed("IdType", 2); err != nil {
			return err
		}
		if err := e.GuidKeyed("Id", x.GuidVal); err != nil {
			return err
		}
	case builtin.IdentifierOpaque:
		if err := e.Int32Keyed("IdType", 3); err != nil {
			return err
		}
		if err := e.ByteStringKeyed("Id", x.Opaque); err != nil {
			return err
		}
	default:
		return newUnknownTypeError("ExpandedNodeId.IdType", nil)
	}

	switch {
	case x.NamespaceURI != "":
		if err := e.StringKeyed("Namespace", x.NamespaceURI); err != nil {
			return err
		}
	default:
		if err := e.writeNodeIdNamespace(x.Namespace); err != nil {
			return err
		}
	}

	if x.ServerIndex == 0 {
		return nil
	}
	if e.reversible {
		return e.UInt32Keyed("ServerUri", x.ServerIndex)
	}
	if e.ctx != nil {
		if uri, ok := e.ctx.Servers().ServerURI(x.ServerIndex); ok {
			return e.StringKeyed("ServerUri", uri)
		}
	}
	return e.UInt32Keyed("ServerUri", x.ServerIndex)
}
