package codec

import "github.com/opcua-json/opcuajson/builtin"

// ExtensionObject writes x per the Part 6 JSON mapping. A Null extension object
// (x.Null, or a zero-value TypeId with no body) writes as the bare JSON
// null, matching how it appears when nested unkeyed inside an array.
// Reversible mode wraps the body as {"TypeId":{...},"Encoding":k,"Body":
// ...}, with "Encoding" omitted for the JSON-body case (0 is the
// implicit, and by far most common, encoding) and "Body" carrying a
// base64 ByteString for a binary body, a string for an XML body, or the
// raw pre-serialized JSON fragment for a JSON body. Non-reversible mode
// sheds the TypeId/Encoding envelope entirely and writes the body alone,
// since a non-reversible reader is assumed to already know the type.
func (e *Encoder) ExtensionObject(x builtin.ExtensionObject) error {
	if x.Null || (x.TypeId.IsZero() && !x.IsJSONBody() && len(x.BinaryBody) == 0 && x.XMLBody == "") {
		return e.wrapTokenErr("ExtensionObject", e.tokens.ValueNull())
	}

	if !e.reversible {
		return e.extensionObjectBody(x)
	}

	if err := e.checkDepth("ExtensionObject"); err != nil {
		return err
	}
	if err := e.wrapTokenErr("ExtensionObject", e.tokens.BeginObject()); err != nil {
		return err
	}
	if err := e.NodeIdKeyed("TypeId", x.TypeId); err != nil {
		return err
	}

	switch x.Encoding {
	case builtin.ExtensionEncodingNone:
		// Omitted: 0 is implicit.
	case builtin.ExtensionEncodingBinary:
		if err := e.Int32Keyed("Encoding", 1); err != nil {
			return err
		}
	case builtin.ExtensionEncodingXML:
		if err := e.Int32Keyed("Encoding", 2); err != nil {
			return err
		}
	default:
		return newUnknownTypeError("ExtensionObject.Encoding", nil)
	}

	if err := e.wrapTokenErr("ExtensionObject", e.tokens.Name("Body")); err != nil {
		return err
	}
	if err := e.extensionObjectBody(x); err != nil {
		return err
	}

	return e.wrapTokenErr("ExtensionObject", e.tokens.EndObject())
}

// extensionObjectBody writes the bare body value: base64 for a binary
// body, a JSON string for an XML body, or the raw pre-serialized JSON
// fragment for a JSON body.
func (e *Encoder) extensionObjectBody(x builtin.ExtensionObject) error {
	switch x.Encoding {
	case builtin.ExtensionEncodingBinary:
		return e.ByteString(x.BinaryBody)
	case builtin.ExtensionEncodingXML:
		return e.XmlElement(x.XMLBody)
	default:
		return e.wrapTokenErr("ExtensionObject.Body", e.tokens.ValueRaw(string(x.JSONBody)))
	}
}

// ExtensionObjectKeyed writes name:{...} or name:null.
func (e *Encoder) ExtensionObjectKeyed(name string, x builtin.ExtensionObject) error {
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.ExtensionObject(x)
}

// StructureExtensionObject encodes value through the Registry-resolved
// StructureCodec for typeId and wraps the resulting document as a
// JSON-bodied ExtensionObject, the path a caller takes when it holds a
// registered Go struct directly rather than a pre-built
// builtin.ExtensionObject with its JSONBody already marshaled. In
// reversible mode this writes the usual {"TypeId":...,"Body":...}
// envelope; in non-reversible mode it writes the structure body alone,
// matching ExtensionObject's own mode split.
func (e *Encoder) StructureExtensionObject(typeId builtin.NodeId, value any) error {
	if !e.reversible {
		return e.EncodeStructure(typeId, value)
	}
	if err := e.checkDepth("ExtensionObject"); err != nil {
		return err
	}
	if err := e.wrapTokenErr("ExtensionObject", e.tokens.BeginObject()); err != nil {
		return err
	}
	if err := e.NodeIdKeyed("TypeId", typeId); err != nil {
		return err
	}
	if err := e.wrapTokenErr("ExtensionObject", e.tokens.Name("Body")); err != nil {
		return err
	}
	if err := e.EncodeStructure(typeId, value); err != nil {
		return err
	}
	return e.wrapTokenErr("ExtensionObject", e.tokens.EndObject())
}

// StructureExtensionObjectKeyed writes name:{...} using
// StructureExtensionObject's rules, the counterpart callers reach for
// when the struct value is a named field rather than a Variant element.
func (e *Encoder) StructureExtensionObjectKeyed(name string, typeId builtin.NodeId, value any) error {
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.StructureExtensionObject(typeId, value)
}

// StructureExtensionObjectByValue resolves value's codec through reg by
// its dynamic Go type rather than a caller-supplied NodeId, the
// reflection-free convenience LookupByValue exists for.
func (e *Encoder) StructureExtensionObjectByValue(reg *Registry, value any) error {
	codec, ok := reg.LookupByValue(value)
	if !ok {
		return newUnknownTypeError("StructureExtensionObjectByValue", ErrUnknownStructure)
	}
	return e.StructureExtensionObject(codec.EncodingID(), value)
}
