package builtin

// ExtensionObjectEncoding tags the wire form of an ExtensionObject's body
// (OPC UA Part 6): 0 none, 1 binary, 2 xml. A JSON body carries no tag
// at all -- it is not one of the three numbered encodings.
type ExtensionObjectEncoding int

const (
	ExtensionEncodingNone   ExtensionObjectEncoding = 0
	ExtensionEncodingBinary ExtensionObjectEncoding = 1
	ExtensionEncodingXML    ExtensionObjectEncoding = 2
)

// ExtensionObject envelopes an encoded structure tagged with the
// structure's encoding NodeId. Exactly one body field is meaningful,
// selected by Encoding; a JSON body is signaled by a non-nil JSONBody with
// Encoding left at its zero value.
type ExtensionObject struct {
	// Null marks the JSON-null ExtensionObject (OPC UA Part 6).
	Null bool

	TypeId   NodeId
	Encoding ExtensionObjectEncoding

	BinaryBody ByteString
	XMLBody    string
	// JSONBody holds a raw, already-serialized JSON fragment -- the
	// "JSON encoding" body kind, which needs no Encoding tag.
	JSONBody []byte
}

// IsJSONBody reports whether o carries a raw JSON body rather than a
// binary or XML one.
func (o ExtensionObject) IsJSONBody() bool {
	return !o.Null && o.Encoding == ExtensionEncodingNone && o.JSONBody != nil
}
