package builtin

// IdentifierKind is the NodeId identifier-type discriminant: 0 numeric,
// 1 string, 2 guid, 3 opaque (byte
// string). Kind 0 is the default and is omitted from reversible JSON.
type IdentifierKind int

const (
	IdentifierNumeric IdentifierKind = 0
	IdentifierString  IdentifierKind = 1
	IdentifierGuid    IdentifierKind = 2
	IdentifierOpaque  IdentifierKind = 3
)

// NodeId identifies a node within a namespace. Exactly one of the
// identifier fields is meaningful, selected by Kind.
type NodeId struct {
	Namespace uint16
	Kind      IdentifierKind

	Numeric uint32
	Str     string
	GuidVal Guid
	Opaque  ByteString
}

// NumericNodeId builds a NodeId with a UInt32 (kind 0) identifier.
func NumericNodeId(namespace uint16, id uint32) NodeId {
	return NodeId{Namespace: namespace, Kind: IdentifierNumeric, Numeric: id}
}

// StringNodeId builds a NodeId with a String (kind 1) identifier.
func StringNodeId(namespace uint16, id string) NodeId {
	return NodeId{Namespace: namespace, Kind: IdentifierString, Str: id}
}

// GuidNodeId builds a NodeId with a Guid (kind 2) identifier.
func GuidNodeId(namespace uint16, id Guid) NodeId {
	return NodeId{Namespace: namespace, Kind: IdentifierGuid, GuidVal: id}
}

// OpaqueNodeId builds a NodeId with a ByteString (kind 3) identifier.
func OpaqueNodeId(namespace uint16, id ByteString) NodeId {
	return NodeId{Namespace: namespace, Kind: IdentifierOpaque, Opaque: id}
}

// IsZero reports whether n is the zero NodeId (ns:i=0), used to detect a
// Null ExtensionObject's absent TypeId. NodeId embeds a ByteString slice
// field and so is not itself comparable with ==.
func (n NodeId) IsZero() bool {
	return n.Namespace == 0 && n.Kind == IdentifierNumeric && n.Numeric == 0
}

// ExpandedNodeId is a NodeId plus an optional namespace URI (taking
// precedence over Namespace when set) and a server table index.
type ExpandedNodeId struct {
	NodeId

	// NamespaceURI, when non-empty, overrides Namespace in both encoding
	// modes (OPC UA Part 6).
	NamespaceURI string

	// ServerIndex is omitted from JSON when zero.
	ServerIndex uint32
}
