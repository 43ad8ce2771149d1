package codec

import "github.com/opcua-json/opcuajson/builtin"

// Limits bounds the resource cost of a single encode call, so a server
// driven by untrusted input never builds an unbounded JSON document.
// A zero value for any field means "no limit".
type Limits struct {
	MaxNestingDepth int
	MaxArrayLength  int
	MaxStringLength int
	MaxMessageSize  int
}

func (l Limits) nestingOK(depth int) bool {
	return l.MaxNestingDepth <= 0 || depth <= l.MaxNestingDepth
}

func (l Limits) arrayOK(n int) bool {
	return l.MaxArrayLength <= 0 || n <= l.MaxArrayLength
}

func (l Limits) stringOK(n int) bool {
	return l.MaxStringLength <= 0 || n <= l.MaxStringLength
}

// NamespaceTable resolves a local namespace index to its URI the way a
// session's NamespaceArray does. Reversible encoding writes
// the numeric index directly; non-reversible encoding writes the
// resolved URI.
type NamespaceTable interface {
	// URI returns the namespace URI for index, and ok=false if index is
	// out of range.
	URI(index uint16) (string, bool)
}

// ServerTable resolves a local server index to its resolved URI the same
// way, for ExpandedNodeId.ServerIndex.
type ServerTable interface {
	ServerURI(index uint32) (string, bool)
}

// DataTypeManager resolves a structure or enumeration encoding NodeId (as
// passed to EncodeStructure, StructureExtensionObject or EncodeMessage)
// to a StructureCodec able to marshal it, the way a server's type
// dictionary resolves a DataTypeId to a runtime type.
type DataTypeManager interface {
	Lookup(id builtin.NodeId) (StructureCodec, bool)
}

// Context bundles everything an Encoder needs beyond the raw value being
// encoded: the namespace and server tables used to resolve NodeIds in
// non-reversible mode, the structure registry used to dispatch
// structure and message bodies, and the resource limits
// applied while encoding.
type Context interface {
	Namespaces() NamespaceTable
	Servers() ServerTable
	DataTypes() DataTypeManager
	Limits() Limits
}
