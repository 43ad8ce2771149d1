// Package builtin defines the OPC UA Part 6 built-in type system: the value
// types a Variant can carry, and the composite entities (NodeId,
// ExpandedNodeId, QualifiedName, LocalizedText, StatusCode, DataValue,
// ExtensionObject, DiagnosticInfo) that the codec package knows how to
// write as JSON.
//
// Every type here is an immutable value. The package holds no encoding
// logic of its own -- that lives in codec, which is the only consumer that
// needs to know about JSON at all.
package builtin
