// Package codec implements the OPC UA Part 6 section 5.3.1 JSON data
// encoding: a stateful Encoder bound to an output sink and an
// EncodingContext, with a reversible and a non-reversible observation
// mode.
//
// Encoder exposes, for every built-in and composite OPC UA type, an
// unkeyed form (the value alone) and a keyed form ("key":value inside an
// open object, with the mapping's field-omission rules applied before the
// key is even written). The Variant engine dispatches on the built-in
// type id, flattening multi-dimensional arrays in reversible mode and
// nesting them in non-reversible mode. Structures and enumerations are
// dispatched through a Registry of StructureCodec values keyed by their
// encoding NodeId.
//
// Encoder is single-threaded and non-suspending: every call is
// synchronous, and after a failed encode the sink holds whatever prefix
// was written before the failure -- the caller must Reset before reusing
// the Encoder.
package codec
