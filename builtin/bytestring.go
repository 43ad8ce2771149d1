package builtin

// ByteString is an opaque byte sequence, rendered in JSON as standard
// base-64 with "=" padding (OPC UA Part 6). A nil ByteString is distinct
// from an empty, zero-length one: callers that need to distinguish
// "absent" from "present but empty" should test for nil before encoding.
type ByteString []byte
