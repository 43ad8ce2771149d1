package codec

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why an Encoder call failed, mirroring the three
// failure modes the OPC UA JSON mapping recognizes for an encoder:
// running past a configured limit, being asked to encode a type the
// Context cannot resolve, and being called in a sequence the state
// machine does not allow.
type ErrorKind int

const (
	// KindLimitExceeded means a configured EncodingContext limit (max
	// array length, max string length, max nesting depth, ...) was hit.
	KindLimitExceeded ErrorKind = iota
	// KindUnknownType means a NodeId, Variant type id, or structure
	// encoding id had no resolution in the Context.
	KindUnknownType
	// KindInvalidState means the Encoder or its underlying token writer
	// was called in a sequence that violates the encoding state machine,
	// e.g. SetReversible after a value has already been written.
	KindInvalidState
)

func (k ErrorKind) String() string {
	switch k {
	case KindLimitExceeded:
		return "limit exceeded"
	case KindUnknownType:
		return "unknown type"
	case KindInvalidState:
		return "invalid state"
	default:
		return "unknown error kind"
	}
}

// EncodingError is returned by Encoder methods for failures that
// originate in the encoding logic itself, as opposed to a failure
// writing to the underlying sink (those are returned unchanged, per the
// sink-failure passthrough rule).
type EncodingError struct {
	Kind ErrorKind
	// Where names the field, type, or operation the error occurred in,
	// e.g. "Variant.Array[3]" or "NodeId.Namespace".
	Where string
	Err   error
}

func (e *EncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("codec: %s at %s: %v", e.Kind, e.Where, e.Err)
	}
	return fmt.Sprintf("codec: %s at %s", e.Kind, e.Where)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

func newLimitError(where string, err error) *EncodingError {
	return &EncodingError{Kind: KindLimitExceeded, Where: where, Err: err}
}

func newUnknownTypeError(where string, err error) *EncodingError {
	return &EncodingError{Kind: KindUnknownType, Where: where, Err: err}
}

func newInvalidStateError(where string, err error) *EncodingError {
	return &EncodingError{Kind: KindInvalidState, Where: where, Err: err}
}

// IsEncodingError reports whether err is an *EncodingError of the given
// kind, unwrapping as needed.
func IsEncodingError(err error, kind ErrorKind) bool {
	var ee *EncodingError
	if errors.As(err, &ee) {
		return ee.Kind == kind
	}
	return false
}

// ErrReversibleModeLocked is wrapped into a KindInvalidState error when
// SetReversible is called after the current top-level value has already
// started.
var ErrReversibleModeLocked = errors.New("codec: reversible mode can only change between top-level encodings")

// ErrDepthExceeded is wrapped into a KindLimitExceeded error when nesting
// passes Limits.MaxNestingDepth.
var ErrDepthExceeded = errors.New("codec: maximum nesting depth exceeded")

// ErrArrayTooLong is wrapped into a KindLimitExceeded error when an array
// or matrix element count passes Limits.MaxArrayLength.
var ErrArrayTooLong = errors.New("codec: array length exceeds configured limit")

// ErrStringTooLong is wrapped into a KindLimitExceeded error when a
// string or ByteString length passes Limits.MaxStringLength.
var ErrStringTooLong = errors.New("codec: string length exceeds configured limit")

// ErrMessageTooLarge is wrapped into a KindLimitExceeded error when one
// encoding pass writes more bytes than Limits.MaxMessageSize permits.
var ErrMessageTooLarge = errors.New("codec: encoded message exceeds configured size limit")

// ErrUnresolvedNamespace describes a NodeId namespace index with no entry
// in the Context's NamespaceTable. The Encoder does not return it: an
// unresolved index is written numerically instead.
var ErrUnresolvedNamespace = errors.New("codec: namespace index not present in namespace table")

// ErrUnresolvedServer describes an ExpandedNodeId server index with no
// entry in the Context's ServerTable. The Encoder does not return it: an
// unresolved index is written numerically instead.
var ErrUnresolvedServer = errors.New("codec: server index not present in server table")

// ErrUnknownStructure is wrapped into a KindUnknownType error when the
// Registry has no StructureCodec for a requested encoding NodeId.
var ErrUnknownStructure = errors.New("codec: no structure codec registered for this type")
