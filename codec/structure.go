package codec

import (
	"fmt"
	"sync"

	"github.com/opcua-json/opcuajson/builtin"
)

// StructureCodec encodes one concrete structure or enumeration type's
// body onto an Encoder. EncodingID is the NodeId the type is registered
// under, echoed back so a Registry lookup by value and by id agree.
type StructureCodec interface {
	EncodingID() builtin.NodeId
	// IsEnumeration reports whether this type encodes as a bare Int32
	// value (OPC UA Part 6) rather than as a JSON object. EncodeStructure
	// uses this to decide whether to open/close the surrounding object
	// itself or leave the value unframed.
	IsEnumeration() bool
	EncodeBody(e *Encoder, value any) error
}

// Registry is a concurrency-safe DataTypeManager backed by an in-memory
// map, the way a server's address-space-driven type dictionary would be
// built up at startup and then read from many request goroutines.
type Registry struct {
	mu     sync.RWMutex
	byID   map[string]StructureCodec
	byType map[string]StructureCodec
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]StructureCodec),
		byType: make(map[string]StructureCodec),
	}
}

// nodeIdKey renders id as a map key; NodeId itself cannot be one because
// its ByteString identifier field makes it non-comparable.
func nodeIdKey(id builtin.NodeId) string {
	return fmt.Sprintf("%d|%d|%d|%q|%s|%x", id.Namespace, id.Kind, id.Numeric, id.Str, id.GuidVal.String(), []byte(id.Opaque))
}

// Register associates codec with its EncodingID and, for
// StructureExtensionObjectByValue's lookup by Go type, with the Go
// type name of sample (a zero value of the type the codec encodes).
func (r *Registry) Register(codec StructureCodec, sample any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[nodeIdKey(codec.EncodingID())] = codec
	r.byType[fmt.Sprintf("%T", sample)] = codec
}

// Lookup implements DataTypeManager.
func (r *Registry) Lookup(id builtin.NodeId) (StructureCodec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[nodeIdKey(id)]
	return c, ok
}

// LookupByValue finds the StructureCodec registered for value's dynamic
// Go type, used by StructureExtensionObjectByValue, which accepts a bare
// struct value rather than a pre-resolved NodeId.
func (r *Registry) LookupByValue(value any) (StructureCodec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byType[fmt.Sprintf("%T", value)]
	return c, ok
}

// EncodeStructure writes value's body as a JSON object using the
// StructureCodec ctx resolves for id, the shared path used by
// StructureExtensionObject and EncodeMessage. Variant elements are not
// resolved through it: a structure inside a Variant travels as a
// builtin.ExtensionObject whose body is already serialized.
func (e *Encoder) EncodeStructure(id builtin.NodeId, value any) error {
	if e.ctx == nil {
		return newUnknownTypeError("EncodeStructure", ErrUnknownStructure)
	}
	codec, ok := e.ctx.DataTypes().Lookup(id)
	if !ok {
		return newUnknownTypeError("EncodeStructure", ErrUnknownStructure)
	}
	if codec.IsEnumeration() {
		return codec.EncodeBody(e, value)
	}

	if err := e.checkDepth("EncodeStructure"); err != nil {
		return err
	}
	if err := e.wrapTokenErr("EncodeStructure", e.tokens.BeginObject()); err != nil {
		return err
	}
	if err := codec.EncodeBody(e, value); err != nil {
		return err
	}
	return e.wrapTokenErr("EncodeStructure", e.tokens.EndObject())
}
