package codec

import (
	"fmt"

	"github.com/opcua-json/opcuajson/builtin"
)

// ReadRequestCodec encodes builtin.ReadRequest, the request half of the
// Read service pair EncodeMessage is typically handed.
type ReadRequestCodec struct{}

// EncodingID implements StructureCodec.
func (ReadRequestCodec) EncodingID() builtin.NodeId {
	return builtin.ReadRequestEncodingTypeId
}

// IsEnumeration implements StructureCodec.
func (ReadRequestCodec) IsEnumeration() bool { return false }

// EncodeBody implements StructureCodec.
func (ReadRequestCodec) EncodeBody(e *Encoder, value any) error {
	req, ok := value.(builtin.ReadRequest)
	if !ok {
		return newUnknownTypeError("ReadRequest", fmt.Errorf("unexpected value type %T", value))
	}
	if req.MaxAge != 0 {
		if err := e.DoubleKeyed("MaxAge", req.MaxAge); err != nil {
			return err
		}
	}
	if req.TimestampsToReturn != 0 {
		if err := e.Int32Keyed("TimestampsToReturn", req.TimestampsToReturn); err != nil {
			return err
		}
	}
	if err := e.checkArrayLen("ReadRequest.NodesToRead", len(req.NodesToRead)); err != nil {
		return err
	}
	if err := e.wrapTokenErr("ReadRequest", e.tokens.Name("NodesToRead")); err != nil {
		return err
	}
	if err := e.wrapTokenErr("ReadRequest", e.tokens.BeginArray()); err != nil {
		return err
	}
	for _, rv := range req.NodesToRead {
		if err := e.wrapTokenErr("ReadValueId", e.tokens.BeginObject()); err != nil {
			return err
		}
		if err := e.NodeIdKeyed("NodeId", rv.NodeIdVal); err != nil {
			return err
		}
		if err := e.UInt32Keyed("AttributeId", rv.AttributeId); err != nil {
			return err
		}
		if rv.IndexRange != "" {
			if err := e.StringKeyed("IndexRange", rv.IndexRange); err != nil {
				return err
			}
		}
		if err := e.wrapTokenErr("ReadValueId", e.tokens.EndObject()); err != nil {
			return err
		}
	}
	return e.wrapTokenErr("ReadRequest", e.tokens.EndArray())
}

// ReadResponseCodec encodes builtin.ReadResponse.
type ReadResponseCodec struct{}

// EncodingID implements StructureCodec.
func (ReadResponseCodec) EncodingID() builtin.NodeId {
	return builtin.ReadResponseEncodingTypeId
}

// IsEnumeration implements StructureCodec.
func (ReadResponseCodec) IsEnumeration() bool { return false }

// EncodeBody implements StructureCodec. Each result is written through
// DataValue's own omission rules; a fully-default result still occupies
// its array slot as the empty JSON string so response order is
// preserved.
func (ReadResponseCodec) EncodeBody(e *Encoder, value any) error {
	resp, ok := value.(builtin.ReadResponse)
	if !ok {
		return newUnknownTypeError("ReadResponse", fmt.Errorf("unexpected value type %T", value))
	}
	if err := e.checkArrayLen("ReadResponse.Results", len(resp.Results)); err != nil {
		return err
	}
	if err := e.wrapTokenErr("ReadResponse", e.tokens.Name("Results")); err != nil {
		return err
	}
	if err := e.wrapTokenErr("ReadResponse", e.tokens.BeginArray()); err != nil {
		return err
	}
	for _, dv := range resp.Results {
		if err := e.DataValue(dv); err != nil {
			return err
		}
	}
	return e.wrapTokenErr("ReadResponse", e.tokens.EndArray())
}

// RegisterBuiltinCodecs registers every StructureCodec this package
// ships -- the Argument structure, the ApplicationType enumeration, and
// the Read service pair -- on reg.
func RegisterBuiltinCodecs(reg *Registry) {
	reg.Register(ArgumentCodec{}, builtin.Argument{})
	reg.Register(ApplicationTypeCodec{}, builtin.ApplicationType(0))
	reg.Register(ReadRequestCodec{}, builtin.ReadRequest{})
	reg.Register(ReadResponseCodec{}, builtin.ReadResponse{})
}
