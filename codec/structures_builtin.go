package codec

import (
	"fmt"

	"github.com/opcua-json/opcuajson/builtin"
)

// ArgumentCodec encodes builtin.Argument, the structure OPC UA method
// calls use to describe their input/output parameters.
type ArgumentCodec struct{}

// EncodingID implements StructureCodec.
func (ArgumentCodec) EncodingID() builtin.NodeId {
	return builtin.ArgumentEncodingTypeId
}

// IsEnumeration implements StructureCodec.
func (ArgumentCodec) IsEnumeration() bool { return false }

// EncodeBody implements StructureCodec.
func (ArgumentCodec) EncodeBody(e *Encoder, value any) error {
	arg, ok := value.(builtin.Argument)
	if !ok {
		return newUnknownTypeError("Argument", fmt.Errorf("unexpected value type %T", value))
	}
	if err := e.StringKeyed("Name", arg.Name); err != nil {
		return err
	}
	if err := e.NodeIdKeyed("DataType", arg.DataType); err != nil {
		return err
	}
	if arg.ValueRank != 0 {
		if err := e.Int32Keyed("ValueRank", arg.ValueRank); err != nil {
			return err
		}
	}
	if len(arg.ArrayDimensions) > 0 {
		if err := e.wrapTokenErr("Argument", e.tokens.Name("ArrayDimensions")); err != nil {
			return err
		}
		if err := e.writeUint32Array(arg.ArrayDimensions); err != nil {
			return err
		}
	}
	if arg.Description.Text != nil || arg.Description.Locale != nil {
		if err := e.LocalizedTextKeyed("Description", arg.Description); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) writeUint32Array(vs []uint32) error {
	if err := e.checkArrayLen("ArrayDimensions", len(vs)); err != nil {
		return err
	}
	if err := e.wrapTokenErr("ArrayDimensions", e.tokens.BeginArray()); err != nil {
		return err
	}
	for _, v := range vs {
		if err := e.UInt32(v); err != nil {
			return err
		}
	}
	return e.wrapTokenErr("ArrayDimensions", e.tokens.EndArray())
}

// ApplicationTypeCodec encodes builtin.ApplicationType, an Int32-backed
// enumeration, as a StructureCodec so it can be registered and encoded
// through EncodeStructure like any other registered type.
type ApplicationTypeCodec struct{}

// EncodingID implements StructureCodec. Enumerations have no dedicated
// binary/XML encoding NodeId of their own in the address space, so this
// codec reports the ApplicationType DataType NodeId (ns=0;i=307) and
// Register files it under that id.
func (ApplicationTypeCodec) EncodingID() builtin.NodeId {
	return builtin.NumericNodeId(0, 307)
}

// IsEnumeration implements StructureCodec.
func (ApplicationTypeCodec) IsEnumeration() bool { return true }

// EncodeBody implements StructureCodec. An enumeration's "body" is
// unframed rather than wrapped in an object: reversible mode writes the
// bare ordinal, non-reversible mode writes the "Name_Value" string
// the Part 6 JSON mapping specifies, so callers encoding an
// ApplicationType through
// EncodeStructure see the same split any other enumeration would.
func (ApplicationTypeCodec) EncodeBody(e *Encoder, value any) error {
	at, ok := value.(builtin.ApplicationType)
	if !ok {
		return newUnknownTypeError("ApplicationType", fmt.Errorf("unexpected value type %T", value))
	}
	if !e.reversible {
		return e.wrapTokenErr("ApplicationType", e.tokens.ValueString(fmt.Sprintf("%s_%d", at.Name(), int32(at))))
	}
	return e.wrapTokenErr("ApplicationType", e.tokens.ValueRaw(fmt.Sprintf("%d", int32(at))))
}
