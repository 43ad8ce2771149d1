package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opcua-json/opcuajson/builtin"
	"github.com/opcua-json/opcuajson/codec"
	"github.com/opcua-json/opcuajson/encctx"
)

func applicationTypeContext(reversible bool) (codec.Context, codec.StructureCodec) {
	sc := codec.ApplicationTypeCodec{}
	reg := codec.NewRegistry()
	reg.Register(sc, builtin.ApplicationTypeServer)
	return encctx.NewContext(encctx.NewNamespaceTable(), encctx.NewServerTable(""), reg, codec.Limits{}), sc
}

func TestApplicationTypeReversibleIsBareOrdinal(t *testing.T) {
	ctx, sc := applicationTypeContext(true)
	got := encodeWithCtx(t, ctx, true, func(e *codec.Encoder) error {
		return e.EncodeStructure(sc.EncodingID(), builtin.ApplicationTypeClientAndServer)
	})
	assert.Equal(t, "2", got)
}

func TestApplicationTypeNonReversibleIsNameValueString(t *testing.T) {
	ctx, sc := applicationTypeContext(false)
	got := encodeWithCtx(t, ctx, false, func(e *codec.Encoder) error {
		return e.EncodeStructure(sc.EncodingID(), builtin.ApplicationTypeClientAndServer)
	})
	assert.Equal(t, `"ClientAndServer_2"`, got)
}

func TestArgumentCodecOmitsZeroValueRankAndEmptyDimensions(t *testing.T) {
	sc := codec.ArgumentCodec{}
	reg := codec.NewRegistry()
	reg.Register(sc, builtin.Argument{})
	ctx := encctx.NewContext(encctx.NewNamespaceTable(), encctx.NewServerTable(""), reg, codec.Limits{})

	arg := builtin.Argument{Name: "Input", DataType: builtin.NumericNodeId(0, 6)}
	got := encodeWithCtx(t, ctx, true, func(e *codec.Encoder) error {
		return e.EncodeStructure(sc.EncodingID(), arg)
	})
	assert.JSONEq(t, `{"Name":"Input","DataType":{"Id":6}}`, got)
}

func TestArgumentCodecWritesArrayDimensionsAndDescription(t *testing.T) {
	sc := codec.ArgumentCodec{}
	reg := codec.NewRegistry()
	reg.Register(sc, builtin.Argument{})
	ctx := encctx.NewContext(encctx.NewNamespaceTable(), encctx.NewServerTable(""), reg, codec.Limits{})

	arg := builtin.Argument{
		Name:            "Input",
		DataType:        builtin.NumericNodeId(0, 6),
		ValueRank:       1,
		ArrayDimensions: []uint32{10},
		Description:     builtin.TextOnly("An input value"),
	}
	got := encodeWithCtx(t, ctx, true, func(e *codec.Encoder) error {
		return e.EncodeStructure(sc.EncodingID(), arg)
	})
	assert.JSONEq(t, `{"Name":"Input","DataType":{"Id":6},"ValueRank":1,"ArrayDimensions":[10],"Description":{"Text":"An input value"}}`, got)
}
