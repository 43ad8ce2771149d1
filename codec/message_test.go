package codec_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opcua-json/opcuajson/builtin"
	"github.com/opcua-json/opcuajson/codec"
	"github.com/opcua-json/opcuajson/encctx"
)

func builtinContext(t *testing.T) codec.Context {
	t.Helper()
	reg := codec.NewRegistry()
	codec.RegisterBuiltinCodecs(reg)
	return encctx.NewContext(encctx.NewNamespaceTable(), encctx.NewServerTable(""), reg, codec.Limits{})
}

func TestEncodeMessageWrapsReadRequest(t *testing.T) {
	req := builtin.ReadRequest{
		NodesToRead: []builtin.ReadValueId{
			{NodeIdVal: builtin.NumericNodeId(0, 2256), AttributeId: 13},
		},
	}

	var buf bytes.Buffer
	e := codec.NewEncoder(&buf, builtinContext(t))
	require.NoError(t, e.EncodeMessage(codec.Message{
		TypeId: builtin.ReadRequestEncodingTypeId,
		Body:   req,
	}))

	assert.JSONEq(t, `{
		"TypeId": {"Id": 15257},
		"Body": {"NodesToRead": [{"NodeId": {"Id": 2256}, "AttributeId": 13}]}
	}`, buf.String())
}

func TestEncodeMessageReadResponseResults(t *testing.T) {
	ts := builtin.NewDateTime(builtin.DateTimeMax.Time())
	v := builtin.ScalarVariant(builtin.TypeDouble, 21.5)
	resp := builtin.ReadResponse{
		Results: []builtin.DataValue{
			{Value: &v, SourceTimestamp: &ts},
			{}, // fully default, holds its slot as ""
		},
	}

	var buf bytes.Buffer
	e := codec.NewEncoder(&buf, builtinContext(t))
	require.NoError(t, e.EncodeMessage(codec.Message{
		TypeId: builtin.ReadResponseEncodingTypeId,
		Body:   resp,
	}))

	assert.JSONEq(t, `{
		"TypeId": {"Id": 15258},
		"Body": {"Results": [
			{"Value": {"Type": 11, "Body": 21.5}, "SourceTimestamp": "9999-12-31T23:59:59Z"},
			""
		]}
	}`, buf.String())
}

func TestEncodeMessageUnknownTypeFails(t *testing.T) {
	var buf bytes.Buffer
	e := codec.NewEncoder(&buf, builtinContext(t))
	err := e.EncodeMessage(codec.Message{
		TypeId: builtin.NumericNodeId(0, 424242),
		Body:   struct{}{},
	})
	require.Error(t, err)
	assert.True(t, codec.IsEncodingError(err, codec.KindUnknownType))
}
