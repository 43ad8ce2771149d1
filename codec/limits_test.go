package codec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opcua-json/opcuajson/builtin"
	"github.com/opcua-json/opcuajson/codec"
	"github.com/opcua-json/opcuajson/encctx"
)

func limitedContext(l codec.Limits) codec.Context {
	return encctx.NewContext(encctx.NewNamespaceTable(), encctx.NewServerTable(""), codec.NewRegistry(), l)
}

func TestStringLengthLimit(t *testing.T) {
	ctx := limitedContext(codec.Limits{MaxStringLength: 4})
	var buf bytes.Buffer
	e := codec.NewEncoder(&buf, ctx)

	require.NoError(t, e.String("abcd"))

	e.Reset(&buf)
	err := e.String("abcde")
	require.Error(t, err)
	assert.True(t, codec.IsEncodingError(err, codec.KindLimitExceeded))
	assert.ErrorIs(t, err, codec.ErrStringTooLong)
}

func TestArrayLengthLimit(t *testing.T) {
	ctx := limitedContext(codec.Limits{MaxArrayLength: 2})
	var buf bytes.Buffer
	e := codec.NewEncoder(&buf, ctx)

	v := builtin.ArrayVariant(builtin.TypeInt32, []any{int32(1), int32(2), int32(3)})
	err := e.Variant(v)
	require.Error(t, err)
	assert.ErrorIs(t, err, codec.ErrArrayTooLong)
}

func TestNestingDepthLimit(t *testing.T) {
	ctx := limitedContext(codec.Limits{MaxNestingDepth: 2})
	var buf bytes.Buffer
	e := codec.NewEncoder(&buf, ctx)

	// Variant envelope is depth 1, the NodeId object inside Body is 2,
	// so a Variant nesting another Variant-of-NodeId breaks the cap.
	inner := builtin.ScalarVariant(builtin.TypeNodeId, builtin.NumericNodeId(0, 1))
	outer := builtin.ScalarVariant(builtin.TypeVariant, inner)
	err := e.Variant(outer)
	require.Error(t, err)
	assert.ErrorIs(t, err, codec.ErrDepthExceeded)
}

func TestMessageSizeLimit(t *testing.T) {
	ctx := limitedContext(codec.Limits{MaxMessageSize: 8})
	var buf bytes.Buffer
	e := codec.NewEncoder(&buf, ctx)

	err := e.String(strings.Repeat("x", 32))
	require.Error(t, err)
	assert.True(t, codec.IsEncodingError(err, codec.KindLimitExceeded))
	assert.ErrorIs(t, err, codec.ErrMessageTooLarge)
}

func TestSetReversibleLockedMidEncoding(t *testing.T) {
	var buf bytes.Buffer
	e := codec.NewEncoder(&buf, nil)
	require.NoError(t, e.Tokens().BeginObject())

	err := e.SetReversible(false)
	require.Error(t, err)
	assert.True(t, codec.IsEncodingError(err, codec.KindInvalidState))
	assert.ErrorIs(t, err, codec.ErrReversibleModeLocked)
}

func TestVariantUnknownTypeIdFails(t *testing.T) {
	var buf bytes.Buffer
	e := codec.NewEncoder(&buf, nil)

	v := builtin.Variant{Type: builtin.TypeID(26), Shape: builtin.ShapeScalar, Scalar: 0}
	err := e.Variant(v)
	require.Error(t, err)
	assert.True(t, codec.IsEncodingError(err, codec.KindUnknownType))
}
