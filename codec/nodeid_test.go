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

func encodeWithCtx(t *testing.T, ctx codec.Context, reversible bool, write func(e *codec.Encoder) error) string {
	t.Helper()
	var buf bytes.Buffer
	e := codec.NewEncoder(&buf, ctx)
	require.NoError(t, e.SetReversible(reversible))
	require.NoError(t, write(e))
	require.NoError(t, e.Close())
	return buf.String()
}

func TestNodeIdNumericNamespaceZeroOmitted(t *testing.T) {
	n := builtin.NumericNodeId(0, 2253)
	assert.JSONEq(t, `{"Id":2253}`, encodeWithCtx(t, nil, true, func(e *codec.Encoder) error { return e.NodeId(n) }))
}

func TestNodeIdStringReversibleKeepsNumericNamespace(t *testing.T) {
	n := builtin.StringNodeId(5, "Temperature")
	assert.JSONEq(t, `{"IdType":1,"Id":"Temperature","Namespace":5}`,
		encodeWithCtx(t, nil, true, func(e *codec.Encoder) error { return e.NodeId(n) }))
}

func TestNodeIdNamespaceOneNeverResolved(t *testing.T) {
	ns := encctx.NewNamespaceTable()
	ns.Set(1, "urn:something")
	reg := codec.NewRegistry()
	ctx := encctx.NewContext(ns, encctx.NewServerTable(""), reg, codec.Limits{})

	n := builtin.StringNodeId(1, "Foo")
	assert.JSONEq(t, `{"IdType":1,"Id":"Foo","Namespace":1}`,
		encodeWithCtx(t, ctx, false, func(e *codec.Encoder) error { return e.NodeId(n) }))
}

func TestNodeIdNonReversibleResolvesNamespaceURI(t *testing.T) {
	ns := encctx.NewNamespaceTable()
	idx := ns.Add("http://example.org/UA/")
	require.Equal(t, uint16(2), idx)
	reg := codec.NewRegistry()
	ctx := encctx.NewContext(ns, encctx.NewServerTable(""), reg, codec.Limits{})

	n := builtin.StringNodeId(idx, "Temperature")
	assert.JSONEq(t, `{"IdType":1,"Id":"Temperature","Namespace":"http://example.org/UA/"}`,
		encodeWithCtx(t, ctx, false, func(e *codec.Encoder) error { return e.NodeId(n) }))
}

func TestNodeIdNonReversibleFallsBackWhenURIMissing(t *testing.T) {
	ns := encctx.NewNamespaceTable()
	reg := codec.NewRegistry()
	ctx := encctx.NewContext(ns, encctx.NewServerTable(""), reg, codec.Limits{})

	n := builtin.StringNodeId(7, "Foo")
	assert.JSONEq(t, `{"IdType":1,"Id":"Foo","Namespace":7}`,
		encodeWithCtx(t, ctx, false, func(e *codec.Encoder) error { return e.NodeId(n) }))
}

func TestNodeIdGuidAndOpaqueKinds(t *testing.T) {
	g, err := builtin.ParseGuid("72962b91-fa75-4ae6-8d28-b404dc7daf63")
	require.NoError(t, err)
	assert.JSONEq(t, `{"IdType":2,"Id":"72962B91-FA75-4AE6-8D28-B404DC7DAF63"}`,
		encodeWithCtx(t, nil, true, func(e *codec.Encoder) error { return e.NodeId(builtin.GuidNodeId(0, g)) }))

	op := builtin.OpaqueNodeId(0, []byte{0x01, 0x02})
	assert.JSONEq(t, `{"IdType":3,"Id":"AQI="}`,
		encodeWithCtx(t, nil, true, func(e *codec.Encoder) error { return e.NodeId(op) }))
}

func TestExpandedNodeIdNamespaceURIOverridesNamespace(t *testing.T) {
	x := builtin.ExpandedNodeId{
		NodeId:       builtin.NumericNodeId(3, 42),
		NamespaceURI: "http://example.org/UA/",
	}
	assert.JSONEq(t, `{"Id":42,"Namespace":"http://example.org/UA/"}`,
		encodeWithCtx(t, nil, true, func(e *codec.Encoder) error { return e.ExpandedNodeId(x) }))
}

func TestExpandedNodeIdServerIndexOmittedWhenZero(t *testing.T) {
	x := builtin.ExpandedNodeId{NodeId: builtin.NumericNodeId(0, 1)}
	assert.JSONEq(t, `{"Id":1}`,
		encodeWithCtx(t, nil, true, func(e *codec.Encoder) error { return e.ExpandedNodeId(x) }))
}

func TestExpandedNodeIdServerIndexReversibleIsNumeric(t *testing.T) {
	x := builtin.ExpandedNodeId{NodeId: builtin.NumericNodeId(0, 1), ServerIndex: 4}
	assert.JSONEq(t, `{"Id":1,"ServerUri":4}`,
		encodeWithCtx(t, nil, true, func(e *codec.Encoder) error { return e.ExpandedNodeId(x) }))
}

func TestExpandedNodeIdServerIndexNonReversibleResolvesURI(t *testing.T) {
	srv := encctx.NewServerTable("urn:local")
	idx := srv.Add("urn:remote")
	ns := encctx.NewNamespaceTable()
	reg := codec.NewRegistry()
	ctx := encctx.NewContext(ns, srv, reg, codec.Limits{})

	x := builtin.ExpandedNodeId{NodeId: builtin.NumericNodeId(0, 1), ServerIndex: idx}
	assert.JSONEq(t, `{"Id":1,"ServerUri":"urn:remote"}`,
		encodeWithCtx(t, ctx, false, func(e *codec.Encoder) error { return e.ExpandedNodeId(x) }))
}
