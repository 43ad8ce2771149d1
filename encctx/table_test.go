package encctx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opcua-json/opcuajson/encctx"
)

func TestNamespaceTableReservedIndexZero(t *testing.T) {
	ns := encctx.NewNamespaceTable()
	uri, ok := ns.URI(0)
	require.True(t, ok)
	assert.Equal(t, encctx.StandardNamespaceURI, uri)
}

func TestNamespaceTableAddAssignsSequentialIndex(t *testing.T) {
	ns := encctx.NewNamespaceTable()
	idx := ns.Add("http://example.org/UA/")
	assert.Equal(t, uint16(1), idx)
	uri, ok := ns.URI(idx)
	require.True(t, ok)
	assert.Equal(t, "http://example.org/UA/", uri)
}

func TestNamespaceTableSetRejectsIndexZero(t *testing.T) {
	ns := encctx.NewNamespaceTable()
	err := ns.Set(0, "http://should-not-work/")
	require.ErrorIs(t, err, encctx.ErrReservedNamespace)
}

func TestNamespaceTableSetGrowsTable(t *testing.T) {
	ns := encctx.NewNamespaceTable()
	require.NoError(t, ns.Set(3, "urn:three"))
	uri, ok := ns.URI(3)
	require.True(t, ok)
	assert.Equal(t, "urn:three", uri)

	_, ok = ns.URI(2)
	assert.False(t, ok)
}

func TestNamespaceTableURIOutOfRange(t *testing.T) {
	ns := encctx.NewNamespaceTable()
	_, ok := ns.URI(99)
	assert.False(t, ok)
}

func TestServerTableLocalURIAtIndexZero(t *testing.T) {
	srv := encctx.NewServerTable("urn:local-server")
	uri, ok := srv.ServerURI(0)
	require.True(t, ok)
	assert.Equal(t, "urn:local-server", uri)
}

func TestServerTableAddAssignsSequentialIndex(t *testing.T) {
	srv := encctx.NewServerTable("urn:local")
	idx := srv.Add("urn:remote")
	assert.Equal(t, uint32(1), idx)
	uri, ok := srv.ServerURI(idx)
	require.True(t, ok)
	assert.Equal(t, "urn:remote", uri)
}

func TestServerTableURIsReturnsCopy(t *testing.T) {
	srv := encctx.NewServerTable("urn:local")
	srv.Add("urn:remote")
	uris := srv.URIs()
	uris[0] = "mutated"
	orig, _ := srv.ServerURI(0)
	assert.Equal(t, "urn:local", orig)
}
