package encctx_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opcua-json/opcuajson/codec"
	"github.com/opcua-json/opcuajson/encctx"
)

func TestDefaultConfigHasReservedEntries(t *testing.T) {
	cfg := encctx.DefaultConfig()
	assert.Equal(t, []string{encctx.StandardNamespaceURI}, cfg.Namespaces)
	assert.Equal(t, []string{""}, cfg.Servers)
}

func TestLoadConfigParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
namespaces:
  - http://opcfoundation.org/UA/
  - http://example.org/UA/
servers:
  - urn:local-server
maxNestingDepth: 32
maxArrayLength: 1000
maxStringLength: 65536
maxMessageSize: 1048576
authUsername: operator
authPassword: hunter2
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := encctx.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://opcfoundation.org/UA/", "http://example.org/UA/"}, cfg.Namespaces)
	assert.Equal(t, []string{"urn:local-server"}, cfg.Servers)
	assert.Equal(t, 32, cfg.MaxNestingDepth)
	assert.Equal(t, 1000, cfg.MaxArrayLength)
	assert.Equal(t, 65536, cfg.MaxStringLength)
	assert.Equal(t, 1048576, cfg.MaxMessageSize)
	assert.Equal(t, "operator", cfg.AuthUsername)
	assert.Equal(t, "hunter2", cfg.AuthPassword)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := encctx.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigEmptyTablesFallBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maxNestingDepth: 8\n"), 0o644))

	cfg, err := encctx.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{encctx.StandardNamespaceURI}, cfg.Namespaces)
	assert.Equal(t, []string{""}, cfg.Servers)
	assert.Equal(t, 8, cfg.MaxNestingDepth)
}

func TestConfigLimits(t *testing.T) {
	cfg := encctx.Config{MaxNestingDepth: 4, MaxArrayLength: 10, MaxStringLength: 100}
	assert.Equal(t, codec.Limits{MaxNestingDepth: 4, MaxArrayLength: 10, MaxStringLength: 100}, cfg.Limits())
}

func TestConfigContextBuildsUsableContext(t *testing.T) {
	cfg := encctx.Config{
		Namespaces: []string{encctx.StandardNamespaceURI, "http://example.org/UA/"},
		Servers:    []string{"urn:local"},
	}
	reg := codec.NewRegistry()
	ctx := cfg.Context(reg)

	uri, ok := ctx.Namespaces().URI(1)
	require.True(t, ok)
	assert.Equal(t, "http://example.org/UA/", uri)

	local, ok := ctx.Servers().ServerURI(0)
	require.True(t, ok)
	assert.Equal(t, "urn:local", local)

	assert.Same(t, reg, ctx.DataTypes())
}
