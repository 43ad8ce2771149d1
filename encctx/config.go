package encctx

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/opcua-json/opcuajson/codec"
)

// Config is the on-disk description of an EncodingContext: the
// namespace and server tables an operator wants the encoder to resolve
// against in non-reversible mode, plus the resource limits it should
// enforce. It is authored as YAML and also serializes as JSON so the
// debug console can serve the resolved configuration back to a caller
// at runtime.
type Config struct {
	Namespaces      []string `yaml:"namespaces" json:"namespaces"`
	Servers         []string `yaml:"servers" json:"servers"`
	MaxNestingDepth int      `yaml:"maxNestingDepth" json:"maxNestingDepth"`
	MaxArrayLength  int      `yaml:"maxArrayLength" json:"maxArrayLength"`
	MaxStringLength int      `yaml:"maxStringLength" json:"maxStringLength"`
	MaxMessageSize  int      `yaml:"maxMessageSize" json:"maxMessageSize"`

	// AuthUsername/AuthPassword, when both set, gate the debug console's
	// /encode endpoint behind HTTP basic auth. They never affect the
	// encoder itself.
	AuthUsername string `yaml:"authUsername" json:"authUsername,omitempty"`
	AuthPassword string `yaml:"authPassword" json:"-"`
}

// DefaultConfig returns a Config with only the reserved namespace/server
// table entries and no limits, suitable as a starting point before a
// YAML file is loaded.
func DefaultConfig() Config {
	return Config{
		Namespaces: []string{StandardNamespaceURI},
		Servers:    []string{""},
	}
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if len(cfg.Namespaces) == 0 {
		cfg.Namespaces = []string{StandardNamespaceURI}
	}
	if len(cfg.Servers) == 0 {
		cfg.Servers = []string{""}
	}
	return cfg, nil
}

// Limits converts the loaded configuration's size caps into codec.Limits.
func (c Config) Limits() codec.Limits {
	return codec.Limits{
		MaxNestingDepth: c.MaxNestingDepth,
		MaxArrayLength:  c.MaxArrayLength,
		MaxStringLength: c.MaxStringLength,
		MaxMessageSize:  c.MaxMessageSize,
	}
}

// Context builds a ready-to-use codec.Context from the configuration:
// a NamespaceTable and ServerTable seeded from c.Namespaces/c.Servers
// (index 0 is always present since DefaultConfig/LoadConfig guarantee
// a non-empty slice), reg as the DataTypeManager, and c.Limits() as the
// resource caps.
func (c Config) Context(reg *codec.Registry) *Context {
	ns := &NamespaceTable{uris: append([]string{}, c.Namespaces...)}
	srv := &ServerTable{uris: append([]string{}, c.Servers...)}
	return &Context{
		namespaces: ns,
		servers:    srv,
		dataTypes:  reg,
		limits:     c.Limits(),
	}
}

// Context implements codec.Context over a pair of encctx tables, a
// codec.Registry, and a fixed Limits value.
type Context struct {
	namespaces *NamespaceTable
	servers    *ServerTable
	dataTypes  codec.DataTypeManager
	limits     codec.Limits
}

// NewContext builds a Context directly from its components, for callers
// that construct the tables themselves rather than through a Config.
func NewContext(namespaces *NamespaceTable, servers *ServerTable, dataTypes codec.DataTypeManager, limits codec.Limits) *Context {
	return &Context{namespaces: namespaces, servers: servers, dataTypes: dataTypes, limits: limits}
}

// Namespaces implements codec.Context.
func (c *Context) Namespaces() codec.NamespaceTable { return c.namespaces }

// Servers implements codec.Context.
func (c *Context) Servers() codec.ServerTable { return c.servers }

// DataTypes implements codec.Context.
func (c *Context) DataTypes() codec.DataTypeManager { return c.dataTypes }

// Limits implements codec.Context.
func (c *Context) Limits() codec.Limits { return c.limits }
