// Package encctx provides a concrete implementation of the tables and
// limits the codec package's Context interface needs: a slice-backed
// NamespaceTable/ServerTable pair, a Registry-backed DataTypeManager,
// and an EncodingLimits configuration that can be loaded from YAML and
// served back as JSON.
package encctx
