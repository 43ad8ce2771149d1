// Package debugconsole exposes a small HTTP service for exercising the
// OPC UA JSON encoder interactively: a fixed set of named scenarios run
// through codec.Encoder on demand, the active encoding context is
// inspectable, and freshly-encoded DataValue notifications stream over
// server-sent events.
//
// It is not part of the OPC UA wire format itself; it exists to give a
// human a way to poke at the library without writing a Go program first.
package debugconsole
