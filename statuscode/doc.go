// Package statuscode holds the symbolic-name table for OPC UA StatusCode
// values, consulted by the codec package when rendering a status in
// non-reversible mode.
//
// The full table defined by the OPC UA specification has roughly 1,500
// entries. This package carries the subset covering the service-level and
// data-quality codes a JSON encoder is realistically asked to render, as
// a hand-carried flat map literal, not logic; no generator is run. Extending
// it to the complete set is purely a data-entry exercise against
// table_generate.go's documented source format.
package statuscode
