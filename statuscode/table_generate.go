package statuscode

// This file documents how Table would be regenerated from the full OPC UA
// specification export, without attempting to vendor or refetch that CSV
// at code-generation time (there is no network access from this build).
//
// Expected input format, one row per status code:
//
//	Bad_NodeIdUnknown,0x80340000,"The node id refers to a node that does not exist."
//
// Regeneration would read that CSV and emit exactly the map literal in
// table.go, sorted by numeric value, keeping Table a pure data table with
// no parsing logic at runtime.
