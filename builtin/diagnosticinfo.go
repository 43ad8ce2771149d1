package builtin

// DiagnosticInfo carries extended error/diagnostic context for a
// StatusCode. The four index fields are table indices into out-of-band
// string tables; -1 means "not present" (OPC UA Part 6).
type DiagnosticInfo struct {
	SymbolicId       int32
	NamespaceUri     int32
	Locale           int32
	LocalizedTextIdx int32

	AdditionalInfo *string

	InnerStatusCode     *StatusCode
	InnerDiagnosticInfo *DiagnosticInfo
}

// UnsetIndex is the sentinel value for an absent index field.
const UnsetIndex int32 = -1
