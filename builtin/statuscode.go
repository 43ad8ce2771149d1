package builtin

// StatusCode is a 32-bit OPC UA result/quality code. The zero value, Good,
// denotes unconditional success (OPC UA Part 6).
type StatusCode uint32

// Good is the StatusCode value denoting success.
const Good StatusCode = 0

// IsGood reports whether c is the Good status.
func (c StatusCode) IsGood() bool {
	return c == Good
}
