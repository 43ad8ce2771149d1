package encctx

import "errors"

// ErrReservedNamespace is returned when a caller tries to overwrite
// namespace index 0, which is reserved for the standard OPC UA URI.
var ErrReservedNamespace = errors.New("encctx: namespace index 0 is reserved")
