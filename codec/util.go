package codec

import "encoding/base64"

// base64Encode renders a ByteString body the way the mapping requires:
// standard base64 alphabet, padded, per RFC 4648.
func base64Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
