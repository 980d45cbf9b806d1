package pagination

import (
	"encoding/base64"
	"fmt"
)

// EncodeIDToken creates an opaque pagination token from a record identifier.
// Listing endpoints hand the last-emitted ID back to the caller in this form
// so the raw cursor never leaks into query strings.
func EncodeIDToken(id string) string {
	return base64.StdEncoding.EncodeToString([]byte(id))
}

// DecodeIDToken parses a token produced by EncodeIDToken back into the
// record identifier it wraps.
func DecodeIDToken(token string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	if len(decoded) == 0 {
		return "", fmt.Errorf("invalid pagination token format (empty)")
	}
	return string(decoded), nil
}
