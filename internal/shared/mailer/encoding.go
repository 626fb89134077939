package mailer

import (
	"encoding/base64"
	"strings"
)

// encodeBase64Wrapped folds base64 output at 76 columns as RFC 2045 requires.
func encodeBase64Wrapped(data []byte) string {
	encoded := base64.StdEncoding.EncodeToString(data)

	var b strings.Builder
	for len(encoded) > 76 {
		b.WriteString(encoded[:76])
		b.WriteString("\r\n")
		encoded = encoded[76:]
	}
	b.WriteString(encoded)
	return b.String()
}
