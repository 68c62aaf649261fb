package conversions

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// The Conversions API requires user-identifying fields to arrive as SHA-256
// hex digests of normalized values: emails lowercased and trimmed, phone
// numbers reduced to digits.

func HashEmail(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return ""
	}
	return sha256Hex(normalized)
}

func HashPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return sha256Hex(b.String())
}

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
