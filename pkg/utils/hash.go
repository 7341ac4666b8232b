package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString returns a short, stable token for personal data such as an
// email address so log lines can be correlated without carrying the value.
// Case and surrounding space are ignored.
func HashString(input string) string {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])[:16]
}
