package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// HashEmail hashes an address case- and whitespace-insensitively. It is
// used as a dedupe key and in logs; the address itself is never logged.
func HashEmail(email string) string {
	return HashString(strings.ToLower(strings.TrimSpace(email)))
}
