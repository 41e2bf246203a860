package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// length of a fingerprint in hex characters
const fingerprintLen = 16

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// Fingerprint identifies a submitter in logs without recording the address
// itself. Case and surrounding whitespace do not change the result.
func Fingerprint(email string) string {
	return HashString(strings.ToLower(strings.TrimSpace(email)))[:fingerprintLen]
}
