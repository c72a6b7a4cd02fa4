package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashSecret computes the deterministic one-way digest used for every
// stored credential (passwords and two-factor codes).
//
// The input is trimmed of surrounding whitespace before hashing, so
// " secret " and "secret" produce the same digest. An empty or
// whitespace-only input hashes to the empty-string sentinel instead of
// failing, mirroring how non-admin accounts store an empty two-factor
// digest.
//
// Parameters:
//
//	secret - plaintext secret to be digested
//
// Returns:
//
//	string - hex-encoded SHA-256 digest, or "" for empty input
//
// Example usage:
//
//	digest := utils.HashSecret("202602")
func HashSecret(secret string) string {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return ""
	}

	sum := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(sum[:])
}
