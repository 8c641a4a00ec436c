// Package keygen creates and digests the secret access keys handed to
// teams, hosts and waiters. Raw keys are shown once at provisioning time;
// only SHA-256 digests are stored, so lookups compare fixed-length digests
// instead of the secrets themselves.
package keygen

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewKey returns a fresh secret key.
func NewKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Digest returns the lowercase hex SHA-256 digest of the trimmed key.
func Digest(key string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(key)))

	return hex.EncodeToString(sum[:])
}
