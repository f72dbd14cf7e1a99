// Package token generates the opaque codes handed out as capability tokens.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// New returns a 32-character hex string carrying 128 bits of entropy from the
// OS CSPRNG. Codes are unguessable and collisions are not a practical concern.
func New() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("token: read random: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
