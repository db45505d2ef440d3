package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns the public record identifier: exactly 32 lowercase hex
// characters, no separators or prefixes. Assigned once at creation and
// never reassigned.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
