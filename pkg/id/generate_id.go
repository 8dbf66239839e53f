package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
// Used as the public identifier for every entity.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewSessionID returns a checkout session identifier ("cs_" + 32 hex chars),
// the shape the payment gateway echoes back in webhook events.
func NewSessionID() string {
	return "cs_" + NewID32()
}
