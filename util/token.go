package util

import (
	"crypto/rand"
	"encoding/hex"
)

// NewFormLinkToken generates the capability token embedded in a record's
// patient form link: 32 random bytes, hex encoded (64 characters). The
// token is the only credential a patient needs, so it must be
// unguessable.
func NewFormLinkToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
