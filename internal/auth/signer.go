// Package auth implements the stateless credential primitives of the
// service: the HMAC signer, box code issuance, one time passwords and
// opaque session tokens. Everything here is pure computation over a
// process-wide secret and is safe for concurrent use.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signer computes keyed MACs over arbitrary strings. The secret is
// fixed at construction; an empty secret must be rejected at startup,
// not here.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign returns the hex encoded HMAC-SHA256 of msg. Deterministic for
// equal (secret, msg).
func (s *Signer) Sign(msg string) string {
	m := hmac.New(sha256.New, s.secret)
	m.Write([]byte(msg))
	return hex.EncodeToString(m.Sum(nil))
}

// Equal compares two digests in constant time.
func (s *Signer) Equal(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
