package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"boxdrop/internal/apierr"
)

// SessionIDLength is the exact length of a session identifier. Opaque
// tokens are sliced positionally at this boundary, so the length is a
// format invariant, not a default.
const SessionIDLength = 24

// NewSessionID returns a random hex session identifier of exactly
// SessionIDLength characters.
func NewSessionID() (string, error) {
	b := make([]byte, SessionIDLength/2)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// TokenIssuer mints and verifies opaque session tokens: the session ID
// concatenated with its MAC. No expiry is embedded; lifetime and
// revocation are the caller's concern.
type TokenIssuer struct {
	signer *Signer
}

func NewTokenIssuer(signer *Signer) *TokenIssuer {
	return &TokenIssuer{signer: signer}
}

// Issue binds sessionID to a MAC. sessionID must be exactly
// SessionIDLength characters or verification breaks.
func (t *TokenIssuer) Issue(sessionID string) (string, error) {
	if len(sessionID) != SessionIDLength {
		return "", fmt.Errorf("session id must be %d characters, got %d", SessionIDLength, len(sessionID))
	}
	return sessionID + t.signer.Sign(sessionID), nil
}

// Verify unpacks token and returns the session ID it binds, or an
// UNAUTHORIZED error when the MAC does not hold.
func (t *TokenIssuer) Verify(token string) (string, error) {
	if len(token) <= SessionIDLength {
		return "", apierr.Unauthenticated("incorrect token")
	}
	sessionID, mac := token[:SessionIDLength], token[SessionIDLength:]
	if !t.signer.Equal(t.signer.Sign(sessionID), mac) {
		return "", apierr.Unauthenticated("incorrect token")
	}
	return sessionID, nil
}
