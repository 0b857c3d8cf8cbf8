package providers

import (
	"time"
)

// SessionClaims are the signed identity claims carried by a session token.
type SessionClaims struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionProvider is the opaque sign/verify capability gating the
// personalization endpoints. Token format internals are not part of the
// core contract.
type SessionProvider interface {
	// Sign issues a token for the claims
	Sign(claims SessionClaims) (string, error)

	// Verify validates a token and returns its claims, or an error for
	// invalid and expired tokens
	Verify(token string) (*SessionClaims, error)
}
