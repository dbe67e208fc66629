// Package security issues and reads the bearer tokens services use to
// identify callers.
package security

import (
	"time"

	"github.com/noordwind/Coolector-Common/types"
)

// TokenDetails are the claims read back from a valid token.
type TokenDetails struct {
	Subject   string    `json:"subject"`
	Role      string    `json:"role"`
	ID        string    `json:"id"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// TokenCredential is a freshly issued token.
type TokenCredential struct {
	Token   string    `json:"token"`
	Role    string    `json:"role"`
	Expires time.Time `json:"expires"`
}

// TokenHandler creates and parses tokens. Failures are reported as None.
type TokenHandler interface {
	Parse(token string) types.Maybe[TokenDetails]
	// Create issues a token for userID. expiry <= 0 uses the handler default.
	Create(userID, role string, expiry time.Duration) types.Maybe[TokenCredential]
	// FromAuthorizationHeader extracts the token from "Bearer <token>".
	FromAuthorizationHeader(header string) types.Maybe[string]
}
