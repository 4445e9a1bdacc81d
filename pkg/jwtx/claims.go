package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Default token lifetimes.
const (
	// DefaultSessionTTL is the lifetime of a full session token. Sessions
	// are long-lived because there is no refresh flow; see the design notes
	// on the absence of server-side revocation.
	DefaultSessionTTL = 7 * 24 * time.Hour

	// DefaultSetupTTL is the lifetime of a 2FA-setup token. It only needs
	// to carry enrollment state from registration to code verification.
	DefaultSetupTTL = 10 * time.Minute
)

// TokenUse tags what a token is good for. The request gate only accepts
// UseSession; a setup token can never authenticate a request.
type TokenUse string

const (
	UseSession        TokenUse = "session"
	UseTwoFactorSetup TokenUse = "2fa_setup"
)

// Claims are the claims embedded in every token this service mints.
type Claims struct {
	jwt.RegisteredClaims

	// Role of the subject at issuance time. Stale after a role change
	// until the token expires; callers re-check against the store where
	// that matters.
	Role string `json:"role,omitempty"`

	// Username at issuance time, for logging and display.
	Username string `json:"username,omitempty"`

	// TokenUse distinguishes session tokens from 2FA-setup tokens.
	TokenUse TokenUse `json:"token_use"`
}

func newClaims(subject, username, role string, use TokenUse, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
		Role:     role,
		Username: username,
		TokenUse: use,
	}
}
