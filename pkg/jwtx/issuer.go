// Package jwtx mints and validates the signed bearer tokens used by the auth
// service. Tokens are HS256 JWTs signed with a single process-wide secret
// loaded at startup. There is no server-side revocation: a token stays valid
// until its expiry regardless of later changes to the subject.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed = errors.New("jwtx: malformed or forged token")
	ErrExpired   = errors.New("jwtx: token expired")
	ErrWrongUse  = errors.New("jwtx: wrong token use")
)

// Verifier validates a session token and returns its claims. Satisfied by
// *Issuer; middleware depends on this interface so tests can substitute it.
type Verifier interface {
	VerifySession(token string) (Claims, error)
}

// Issuer mints and validates tokens. Secret and TokenIssuer come from
// configuration; the zero TTLs fall back to the package defaults.
type Issuer struct {
	Secret      []byte
	TokenIssuer string
	SessionTTL  time.Duration
	SetupTTL    time.Duration

	// Now overrides the clock, for tests. Nil means time.Now.
	Now func() time.Time
}

func (i *Issuer) now() time.Time {
	if i.Now != nil {
		return i.Now()
	}
	return time.Now()
}

func (i *Issuer) sessionTTL() time.Duration {
	if i.SessionTTL > 0 {
		return i.SessionTTL
	}
	return DefaultSessionTTL
}

func (i *Issuer) setupTTL() time.Duration {
	if i.SetupTTL > 0 {
		return i.SetupTTL
	}
	return DefaultSetupTTL
}

// IssueSession mints a full session token bound to the user identity and role.
func (i *Issuer) IssueSession(userID, username, role string) (string, error) {
	claims := newClaims(userID, username, role, UseSession, i.TokenIssuer, i.sessionTTL(), i.now())
	return i.sign(claims)
}

// IssueSetup mints a short-lived 2FA-setup token. It carries enrollment state
// between registration and code verification and is rejected by VerifySession.
func (i *Issuer) IssueSetup(userID string) (string, error) {
	claims := newClaims(userID, "", "", UseTwoFactorSetup, i.TokenIssuer, i.setupTTL(), i.now())
	return i.sign(claims)
}

func (i *Issuer) sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.Secret)
}

// Verify checks signature, expiry and issuer, and returns the claims of any
// token kind. Expired tokens are distinguished from malformed ones only so
// callers can log the difference; both must be rejected identically.
func (i *Issuer) Verify(tokenStr string) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) { return i.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.TokenIssuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrMalformed
	}

	return claims, nil
}

// VerifySession is Verify restricted to full session tokens.
func (i *Issuer) VerifySession(tokenStr string) (Claims, error) {
	claims, err := i.Verify(tokenStr)
	if err != nil {
		return Claims{}, err
	}
	if claims.TokenUse != UseSession {
		return Claims{}, ErrWrongUse
	}
	return claims, nil
}

// VerifySetup is Verify restricted to 2FA-setup tokens.
func (i *Issuer) VerifySetup(tokenStr string) (Claims, error) {
	claims, err := i.Verify(tokenStr)
	if err != nil {
		return Claims{}, err
	}
	if claims.TokenUse != UseTwoFactorSetup {
		return Claims{}, ErrWrongUse
	}
	return claims, nil
}
