package domain

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string // argon2id PHC encoded
	Role         Role
	TOTPSecret   *string // base32 encoded (nullable)
	// TwoFactorEnabled is only true after a code was verified against the
	// stored secret. A set secret with this false means enrollment is
	// pending - and a pending secret still gates login.
	TwoFactorEnabled bool
	LastLogin        *time.Time // nullable, set on completed authentication
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TwoFactorPending reports whether a secret has been generated but never
// verified.
func (u User) TwoFactorPending() bool {
	return u.TOTPSecret != nil && *u.TOTPSecret != "" && !u.TwoFactorEnabled
}

// HasTOTPSecret reports whether any secret is stored, verified or not.
func (u User) HasTOTPSecret() bool {
	return u.TOTPSecret != nil && *u.TOTPSecret != ""
}

// UserFilter narrows admin user listings.
type UserFilter struct {
	Search string // substring match on username, empty matches all
	Role   Role   // zero value matches all roles
	Page   int    // 1-based
	Limit  int
}

// UserPage is one page of an admin user listing. Page and Limit are the
// effective values after clamping, which may differ from what the caller
// asked for.
type UserPage struct {
	Users []User
	Total int64
	Page  int
	Limit int
}
