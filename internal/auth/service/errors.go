package service

import "errors"

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so callers cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidTwoFactorCode is returned for any failed TOTP check.
	ErrInvalidTwoFactorCode = errors.New("invalid two-factor code")

	// ErrInvalidSetupToken is returned when a 2FA setup token is missing,
	// expired, or of the wrong type.
	ErrInvalidSetupToken = errors.New("invalid setup token")

	// ErrUsernameTaken is returned when a username is already registered.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrNotEnrolled is returned when a 2FA operation needs a stored
	// secret and none exists.
	ErrNotEnrolled = errors.New("two-factor enrollment not started")

	// ErrTwoFactorEnabled is returned when cancelling an enrollment that
	// has already been verified.
	ErrTwoFactorEnabled = errors.New("two-factor authentication already enabled")

	// ErrSelfDelete is returned when an admin tries to delete their own
	// account.
	ErrSelfDelete = errors.New("cannot delete your own account")
)
