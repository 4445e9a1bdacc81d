package domain

// TwoFactorEnrollment is the material a user needs to load a freshly
// generated TOTP secret into an authenticator app.
type TwoFactorEnrollment struct {
	Secret     string // base32 encoded
	OtpauthURL string // otpauth:// provisioning URI
}

// RegisteredUser is the outcome of a successful registration: the new user
// plus the enrollment material for the secret generated at creation and a
// short-lived setup token for confirming the enrollment code.
type RegisteredUser struct {
	User       User
	Enrollment TwoFactorEnrollment
	SetupToken string
}

// LoginResult is either a completed login (Token set) or a pending 2FA
// challenge (Need2FA true, no token).
type LoginResult struct {
	Need2FA bool
	User    User
	Token   string
}
