// Package api holds the request/response records and error bodies of the
// auth service HTTP surface. Handlers and clients share these so the wire
// contract lives in one place.
package api

import "time"

// UserSummary is the externally visible view of a user. It never carries the
// password hash or the TOTP secret.
type UserSummary struct {
	ID               string     `json:"id"`
	Username         string     `json:"username"`
	Role             string     `json:"role"`
	TwoFactorEnabled bool       `json:"two_factor_enabled"`
	LastLogin        *time.Time `json:"last_login,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterResponse returns the enrollment material for the TOTP secret that
// is generated for every new account, plus a short-lived setup token for the
// verify-2fa-setup step.
type RegisterResponse struct {
	UserID     string `json:"user_id"`
	Secret     string `json:"secret"`
	OtpauthURL string `json:"otpauth_url"`
	QRCodeURL  string `json:"qr_code_url"`
	SetupToken string `json:"setup_token"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is either a completed login (Token and User set) or a 2FA
// challenge (Need2FA true and UserID set, no token).
type LoginResponse struct {
	Need2FA bool         `json:"need_2fa,omitempty"`
	UserID  string       `json:"user_id,omitempty"`
	Token   string       `json:"token,omitempty"`
	User    *UserSummary `json:"user,omitempty"`
}

// VerifyLoginRequest completes a pending 2FA login challenge. Secret is only
// honored when the account has no stored secret; it lets a caller finish an
// enrollment that was started out-of-band.
type VerifyLoginRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Code   string `json:"code" validate:"required,numeric,len=6"`
	Secret string `json:"secret,omitempty"`
}

type VerifyLoginResponse struct {
	Token string       `json:"token"`
	User  *UserSummary `json:"user"`
}

// VerifySetupRequest confirms an enrollment code during registration, using
// the setup token returned by Register instead of a session.
type VerifySetupRequest struct {
	SetupToken string `json:"setup_token" validate:"required"`
	Code       string `json:"code" validate:"required,numeric,len=6"`
}

// UpdateProfileRequest mutates the caller's own account. Nil pointers leave
// fields untouched. CurrentPassword is required when Password is set.
type UpdateProfileRequest struct {
	Username        *string `json:"username,omitempty" validate:"omitempty,min=3,max=30"`
	Password        *string `json:"password,omitempty" validate:"omitempty,min=6"`
	CurrentPassword string  `json:"current_password,omitempty"`
}

type UserResponse struct {
	User UserSummary `json:"user"`
}

type TwoFactorGenerateResponse struct {
	Secret     string `json:"secret"`
	OtpauthURL string `json:"otpauth_url"`
	QRCodeURL  string `json:"qr_code_url"`
}

type TwoFactorVerifyRequest struct {
	Code string `json:"code" validate:"required,numeric,len=6"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ListUsersRequest is parsed from query parameters on the admin list endpoint.
type ListUsersRequest struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Search string `json:"search"`
	Role   string `json:"role"`
}

type ListUsersResponse struct {
	Users       []UserSummary `json:"users"`
	Total       int64         `json:"total"`
	TotalPages  int           `json:"total_pages"`
	CurrentPage int           `json:"current_page"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=30"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
