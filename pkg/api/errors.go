package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Stable machine-checkable error codes carried in the "error" field of every
// failure response. Clients branch on these, never on the description text.
const (
	CodeValidationError    = "validation_error"
	CodeConflict           = "conflict"
	CodeInvalidCredentials = "invalid_credentials"
	CodeInvalidToken       = "invalid_token"
	CodeInvalidCode        = "invalid_code"
	CodeForbidden          = "forbidden"
	CodeNotFound           = "not_found"
	CodeServerError        = "server_error"
	CodeRateLimited        = "rate_limit_exceeded"
)

// Error is the structured error body returned by every failing endpoint.
// It implements the error interface so services and handlers can pass it
// around like any other error value.
type Error struct {
	// StatusCode is the HTTP status for this error, not serialized.
	StatusCode int `json:"-"`

	// Code is the stable machine-checkable category.
	Code string `json:"error"`

	// Message is human-readable. For credential and 2FA failures it is
	// intentionally generic so callers cannot tell which factor failed.
	Message string `json:"error_description"`

	// Field names the violated field for validation errors.
	Field string `json:"field,omitempty"`
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes this error to an HTTP response writer.
func (e *Error) WriteError(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

var (
	// ErrInvalidCredentials is deliberately generic: it never distinguishes
	// an unknown username from a wrong password.
	ErrInvalidCredentials = &Error{
		StatusCode: http.StatusUnauthorized,
		Code:       CodeInvalidCredentials,
		Message:    "invalid credentials",
	}

	// ErrInvalidTwoFactorCode is equally generic for all 2FA failures.
	ErrInvalidTwoFactorCode = &Error{
		StatusCode: http.StatusUnauthorized,
		Code:       CodeInvalidCode,
		Message:    "invalid 2FA token",
	}

	ErrInvalidToken = &Error{
		StatusCode: http.StatusUnauthorized,
		Code:       CodeInvalidToken,
		Message:    "the access token is missing, invalid or expired",
	}

	ErrForbidden = &Error{
		StatusCode: http.StatusForbidden,
		Code:       CodeForbidden,
		Message:    "insufficient permissions for this operation",
	}

	ErrNotFound = &Error{
		StatusCode: http.StatusNotFound,
		Code:       CodeNotFound,
		Message:    "user not found",
	}

	ErrServerError = &Error{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeServerError,
		Message:    "internal server error",
	}

	ErrInvalidBody = &Error{
		StatusCode: http.StatusBadRequest,
		Code:       CodeValidationError,
		Message:    "invalid JSON body",
	}
)

// ValidationError builds a field-identified validation failure.
func ValidationError(field, message string) *Error {
	return &Error{
		StatusCode: http.StatusBadRequest,
		Code:       CodeValidationError,
		Message:    message,
		Field:      field,
	}
}

// Conflict builds a duplicate-resource failure (e.g. username taken).
func Conflict(message string) *Error {
	return &Error{
		StatusCode: http.StatusBadRequest,
		Code:       CodeConflict,
		Message:    message,
	}
}
