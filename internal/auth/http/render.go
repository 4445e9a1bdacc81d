package http

import (
	"errors"
	"net/http"

	"github.com/goldenage/auth/internal/auth/domain"
	"github.com/goldenage/auth/internal/auth/service"
	"github.com/goldenage/auth/internal/auth/store"
	"github.com/goldenage/auth/pkg/api"
)

func toUserSummary(u domain.User) *api.UserSummary {
	return &api.UserSummary{
		ID:               u.ID,
		Username:         u.Username,
		Role:             string(u.Role),
		TwoFactorEnabled: u.TwoFactorEnabled,
		LastLogin:        u.LastLogin,
		CreatedAt:        u.CreatedAt,
	}
}

// writeServiceError maps service and store failures onto the wire error
// vocabulary. Anything unrecognized becomes a plain 500 with no detail.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		api.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrInvalidTwoFactorCode),
		errors.Is(err, service.ErrInvalidSetupToken):
		api.ErrInvalidTwoFactorCode.WriteError(w)
	case errors.Is(err, service.ErrUsernameTaken):
		api.Conflict("username already taken").WriteError(w)
	case errors.Is(err, service.ErrNotEnrolled):
		api.ValidationError("code", "two-factor enrollment not started").WriteError(w)
	case errors.Is(err, service.ErrTwoFactorEnabled):
		api.ValidationError("code", "two-factor authentication already enabled").WriteError(w)
	case errors.Is(err, service.ErrSelfDelete):
		api.ValidationError("id", "cannot delete your own account").WriteError(w)
	case errors.Is(err, store.ErrNotFound):
		api.ErrNotFound.WriteError(w)
	default:
		api.ErrServerError.WriteError(w)
	}
}
