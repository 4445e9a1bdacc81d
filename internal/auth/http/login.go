package http

import (
	"net/http"

	"github.com/goldenage/auth/internal/auth/service"
	"github.com/goldenage/auth/pkg/api"
	"github.com/goldenage/auth/pkg/httpx"
	"github.com/goldenage/auth/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /v1/auth/login
//
//	@Summary		Log in with username and password
//	@Description	Issues a session token, or a 2FA challenge when the account has a TOTP secret stored.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		api.LoginRequest	true	"Credentials"
//	@Success		200		{object}	api.LoginResponse	"Session token or 2FA challenge"
//	@Failure		400		{object}	api.Error			"Validation failure"
//	@Failure		401		{object}	api.Error			"Invalid credentials"
//	@Failure		429		{object}	api.Error			"Rate limit exceeded"
//	@Failure		500		{object}	api.Error			"Internal server error"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req api.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			log.Warn("login rejected", "username", req.Username)
		} else {
			log.Error("login failed", "err", err)
		}
		writeServiceError(w, err)
		return
	}

	if result.Need2FA {
		log.Info("login challenged", "user_id", result.User.ID)
		httpx.WriteJSON(w, http.StatusOK, api.LoginResponse{
			Need2FA: true,
			UserID:  result.User.ID,
		})
		return
	}

	log.Info("login succeeded", "user_id", result.User.ID)
	httpx.WriteJSON(w, http.StatusOK, api.LoginResponse{
		Token: result.Token,
		User:  toUserSummary(result.User),
	})
}
