package http

import (
	"errors"
	"net/http"

	"github.com/goldenage/auth/internal/auth/service"
	"github.com/goldenage/auth/internal/auth/store"
	"github.com/goldenage/auth/pkg/api"
	"github.com/goldenage/auth/pkg/httpx"
	"github.com/goldenage/auth/pkg/slogx"
)

type VerifyLoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /v1/auth/verify-2fa
//
//	@Summary		Complete a 2FA login challenge
//	@Description	Verifies a TOTP code for a challenged login and issues the session token. A caller-supplied secret is accepted only when the account has none stored.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		api.VerifyLoginRequest	true	"Challenge response"
//	@Success		200		{object}	api.VerifyLoginResponse	"Session token"
//	@Failure		400		{object}	api.Error				"Validation failure"
//	@Failure		401		{object}	api.Error				"Invalid 2FA token"
//	@Failure		404		{object}	api.Error				"Unknown user"
//	@Failure		429		{object}	api.Error				"Rate limit exceeded"
//	@Failure		500		{object}	api.Error				"Internal server error"
//	@Router			/v1/auth/verify-2fa [post].
func (h *VerifyLoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req api.VerifyLoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.AuthService.VerifyLoginChallenge(ctx, req.UserID, req.Code, req.Secret)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTwoFactorCode):
			log.Warn("2FA challenge rejected", "user_id", req.UserID)
		case errors.Is(err, store.ErrNotFound):
			log.Warn("2FA challenge for unknown user", "user_id", req.UserID)
		default:
			log.Error("2FA challenge failed", "err", err)
		}
		writeServiceError(w, err)
		return
	}

	log.Info("2FA challenge passed", "user_id", result.User.ID)
	httpx.WriteJSON(w, http.StatusOK, api.VerifyLoginResponse{
		Token: result.Token,
		User:  toUserSummary(result.User),
	})
}

type VerifySetupHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /v1/auth/verify-2fa-setup
//
//	@Summary		Confirm 2FA enrollment after registration
//	@Description	Verifies the first TOTP code using the setup token from registration, enables 2FA, and signs the user in.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		api.VerifySetupRequest	true	"Setup token and first code"
//	@Success		200		{object}	api.VerifyLoginResponse	"Session token"
//	@Failure		400		{object}	api.Error				"Validation failure"
//	@Failure		401		{object}	api.Error				"Invalid setup token or code"
//	@Failure		429		{object}	api.Error				"Rate limit exceeded"
//	@Failure		500		{object}	api.Error				"Internal server error"
//	@Router			/v1/auth/verify-2fa-setup [post].
func (h *VerifySetupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req api.VerifySetupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.AuthService.CompleteSetup(ctx, req.SetupToken, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSetupToken),
			errors.Is(err, service.ErrInvalidTwoFactorCode):
			log.Warn("2FA setup rejected")
		default:
			log.Error("2FA setup failed", "err", err)
		}
		writeServiceError(w, err)
		return
	}

	log.Info("2FA setup completed", "user_id", result.User.ID)
	httpx.WriteJSON(w, http.StatusOK, api.VerifyLoginResponse{
		Token: result.Token,
		User:  toUserSummary(result.User),
	})
}
