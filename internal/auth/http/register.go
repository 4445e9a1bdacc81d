package http

import (
	"net/http"

	"github.com/goldenage/auth/internal/auth/service"
	"github.com/goldenage/auth/pkg/api"
	"github.com/goldenage/auth/pkg/httpx"
	"github.com/goldenage/auth/pkg/slogx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /v1/auth/register
//
//	@Summary		Register a new account
//	@Description	Creates a user with the default role and returns TOTP enrollment material plus a short-lived setup token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		api.RegisterRequest		true	"New account credentials"
//	@Success		201		{object}	api.RegisterResponse	"Account created, 2FA enrollment pending"
//	@Failure		400		{object}	api.Error				"Validation failure or duplicate username"
//	@Failure		429		{object}	api.Error				"Rate limit exceeded"
//	@Failure		500		{object}	api.Error				"Internal server error"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req api.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reg, err := h.AuthService.Register(ctx, req.Username, req.Password)
	if err != nil {
		if err != service.ErrUsernameTaken {
			log.Error("registration failed", "err", err)
		}
		writeServiceError(w, err)
		return
	}

	log.Info("user registered", "user_id", reg.User.ID)

	httpx.WriteJSON(w, http.StatusCreated, api.RegisterResponse{
		UserID:     reg.User.ID,
		Secret:     reg.Enrollment.Secret,
		OtpauthURL: reg.Enrollment.OtpauthURL,
		QRCodeURL:  qrCodeURL(reg.Enrollment.OtpauthURL),
		SetupToken: reg.SetupToken,
	})
}
