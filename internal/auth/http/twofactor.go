package http

import (
	"errors"
	"net/http"

	"github.com/goldenage/auth/internal/auth/service"
	"github.com/goldenage/auth/pkg/api"
	"github.com/goldenage/auth/pkg/httpx"
	"github.com/goldenage/auth/pkg/slogx"
)

// TwoFactorHandler covers self-service 2FA management for an authenticated
// session.
type TwoFactorHandler struct {
	TwoFactorService *service.TwoFactorService
}

// HandleGenerate handles POST /v1/auth/2fa/generate
//
//	@Summary		Start 2FA enrollment
//	@Description	Generates a fresh TOTP secret for the caller, replacing any previous one. The secret stays unverified until a code is confirmed.
//	@Tags			TwoFactor
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	api.TwoFactorGenerateResponse	"Enrollment material"
//	@Failure		401	{object}	api.Error						"Invalid or missing access token"
//	@Failure		404	{object}	api.Error						"Account no longer exists"
//	@Failure		500	{object}	api.Error						"Internal server error"
//	@Router			/v1/auth/2fa/generate [post].
func (h *TwoFactorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		api.ErrInvalidToken.WriteError(w)
		return
	}

	enr, err := h.TwoFactorService.Generate(ctx, userID)
	if err != nil {
		log.Error("2FA generate failed", "user_id", userID, "err", err)
		writeServiceError(w, err)
		return
	}

	log.Info("2FA enrollment started", "user_id", userID)
	httpx.WriteJSON(w, http.StatusOK, api.TwoFactorGenerateResponse{
		Secret:     enr.Secret,
		OtpauthURL: enr.OtpauthURL,
		QRCodeURL:  qrCodeURL(enr.OtpauthURL),
	})
}

// HandleVerify handles POST /v1/auth/2fa/verify
//
//	@Summary		Verify a 2FA enrollment code
//	@Description	Checks the first TOTP code against the pending secret and turns two-factor on.
//	@Tags			TwoFactor
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		api.TwoFactorVerifyRequest	true	"TOTP code"
//	@Success		200		{object}	api.MessageResponse			"Two-factor enabled"
//	@Failure		400		{object}	api.Error					"Validation failure or no pending enrollment"
//	@Failure		401		{object}	api.Error					"Invalid token or wrong code"
//	@Failure		429		{object}	api.Error					"Rate limit exceeded"
//	@Failure		500		{object}	api.Error					"Internal server error"
//	@Router			/v1/auth/2fa/verify [post].
func (h *TwoFactorHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		api.ErrInvalidToken.WriteError(w)
		return
	}

	var req api.TwoFactorVerifyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.TwoFactorService.Verify(ctx, userID, req.Code); err != nil {
		if errors.Is(err, service.ErrInvalidTwoFactorCode) {
			log.Warn("2FA verify rejected", "user_id", userID)
		} else {
			log.Error("2FA verify failed", "user_id", userID, "err", err)
		}
		writeServiceError(w, err)
		return
	}

	log.Info("2FA enabled", "user_id", userID)
	httpx.WriteJSON(w, http.StatusOK, api.MessageResponse{Message: "two-factor authentication enabled"})
}

// HandleDisable handles POST /v1/auth/2fa/disable
//
//	@Summary		Disable 2FA
//	@Description	Turns two-factor off and discards the secret. Holding a valid session is the only requirement.
//	@Tags			TwoFactor
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	api.MessageResponse	"Two-factor disabled"
//	@Failure		401	{object}	api.Error			"Invalid or missing access token"
//	@Failure		404	{object}	api.Error			"Account no longer exists"
//	@Failure		500	{object}	api.Error			"Internal server error"
//	@Router			/v1/auth/2fa/disable [post].
func (h *TwoFactorHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		api.ErrInvalidToken.WriteError(w)
		return
	}

	if err := h.TwoFactorService.Disable(ctx, userID); err != nil {
		log.Error("2FA disable failed", "user_id", userID, "err", err)
		writeServiceError(w, err)
		return
	}

	log.Info("2FA disabled", "user_id", userID)
	httpx.WriteJSON(w, http.StatusOK, api.MessageResponse{Message: "two-factor authentication disabled"})
}

// HandleCancel handles POST /v1/auth/2fa/cancel
//
//	@Summary		Cancel a pending 2FA enrollment
//	@Description	Drops an unverified secret. Verified enrollments must be disabled instead.
//	@Tags			TwoFactor
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	api.MessageResponse	"Enrollment cancelled"
//	@Failure		400	{object}	api.Error			"Two-factor already enabled"
//	@Failure		401	{object}	api.Error			"Invalid or missing access token"
//	@Failure		404	{object}	api.Error			"Account no longer exists"
//	@Failure		500	{object}	api.Error			"Internal server error"
//	@Router			/v1/auth/2fa/cancel [post].
func (h *TwoFactorHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		api.ErrInvalidToken.WriteError(w)
		return
	}

	if err := h.TwoFactorService.Cancel(ctx, userID); err != nil {
		log.Warn("2FA cancel failed", "user_id", userID, "err", err)
		writeServiceError(w, err)
		return
	}

	log.Info("2FA enrollment cancelled", "user_id", userID)
	httpx.WriteJSON(w, http.StatusOK, api.MessageResponse{Message: "two-factor enrollment cancelled"})
}
