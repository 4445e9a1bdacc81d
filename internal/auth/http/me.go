package http

import (
	"net/http"

	"github.com/goldenage/auth/internal/auth/service"
	"github.com/goldenage/auth/pkg/api"
	"github.com/goldenage/auth/pkg/httpx"
	"github.com/goldenage/auth/pkg/slogx"
)

// MeHandler serves the caller's own profile. Because sessions are not
// revocable, a token for a deleted user still authenticates; the lookup
// failing with not found is what finally locks them out.
type MeHandler struct {
	UserService *service.UserService
}

// HandleGet handles GET /v1/auth/me
//
//	@Summary		Get own profile
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	api.UserResponse	"Profile"
//	@Failure		401	{object}	api.Error			"Invalid or missing access token"
//	@Failure		404	{object}	api.Error			"Account no longer exists"
//	@Failure		500	{object}	api.Error			"Internal server error"
//	@Router			/v1/auth/me [get].
func (h *MeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		api.ErrInvalidToken.WriteError(w)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		log.Warn("profile lookup failed", "user_id", userID, "err", err)
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, api.UserResponse{User: *toUserSummary(user)})
}

// HandlePut handles PUT /v1/auth/me
//
//	@Summary		Update own profile
//	@Description	Changes username and/or password. Password changes require the current password.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		api.UpdateProfileRequest	true	"Fields to change"
//	@Success		200		{object}	api.UserResponse			"Updated profile"
//	@Failure		400		{object}	api.Error					"Validation failure or duplicate username"
//	@Failure		401		{object}	api.Error					"Invalid token or wrong current password"
//	@Failure		404		{object}	api.Error					"Account no longer exists"
//	@Failure		500		{object}	api.Error					"Internal server error"
//	@Router			/v1/auth/me [put].
func (h *MeHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		api.ErrInvalidToken.WriteError(w)
		return
	}

	var req api.UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Username == nil && req.Password == nil {
		api.ValidationError("username", "nothing to update").WriteError(w)
		return
	}
	if req.Password != nil && req.CurrentPassword == "" {
		api.ValidationError("current_password", "current_password is required to change the password").WriteError(w)
		return
	}

	user, err := h.UserService.UpdateProfile(ctx, userID, req.Username, req.Password, req.CurrentPassword)
	if err != nil {
		log.Warn("profile update failed", "user_id", userID, "err", err)
		writeServiceError(w, err)
		return
	}

	log.Info("profile updated", "user_id", userID)
	httpx.WriteJSON(w, http.StatusOK, api.UserResponse{User: *toUserSummary(user)})
}
