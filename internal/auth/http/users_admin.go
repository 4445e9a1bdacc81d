package http

import (
	"net/http"
	"strconv"

	"github.com/goldenage/auth/internal/auth/domain"
	"github.com/goldenage/auth/internal/auth/service"
	"github.com/goldenage/auth/pkg/api"
	"github.com/goldenage/auth/pkg/httpx"
	"github.com/goldenage/auth/pkg/slogx"
)

// AdminUsersHandler covers the admin-only user management endpoints.
type AdminUsersHandler struct {
	AdminService *service.AdminService
}

// HandleList handles GET /v1/auth/users
//
//	@Summary		List users
//	@Description	Pages through users, newest first, with optional username search and role filter.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int		false	"Page number (1-based)"
//	@Param			limit	query		int		false	"Page size (max 100)"
//	@Param			search	query		string	false	"Username substring"
//	@Param			role	query		string	false	"Role filter (user or admin)"
//	@Success		200		{object}	api.ListUsersResponse	"One page of users"
//	@Failure		401		{object}	api.Error				"Invalid or missing access token"
//	@Failure		403		{object}	api.Error				"Caller is not an admin"
//	@Failure		500		{object}	api.Error				"Internal server error"
//	@Router			/v1/auth/users [get].
func (h *AdminUsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	role := domain.Role(q.Get("role"))
	if role != "" && !role.Valid() {
		api.ValidationError("role", "role must be one of: user admin").WriteError(w)
		return
	}

	result, err := h.AdminService.ListUsers(ctx, domain.UserFilter{
		Search: q.Get("search"),
		Role:   role,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		log.Error("user listing failed", "err", err)
		writeServiceError(w, err)
		return
	}

	users := make([]api.UserSummary, 0, len(result.Users))
	for _, u := range result.Users {
		users = append(users, *toUserSummary(u))
	}

	// Page math uses the clamped values the query actually ran with.
	totalPages := int((result.Total + int64(result.Limit) - 1) / int64(result.Limit))

	httpx.WriteJSON(w, http.StatusOK, api.ListUsersResponse{
		Users:       users,
		Total:       result.Total,
		TotalPages:  totalPages,
		CurrentPage: result.Page,
	})
}

// HandleCreate handles POST /v1/auth/users
//
//	@Summary		Create a user
//	@Description	Provisions an account with an explicit role. No TOTP secret is generated.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		api.CreateUserRequest	true	"New account"
//	@Success		201		{object}	api.UserResponse		"Created user"
//	@Failure		400		{object}	api.Error				"Validation failure or duplicate username"
//	@Failure		401		{object}	api.Error				"Invalid or missing access token"
//	@Failure		403		{object}	api.Error				"Caller is not an admin"
//	@Failure		500		{object}	api.Error				"Internal server error"
//	@Router			/v1/auth/users [post].
func (h *AdminUsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req api.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.AdminService.CreateUser(ctx, req.Username, req.Password, domain.Role(req.Role))
	if err != nil {
		if err != service.ErrUsernameTaken {
			log.Error("user creation failed", "err", err)
		}
		writeServiceError(w, err)
		return
	}

	log.Info("user created by admin", "user_id", user.ID, "admin_id", httpx.UserIDFromCtx(ctx))
	httpx.WriteJSON(w, http.StatusCreated, api.UserResponse{User: *toUserSummary(user)})
}

// HandleGet handles GET /v1/auth/users/{id}
//
//	@Summary		Get a user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string				true	"User id"
//	@Success		200	{object}	api.UserResponse	"User"
//	@Failure		401	{object}	api.Error			"Invalid or missing access token"
//	@Failure		403	{object}	api.Error			"Caller is not an admin"
//	@Failure		404	{object}	api.Error			"Unknown user"
//	@Failure		500	{object}	api.Error			"Internal server error"
//	@Router			/v1/auth/users/{id} [get].
func (h *AdminUsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, err := h.AdminService.GetUser(ctx, r.PathValue("id"))
	if err != nil {
		log.Warn("user lookup failed", "user_id", r.PathValue("id"), "err", err)
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, api.UserResponse{User: *toUserSummary(user)})
}

// HandleUpdate handles PUT /v1/auth/users/{id}
//
//	@Summary		Update a user
//	@Description	Changes username and/or role. Omitted fields are untouched.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"User id"
//	@Param			request	body		api.UpdateUserRequest	true	"Fields to change"
//	@Success		200		{object}	api.UserResponse		"Updated user"
//	@Failure		400		{object}	api.Error				"Validation failure or duplicate username"
//	@Failure		401		{object}	api.Error				"Invalid or missing access token"
//	@Failure		403		{object}	api.Error				"Caller is not an admin"
//	@Failure		404		{object}	api.Error				"Unknown user"
//	@Failure		500		{object}	api.Error				"Internal server error"
//	@Router			/v1/auth/users/{id} [put].
func (h *AdminUsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req api.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var role *domain.Role
	if req.Role != nil {
		v := domain.Role(*req.Role)
		role = &v
	}

	user, err := h.AdminService.UpdateUser(ctx, r.PathValue("id"), req.Username, role)
	if err != nil {
		log.Warn("user update failed", "user_id", r.PathValue("id"), "err", err)
		writeServiceError(w, err)
		return
	}

	log.Info("user updated by admin", "user_id", user.ID, "admin_id", httpx.UserIDFromCtx(ctx))
	httpx.WriteJSON(w, http.StatusOK, api.UserResponse{User: *toUserSummary(user)})
}

// HandleDelete handles DELETE /v1/auth/users/{id}
//
//	@Summary		Delete a user
//	@Description	Removes the account. Admins cannot delete themselves. Outstanding tokens are not revoked; they fail lookups afterwards.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string				true	"User id"
//	@Success		200	{object}	api.MessageResponse	"Deleted"
//	@Failure		400	{object}	api.Error			"Self-deletion attempt"
//	@Failure		401	{object}	api.Error			"Invalid or missing access token"
//	@Failure		403	{object}	api.Error			"Caller is not an admin"
//	@Failure		404	{object}	api.Error			"Unknown user"
//	@Failure		500	{object}	api.Error			"Internal server error"
//	@Router			/v1/auth/users/{id} [delete].
func (h *AdminUsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromCtx(ctx)
	targetID := r.PathValue("id")

	if err := h.AdminService.DeleteUser(ctx, actorID, targetID); err != nil {
		log.Warn("user deletion failed", "user_id", targetID, "admin_id", actorID, "err", err)
		writeServiceError(w, err)
		return
	}

	log.Info("user deleted by admin", "user_id", targetID, "admin_id", actorID)
	httpx.WriteJSON(w, http.StatusOK, api.MessageResponse{Message: "user deleted"})
}

// HandleResetPassword handles POST /v1/auth/users/{id}/reset-password
//
//	@Summary		Reset a user's password
//	@Description	Force-sets a new password without the old one. The user's sessions stay valid until expiry.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User id"
//	@Param			request	body		api.ResetPasswordRequest	true	"New password"
//	@Success		200		{object}	api.MessageResponse			"Password reset"
//	@Failure		400		{object}	api.Error					"Validation failure"
//	@Failure		401		{object}	api.Error					"Invalid or missing access token"
//	@Failure		403		{object}	api.Error					"Caller is not an admin"
//	@Failure		404		{object}	api.Error					"Unknown user"
//	@Failure		500		{object}	api.Error					"Internal server error"
//	@Router			/v1/auth/users/{id}/reset-password [post].
func (h *AdminUsersHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req api.ResetPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	targetID := r.PathValue("id")
	if err := h.AdminService.ResetPassword(ctx, targetID, req.NewPassword); err != nil {
		log.Warn("password reset failed", "user_id", targetID, "err", err)
		writeServiceError(w, err)
		return
	}

	log.Info("password reset by admin", "user_id", targetID, "admin_id", httpx.UserIDFromCtx(ctx))
	httpx.WriteJSON(w, http.StatusOK, api.MessageResponse{Message: "password reset"})
}
