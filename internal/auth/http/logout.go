package http

import (
	"net/http"

	"github.com/goldenage/auth/pkg/api"
	"github.com/goldenage/auth/pkg/httpx"
)

type LogoutHandler struct{}

// ServeHTTP handles POST /v1/auth/logout
//
//	@Summary		Log out
//	@Description	Acknowledges a logout. Tokens are not tracked server-side, so the client discards its copy; the token itself stays valid until expiry.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	api.MessageResponse	"Logged out"
//	@Failure		401	{object}	api.Error			"Invalid or missing access token"
//	@Router			/v1/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, api.MessageResponse{Message: "logged out"})
}
