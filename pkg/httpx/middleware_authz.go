package httpx

import (
	"net/http"

	"github.com/goldenage/auth/pkg/api"
)

// RequireRole rejects with 403 when the authenticated role does not match.
// It assumes AuthnMiddleware already ran; an absent role also fails, so
// ordering mistakes fail closed.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RoleFromCtx(r.Context()) != role {
				api.ErrForbidden.WriteError(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
