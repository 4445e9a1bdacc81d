package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/goldenage/auth/pkg/api"
	"github.com/goldenage/auth/pkg/jwtx"
	"github.com/goldenage/auth/pkg/slogx"
)

// AuthnMiddleware is the request gate: it validates the bearer session token
// on protected operations and injects {userId, role} into the request context
// before any handler runs. Setup tokens are rejected here; they can never
// authenticate a request.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				api.ErrInvalidToken.WriteError(w)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.VerifySession(raw)
			if err != nil {
				// Expired vs forged matters for the logs only; the
				// caller sees one generic 401 either way.
				if errors.Is(err, jwtx.ErrExpired) {
					log.Info("session token expired")
				} else {
					log.Warn("session token rejected", "err", err)
				}
				api.ErrInvalidToken.WriteError(w)
				return
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyRole, c.Role)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}
