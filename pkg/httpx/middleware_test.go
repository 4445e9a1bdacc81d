package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goldenage/auth/pkg/httpx"
	"github.com/goldenage/auth/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newIssuer() *jwtx.Issuer {
	return &jwtx.Issuer{
		Secret:      []byte("0123456789abcdef0123456789abcdef"),
		TokenIssuer: "goldenage-test",
	}
}

func echoIdentity() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-User-ID", httpx.UserIDFromCtx(r.Context()))
		w.Header().Set("X-Role", httpx.RoleFromCtx(r.Context()))
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthnMiddleware(t *testing.T) {
	iss := newIssuer()
	gate := httpx.AuthnMiddleware(iss)(echoIdentity())

	t.Run("valid session token attaches identity", func(t *testing.T) {
		token, err := iss.IssueSession("user-1", "alice", "admin")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		gate.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user-1", rec.Header().Get("X-User-ID"))
		require.Equal(t, "admin", rec.Header().Get("X-Role"))
	})

	t.Run("missing header rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-bearer header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic YWxpY2U6cHc=")
		rec := httptest.NewRecorder()
		gate.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()
		gate.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid_token")
	})

	t.Run("expired token rejected", func(t *testing.T) {
		past := &jwtx.Issuer{
			Secret:      iss.Secret,
			TokenIssuer: iss.TokenIssuer,
			Now:         func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) },
		}
		token, err := past.IssueSession("user-1", "alice", "user")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		gate.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("setup token rejected at the gate", func(t *testing.T) {
		setup, err := iss.IssueSetup("user-1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+setup)
		rec := httptest.NewRecorder()
		gate.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	iss := newIssuer()
	gated := httpx.Chain(echoIdentity(),
		httpx.AuthnMiddleware(iss),
		httpx.RequireRole("admin"),
	)

	t.Run("matching role passes", func(t *testing.T) {
		token, err := iss.IssueSession("admin-1", "root", "admin")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		gated.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other role forbidden", func(t *testing.T) {
		token, err := iss.IssueSession("user-1", "alice", "user")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		gated.ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Contains(t, rec.Body.String(), "forbidden")
	})

	t.Run("no identity forbidden", func(t *testing.T) {
		bare := httpx.RequireRole("admin")(echoIdentity())
		rec := httptest.NewRecorder()
		bare.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}
