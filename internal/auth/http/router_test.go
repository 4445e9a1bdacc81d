package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goldenage/auth/internal/auth/domain"
	"github.com/goldenage/auth/internal/auth/service"
	"github.com/goldenage/auth/internal/auth/store/drivers/sqlite"
	"github.com/goldenage/auth/pkg/api"
	"github.com/goldenage/auth/pkg/jwtx"
	"github.com/goldenage/auth/pkg/slogx"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router *Router
	issuer *jwtx.Issuer
	store  *sqlite.Store
	admin  *service.AdminService
	now    time.Time

	// each test gets a unique forwarded IP so the per-IP rate limiter
	// never couples unrelated tests
	clientIP string
}

var testIPCounter int

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	now := time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)
	issuer := &jwtx.Issuer{
		Secret:      []byte("test-signing-secret"),
		TokenIssuer: "authtest",
	}

	logger := slogx.New(slogx.Config{Service: "auth", Env: "test", Level: "error"})
	router := NewRouter(issuer, "test", st, logger)
	router.AuthService = &service.AuthService{
		Store:      st,
		Issuer:     issuer,
		TOTPIssuer: "authtest",
		Now:        func() time.Time { return now },
	}
	router.UserService = &service.UserService{Store: st}
	router.TwoFactorService = &service.TwoFactorService{
		Store:  st,
		Issuer: "authtest",
		Now:    func() time.Time { return now },
	}
	router.AdminService = &service.AdminService{Store: st}
	router.ApplyRoutes()

	testIPCounter++
	return &testEnv{
		router:   router,
		issuer:   issuer,
		store:    st,
		admin:    router.AdminService,
		now:      now,
		clientIP: fmt.Sprintf("198.51.100.%d", testIPCounter%250+1),
	}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("X-Forwarded-For", e.clientIP)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func (e *testEnv) totpCode(t *testing.T, secret string) string {
	t.Helper()
	code, err := totp.GenerateCodeCustom(secret, e.now, totp.ValidateOpts{
		Period:    30,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	require.NoError(t, err)
	return code
}

// adminToken provisions an admin account and returns a session for it.
func (e *testEnv) adminToken(t *testing.T) (string, domain.User) {
	t.Helper()
	admin, err := e.admin.CreateUser(context.Background(), "root", "root-password", domain.RoleAdmin)
	require.NoError(t, err)
	token, err := e.issuer.IssueSession(admin.ID, admin.Username, string(admin.Role))
	require.NoError(t, err)
	return token, admin
}

func TestRegisterLoginFlow(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/auth/register", "", api.RegisterRequest{
		Username: "alice", Password: "hunter22",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	reg := decodeBody[api.RegisterResponse](t, rec)
	require.NotEmpty(t, reg.UserID)
	require.NotEmpty(t, reg.Secret)
	require.Contains(t, reg.QRCodeURL, "api.qrserver.com")
	require.NotEmpty(t, reg.SetupToken)

	// A fresh registration is immediately challenged on login because the
	// unverified secret is already stored.
	rec = env.do(t, http.MethodPost, "/v1/auth/login", "", api.LoginRequest{
		Username: "alice", Password: "hunter22",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	login := decodeBody[api.LoginResponse](t, rec)
	require.True(t, login.Need2FA)
	require.Equal(t, reg.UserID, login.UserID)
	require.Empty(t, login.Token)

	rec = env.do(t, http.MethodPost, "/v1/auth/verify-2fa", "", api.VerifyLoginRequest{
		UserID: reg.UserID, Code: env.totpCode(t, reg.Secret),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	verified := decodeBody[api.VerifyLoginResponse](t, rec)
	require.NotEmpty(t, verified.Token)
	// Passing the login challenge does not confirm the enrollment.
	require.False(t, verified.User.TwoFactorEnabled)

	rec = env.do(t, http.MethodGet, "/v1/auth/me", verified.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decodeBody[api.UserResponse](t, rec)
	require.Equal(t, "alice", me.User.Username)
	require.NotNil(t, me.User.LastLogin)
}

func TestVerifySetupFlow(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/auth/register", "", api.RegisterRequest{
		Username: "bob", Password: "hunter22",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	reg := decodeBody[api.RegisterResponse](t, rec)

	rec = env.do(t, http.MethodPost, "/v1/auth/verify-2fa-setup", "", api.VerifySetupRequest{
		SetupToken: reg.SetupToken, Code: env.totpCode(t, reg.Secret),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	verified := decodeBody[api.VerifyLoginResponse](t, rec)
	require.NotEmpty(t, verified.Token)

	// The setup token is not a session token.
	rec = env.do(t, http.MethodGet, "/v1/auth/me", reg.SetupToken, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestValidationAndCredentialErrors(t *testing.T) {
	env := newTestEnv(t)

	t.Run("short username", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/auth/register", "", api.RegisterRequest{
			Username: "ab", Password: "hunter22",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody[api.Error](t, rec)
		require.Equal(t, api.CodeValidationError, body.Code)
		require.Equal(t, "username", body.Field)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/auth/register", "", api.RegisterRequest{
			Username: "carol", Password: "hunter22",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = env.do(t, http.MethodPost, "/v1/auth/register", "", api.RegisterRequest{
			Username: "carol", Password: "other-password",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, api.CodeConflict, decodeBody[api.Error](t, rec).Code)
	})

	t.Run("bad credentials are generic", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/auth/login", "", api.LoginRequest{
			Username: "nobody", Password: "whatever",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeBody[api.Error](t, rec)
		require.Equal(t, api.CodeInvalidCredentials, body.Code)
		require.Equal(t, "invalid credentials", body.Message)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString("{"))
		req.Header.Set("X-Forwarded-For", env.clientIP)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRequestGate(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing token", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/v1/auth/me", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, api.CodeInvalidToken, decodeBody[api.Error](t, rec).Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/v1/auth/me", "not-a-jwt", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-admin is forbidden from admin routes", func(t *testing.T) {
		user, err := env.admin.CreateUser(context.Background(), "dave", "hunter22", domain.RoleUser)
		require.NoError(t, err)
		token, err := env.issuer.IssueSession(user.ID, user.Username, string(user.Role))
		require.NoError(t, err)

		rec := env.do(t, http.MethodGet, "/v1/auth/users", token, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, api.CodeForbidden, decodeBody[api.Error](t, rec).Code)
	})

	t.Run("deleted user keeps a live token but loses access", func(t *testing.T) {
		adminToken, _ := env.adminToken(t)

		victim, err := env.admin.CreateUser(context.Background(), "erin", "hunter22", domain.RoleUser)
		require.NoError(t, err)
		victimToken, err := env.issuer.IssueSession(victim.ID, victim.Username, string(victim.Role))
		require.NoError(t, err)

		rec := env.do(t, http.MethodDelete, "/v1/auth/users/"+victim.ID, adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		// The token still verifies, so the gate passes; the lookup 404s.
		rec = env.do(t, http.MethodGet, "/v1/auth/me", victimToken, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAdminEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token, admin := env.adminToken(t)

	rec := env.do(t, http.MethodPost, "/v1/auth/users", token, api.CreateUserRequest{
		Username: "frank", Password: "hunter22", Role: "user",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[api.UserResponse](t, rec)

	rec = env.do(t, http.MethodGet, "/v1/auth/users?limit=10&page=1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[api.ListUsersResponse](t, rec)
	require.EqualValues(t, 2, list.Total)
	require.Equal(t, 1, list.TotalPages)
	require.Equal(t, 1, list.CurrentPage)

	// An oversized limit is clamped server-side; the page math reflects the
	// clamped value, not the requested one. Enough accounts to overflow the
	// 100-row cap makes the difference observable.
	for i := range 110 {
		_, err := env.admin.CreateUser(context.Background(), fmt.Sprintf("bulk%03d", i), "hunter22", domain.RoleUser)
		require.NoError(t, err)
	}
	rec = env.do(t, http.MethodGet, "/v1/auth/users?limit=500", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	clamped := decodeBody[api.ListUsersResponse](t, rec)
	require.EqualValues(t, 112, clamped.Total)
	require.Len(t, clamped.Users, 100)
	require.Equal(t, 2, clamped.TotalPages)
	require.Equal(t, 1, clamped.CurrentPage)

	newName := "franklin"
	newRole := "admin"
	rec = env.do(t, http.MethodPut, "/v1/auth/users/"+created.User.ID, token, api.UpdateUserRequest{
		Username: &newName, Role: &newRole,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[api.UserResponse](t, rec)
	require.Equal(t, "franklin", updated.User.Username)
	require.Equal(t, "admin", updated.User.Role)

	rec = env.do(t, http.MethodPost, "/v1/auth/users/"+created.User.ID+"/reset-password", token, api.ResetPasswordRequest{
		NewPassword: "brand-new-password",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/v1/auth/login", "", api.LoginRequest{
		Username: "franklin", Password: "brand-new-password",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodDelete, "/v1/auth/users/"+admin.ID, token, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/v1/auth/users/no-such-id", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTwoFactorEndpoints(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.admin.CreateUser(context.Background(), "grace", "hunter22", domain.RoleUser)
	require.NoError(t, err)
	token, err := env.issuer.IssueSession(user.ID, user.Username, string(user.Role))
	require.NoError(t, err)

	rec := env.do(t, http.MethodPost, "/v1/auth/2fa/generate", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	gen := decodeBody[api.TwoFactorGenerateResponse](t, rec)
	require.NotEmpty(t, gen.Secret)
	require.Contains(t, gen.QRCodeURL, "api.qrserver.com")

	rec = env.do(t, http.MethodPost, "/v1/auth/2fa/verify", token, api.TwoFactorVerifyRequest{
		Code: env.totpCode(t, gen.Secret),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/v1/auth/me", token, nil)
	require.True(t, decodeBody[api.UserResponse](t, rec).User.TwoFactorEnabled)

	// Cancelling a verified enrollment is refused; disabling works and
	// needs no code.
	rec = env.do(t, http.MethodPost, "/v1/auth/2fa/cancel", token, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/v1/auth/2fa/disable", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/v1/auth/me", token, nil)
	require.False(t, decodeBody[api.UserResponse](t, rec).User.TwoFactorEnabled)
}

func TestProfileUpdate(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.admin.CreateUser(context.Background(), "heidi", "hunter22", domain.RoleUser)
	require.NoError(t, err)
	token, err := env.issuer.IssueSession(user.ID, user.Username, string(user.Role))
	require.NoError(t, err)

	newPw := "fresh-password"
	rec := env.do(t, http.MethodPut, "/v1/auth/me", token, api.UpdateProfileRequest{
		Password: &newPw,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "current_password", decodeBody[api.Error](t, rec).Field)

	rec = env.do(t, http.MethodPut, "/v1/auth/me", token, api.UpdateProfileRequest{
		Password: &newPw, CurrentPassword: "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPut, "/v1/auth/me", token, api.UpdateProfileRequest{
		Password: &newPw, CurrentPassword: "hunter22",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/v1/auth/login", "", api.LoginRequest{
		Username: "heidi", Password: newPw,
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginRateLimit(t *testing.T) {
	env := newTestEnv(t)

	var last int
	for range 10 {
		rec := env.do(t, http.MethodPost, "/v1/auth/login", "", api.LoginRequest{
			Username: "nobody", Password: "wrong",
		})
		last = rec.Code
		if last == http.StatusTooManyRequests {
			break
		}
	}
	require.Equal(t, http.StatusTooManyRequests, last)
}

func TestLogoutAndHealth(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.adminToken(t)

	rec := env.do(t, http.MethodPost, "/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "logged out", decodeBody[api.MessageResponse](t, rec).Message)

	// Logout does not revoke anything.
	rec = env.do(t, http.MethodGet, "/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decodeBody[api.HealthResponse](t, rec).Status)

	rec = env.do(t, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decodeBody[api.HealthResponse](t, rec)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Signer)
}
