package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/goldenage/auth/internal/auth/service"
	"github.com/goldenage/auth/internal/auth/store"
	"github.com/goldenage/auth/pkg/httpx"
	"github.com/goldenage/auth/pkg/jwtx"
	"github.com/goldenage/auth/pkg/slogx"

	_ "github.com/goldenage/auth/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	issuer       *jwtx.Issuer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	AuthService      *service.AuthService
	UserService      *service.UserService
	TwoFactorService *service.TwoFactorService
	AdminService     *service.AdminService
}

func NewRouter(
	issuer *jwtx.Issuer,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		issuer:       issuer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProfile()
	r.registerTwoFactor()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Auth Service API
//	@version		0.1.0
//	@description	Authentication service with username/password login, TOTP-based two-factor authentication, and admin user management.
//	@description
//	@description	Session tokens are HS256 JWTs. There is no server-side revocation: a token stays valid until expiry.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /register - strict rate limit by IP (public signup endpoint)
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP (credential guessing)
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /verify-2fa - strict rate limit by IP (code guessing)
	verifyHandler := &VerifyLoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/verify-2fa",
		httpx.Chain(verifyHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /verify-2fa-setup - strict rate limit by IP (code guessing)
	setupHandler := &VerifySetupHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/verify-2fa-setup",
		httpx.Chain(setupHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /logout - requires a session, lenient limit
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(&LogoutHandler{},
			httpx.AuthnMiddleware(r.issuer),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerProfile() {
	h := &MeHandler{UserService: r.UserService}

	r.Mux.Handle("GET /v1/auth/me",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.issuer),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("PUT /v1/auth/me",
		httpx.Chain(http.HandlerFunc(h.HandlePut),
			httpx.AuthnMiddleware(r.issuer),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerTwoFactor() {
	h := &TwoFactorHandler{TwoFactorService: r.TwoFactorService}

	r.Mux.Handle("POST /v1/auth/2fa/generate",
		httpx.Chain(http.HandlerFunc(h.HandleGenerate),
			httpx.AuthnMiddleware(r.issuer),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// Code verification gets the strict profile: wrong guesses are cheap
	// for an attacker holding a stolen session.
	r.Mux.Handle("POST /v1/auth/2fa/verify",
		httpx.Chain(http.HandlerFunc(h.HandleVerify),
			httpx.AuthnMiddleware(r.issuer),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /v1/auth/2fa/disable",
		httpx.Chain(http.HandlerFunc(h.HandleDisable),
			httpx.AuthnMiddleware(r.issuer),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /v1/auth/2fa/cancel",
		httpx.Chain(http.HandlerFunc(h.HandleCancel),
			httpx.AuthnMiddleware(r.issuer),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	h := &AdminUsersHandler{AdminService: r.AdminService}

	adminChain := func(next http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.issuer),
			httpx.RequireRole("admin"),
			httpx.RateLimitByUser(limit),
		)
	}

	r.Mux.Handle("GET /v1/auth/users", adminChain(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/auth/users", adminChain(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/auth/users/{id}", adminChain(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/auth/users/{id}", adminChain(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/auth/users/{id}", adminChain(h.HandleDelete, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/auth/users/{id}/reset-password", adminChain(h.HandleResetPassword, httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.issuer))
}
