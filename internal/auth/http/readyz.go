package http

import (
	"net/http"
	"time"

	"github.com/goldenage/auth/internal/auth/store"
	"github.com/goldenage/auth/pkg/api"
	"github.com/goldenage/auth/pkg/httpx"
	"github.com/goldenage/auth/pkg/jwtx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Checks database connectivity and the token signer before reporting ready.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	api.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	api.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	issuer *jwtx.Issuer,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &api.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if len(issuer.Secret) == 0 {
			checks.Signer = "error: no signing secret loaded"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, api.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
