package api

import (
	"net/http"

	"converterservice/internal/provider"
	"converterservice/internal/service"
)

// ReadyResponse represents the readiness response
type ReadyResponse struct {
	Status string `json:"status" example:"ready"`
}

// HandleHealthz godoc
// @Summary Health check (liveness)
// @Description Always returns 200 OK if the service is running. Used for liveness probes.
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("OK"))
	}
}

// HandleReadyz godoc
// @Summary Readiness check
// @Description Returns 200 when the latest currency directory can be resolved, from cache or from any provider.
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse "Directory resolvable"
// @Failure 503 {object} ErrorResponse "No provider reachable"
// @Router /readyz [get]
func HandleReadyz(svc service.ResolverInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := svc.ResolveCurrencyDirectory(r.Context(), provider.LatestDate); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "Rate providers not ready"})
			return
		}
		writeJSON(w, http.StatusOK, ReadyResponse{Status: "ready"})
	}
}
