// internal/app/features/health/health.go
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/haemonga/portfolio/internal/app/store/localstore"
	"github.com/haemonga/portfolio/internal/app/system/syncer"
)

// Handler provides health check endpoints. The local store is the
// only required dependency; the remote mirror is reported but never
// fails a probe.
type Handler struct {
	local  *localstore.Store
	sync   *syncer.Reconciler
	logger *zap.Logger
}

// NewHandler creates a new health check Handler.
func NewHandler(local *localstore.Store, sync *syncer.Reconciler, logger *zap.Logger) *Handler {
	return &Handler{
		local:  local,
		sync:   sync,
		logger: logger,
	}
}

// Response represents the health check response.
type Response struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services,omitempty"`
}

// Routes returns a chi.Router with health check routes mounted.
// Provides /health (full check), /health/ready, and /health/live.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Check)
	r.Get("/ready", h.Ready)
	r.Get("/live", h.Live)
	return r
}

// MountRootEndpoints adds /ready and /livez endpoints directly on the root router.
// This is the standard convention for Kubernetes probes:
//   - /ready (or /readyz) - readiness probe
//   - /livez - liveness probe
func MountRootEndpoints(r chi.Router, h *Handler) {
	r.Get("/ready", h.Ready)
	r.Get("/readyz", h.Ready)
	r.Get("/livez", h.Live)
}

// Check performs a full health check including the local store and
// the remote mirror's configuration state.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	resp := Response{
		Status:   "ok",
		Services: make(map[string]string),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.local.Ping(ctx); err != nil {
		resp.Status = "degraded"
		resp.Services["localstore"] = "unavailable"
		h.logger.Warn("health check: local store ping failed", zap.Error(err))
	} else {
		resp.Services["localstore"] = "ok"
	}

	status := h.sync.Status()
	switch {
	case !status.Configured:
		resp.Services["remote"] = "not configured"
	case status.LastPushError != "":
		resp.Services["remote"] = "push failing"
	default:
		resp.Services["remote"] = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	if resp.Status != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(resp)
}

// Ready checks if the service is ready to accept requests.
// Used by Kubernetes readiness probes.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.local.Ping(ctx); err != nil {
		h.logger.Warn("readiness check failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"not ready"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ready"}`))
}

// Live checks if the service is alive.
// Used by Kubernetes liveness probes.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"alive"}`))
}
