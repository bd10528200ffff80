package api

import (
	"net/http"
	"time"

	"github.com/devlink/devlink/internal/api/respond"
	"github.com/devlink/devlink/internal/health"
)

// HealthHandler exposes the cached service health maintained by the
// background monitor.
type HealthHandler struct {
	monitor *health.Monitor
}

func NewHealthHandler(m *health.Monitor) *HealthHandler {
	return &HealthHandler{monitor: m}
}

// CheckHealth handles GET /api/health.
// Always returns 200; the body reports healthy/unhealthy so probes can
// distinguish a degraded service from a dead one.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	status := "unhealthy"
	if h.monitor.IsHealthy() {
		status = "healthy"
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// CheckStoreHealth handles GET /api/health/db.
// Reports the store dependency alone: 503 while it is unreachable.
func (h *HealthHandler) CheckStoreHealth(w http.ResponseWriter, r *http.Request) {
	for _, c := range h.monitor.Snapshot() {
		if c.Name != "store" {
			continue
		}
		code := http.StatusOK
		status := "healthy"
		if !c.Healthy {
			code = http.StatusServiceUnavailable
			status = "unhealthy"
		}
		respond.WriteJSON(w, code, map[string]string{"status": status})
		return
	}
	respond.WriteMsg(w, http.StatusServiceUnavailable, "store checker not configured")
}

// CheckReadiness handles GET /api/health/ready.
// Returns 503 with per-component detail while any dependency is down.
func (h *HealthHandler) CheckReadiness(w http.ResponseWriter, r *http.Request) {
	code := http.StatusOK
	if !h.monitor.IsHealthy() {
		code = http.StatusServiceUnavailable
	}
	respond.WriteJSON(w, code, map[string]interface{}{
		"ready":      code == http.StatusOK,
		"components": h.monitor.Snapshot(),
	})
}
