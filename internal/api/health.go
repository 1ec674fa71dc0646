package api

import (
	"net/http"
	"time"

	respond "github.com/moodmate/backend/internal/api/respond"
	"github.com/moodmate/backend/internal/health"
	"github.com/moodmate/backend/internal/store"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	service *health.ServiceHealthChecker
	store   store.Store
}

func NewHealthHandler(service *health.ServiceHealthChecker, s store.Store) *HealthHandler {
	return &HealthHandler{service: service, store: s}
}

// CheckHealth handles GET /api/health.
// Always returns 200; the body reports healthy/unhealthy. 500 indicates handler failure only.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	status := "unhealthy"
	if h.service != nil && h.service.IsHealthy() {
		status = "healthy"
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// CheckStoreHealth handles GET /api/health/db with a live connectivity probe.
func (h *HealthHandler) CheckStoreHealth(w http.ResponseWriter, r *http.Request) {
	if p, ok := h.store.(health.HealthPinger); ok {
		if err := p.HealthPing(r.Context()); err != nil {
			respond.WriteJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"status": "healthy"})
}
