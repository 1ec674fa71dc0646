package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	respond "github.com/moodmate/backend/internal/api/respond"
	"github.com/moodmate/backend/internal/api/validate"
	"github.com/moodmate/backend/internal/auth"
	"github.com/moodmate/backend/internal/model"
	"github.com/moodmate/backend/internal/services"
)

// AdminHandler serves the JWT-guarded administrator endpoints.
type AdminHandler struct {
	analytics *services.AnalyticsService
	crisis    *services.CrisisService
	tokens    *auth.AdminTokenService
}

func NewAdminHandler(analytics *services.AnalyticsService, crisis *services.CrisisService, tokens *auth.AdminTokenService) *AdminHandler {
	return &AdminHandler{analytics: analytics, crisis: crisis, tokens: tokens}
}

// GetAnalytics GET /api/admin/analytics
func (h *AdminHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	if _, err := requireAdmin(r, h.tokens); err != nil {
		respond.WriteUnauthorized(w, "Unauthorized: "+err.Error())
		return
	}
	report, err := h.analytics.AdminReport(r.Context(), time.Now().UTC())
	if err != nil {
		respond.WriteInternalError(w, "analytics unavailable")
		return
	}
	respond.WriteJSON(w, http.StatusOK, report)
}

// GetRiskAssessment GET /api/admin/users/risk-assessment
func (h *AdminHandler) GetRiskAssessment(w http.ResponseWriter, r *http.Request) {
	if _, err := requireAdmin(r, h.tokens); err != nil {
		respond.WriteUnauthorized(w, "Unauthorized: "+err.Error())
		return
	}
	report, err := h.analytics.RiskReport(r.Context(), time.Now().UTC())
	if err != nil {
		respond.WriteInternalError(w, "analytics unavailable")
		return
	}
	respond.WriteJSON(w, http.StatusOK, report)
}

// ListCrisisAlerts GET /api/admin/crisis-alerts
func (h *AdminHandler) ListCrisisAlerts(w http.ResponseWriter, r *http.Request) {
	if _, err := requireAdmin(r, h.tokens); err != nil {
		respond.WriteUnauthorized(w, "Unauthorized: "+err.Error())
		return
	}
	out, err := h.crisis.ListAlerts(r.Context())
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	if out == nil {
		out = []*model.CrisisAlert{}
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// UpdateCrisisAlert PUT /api/admin/crisis-alerts/{alertId}
func (h *AdminHandler) UpdateCrisisAlert(w http.ResponseWriter, r *http.Request) {
	claims, err := requireAdmin(r, h.tokens)
	if err != nil {
		respond.WriteUnauthorized(w, "Unauthorized: "+err.Error())
		return
	}
	var req struct {
		Status string  `json:"status"`
		Notes  *string `json:"notes,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.CrisisAlertUpdate(req.Status); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	v := mux.Vars(r)
	out, err := h.crisis.ReviewAlert(r.Context(), v["alertId"], req.Status, req.Notes, claims.Subject, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			respond.WriteBadRequest(w, err.Error())
		case errors.Is(err, model.ErrNotFound):
			respond.WriteNotFound(w, "crisis alert not found")
		default:
			respond.WriteInternalError(w, err.Error())
		}
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
