package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	respond "github.com/moodmate/backend/internal/api/respond"
	"github.com/moodmate/backend/internal/api/validate"
	"github.com/moodmate/backend/internal/model"
	"github.com/moodmate/backend/internal/services"
)

// WellnessHandler serves mood tracking, journaling, interventions and the
// per-user dashboard summary.
type WellnessHandler struct {
	moods         *services.MoodService
	journals      *services.JournalService
	interventions *services.InterventionService
	analytics     *services.AnalyticsService
}

func NewWellnessHandler(moods *services.MoodService, journals *services.JournalService, interventions *services.InterventionService, analytics *services.AnalyticsService) *WellnessHandler {
	return &WellnessHandler{moods: moods, journals: journals, interventions: interventions, analytics: analytics}
}

// CreateMoodEntry POST /api/mood-entries
func (h *WellnessHandler) CreateMoodEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	var req struct {
		MoodLevel    int     `json:"moodLevel"`
		AnxietyLevel *int    `json:"anxietyLevel,omitempty"`
		Notes        *string `json:"notes,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.MoodEntry(req.MoodLevel, req.AnxietyLevel, req.Notes); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.moods.AddEntry(r.Context(), &model.MoodEntry{
		UserID:       userID,
		MoodLevel:    req.MoodLevel,
		AnxietyLevel: req.AnxietyLevel,
		Notes:        req.Notes,
	})
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListMoodEntries GET /api/mood-entries?days=30&limit=100
func (h *WellnessHandler) ListMoodEntries(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	req := model.ListMoodEntriesRequest{UserID: userID}
	q := r.URL.Query()
	if s := q.Get("days"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			start := time.Now().UTC().AddDate(0, 0, -n)
			req.Start = &start
		}
	}
	if s := q.Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			req.Limit = n
		}
	}
	out, err := h.moods.ListEntries(r.Context(), req)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	if out == nil {
		out = []*model.MoodEntry{}
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// LatestMoodEntry GET /api/mood-entries/latest
func (h *WellnessHandler) LatestMoodEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	out, err := h.moods.LatestEntry(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "no mood entries")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// CreateJournalEntry POST /api/journal-entries
func (h *WellnessHandler) CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	var req struct {
		Title   string  `json:"title"`
		Content string  `json:"content"`
		Prompt  *string `json:"prompt,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.JournalEntry(req.Title, req.Content); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.journals.CreateEntry(r.Context(), &model.JournalEntry{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Prompt:  req.Prompt,
	})
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListJournalEntries GET /api/journal-entries?limit=20
func (h *WellnessHandler) ListJournalEntries(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}
	out, err := h.journals.ListEntries(r.Context(), userID, limit)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	if out == nil {
		out = []*model.JournalEntry{}
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// GetJournalEntry GET /api/journal-entries/{entryId}
func (h *WellnessHandler) GetJournalEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	v := mux.Vars(r)
	out, err := h.journals.GetEntry(r.Context(), userID, v["entryId"])
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "journal entry not found")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// JournalPrompts POST /api/journal-prompts
func (h *WellnessHandler) JournalPrompts(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	prompts, err := h.journals.Prompts(r.Context(), userID)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"prompts": prompts})
}

// CreateIntervention POST /api/interventions
func (h *WellnessHandler) CreateIntervention(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	var req struct {
		Type     string `json:"type"`
		Title    string `json:"title"`
		Duration *int   `json:"duration,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Intervention(req.Type, req.Title, req.Duration); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.interventions.Create(r.Context(), &model.Intervention{
		UserID:   userID,
		Type:     req.Type,
		Title:    req.Title,
		Duration: req.Duration,
	})
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListInterventions GET /api/interventions
func (h *WellnessHandler) ListInterventions(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	out, err := h.interventions.List(r.Context(), userID)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	if out == nil {
		out = []*model.Intervention{}
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// CompleteIntervention POST /api/interventions/{interventionId}/complete
func (h *WellnessHandler) CompleteIntervention(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	v := mux.Vars(r)
	out, err := h.interventions.Complete(r.Context(), userID, v["interventionId"], time.Now().UTC())
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "intervention not found")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// Dashboard GET /api/analytics/dashboard
func (h *WellnessHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	stats, err := h.analytics.WeeklyStats(r.Context(), userID, time.Now().UTC())
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"weeklyStats": stats})
}
