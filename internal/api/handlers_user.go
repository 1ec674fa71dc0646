package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	respond "github.com/moodmate/backend/internal/api/respond"
	"github.com/moodmate/backend/internal/api/validate"
	"github.com/moodmate/backend/internal/auth"
	"github.com/moodmate/backend/internal/config"
	"github.com/moodmate/backend/internal/model"
	"github.com/moodmate/backend/internal/personas"
	"github.com/moodmate/backend/internal/services"
)

type UserHandler struct {
	svc    *services.UserService
	moods  *services.MoodService
	tokens *auth.AdminTokenService
	cfg    *config.Config
}

func NewUserHandler(svc *services.UserService, moods *services.MoodService, tokens *auth.AdminTokenService, cfg *config.Config) *UserHandler {
	return &UserHandler{svc: svc, moods: moods, tokens: tokens, cfg: cfg}
}

// UpsertAuthUser POST /api/auth/user
// Called by the session gateway after login to provision the account and
// stamp the login time.
func (h *UserHandler) UpsertAuthUser(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}

	var req struct {
		Email     string  `json:"email"`
		FirstName *string `json:"firstName,omitempty"`
		LastName  *string `json:"lastName,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Email(req.Email); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	u, err := h.svc.UpsertUser(r.Context(), &model.User{
		UserID:    userID,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	if err := h.svc.RecordLogin(r.Context(), userID, time.Now().UTC()); err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}

// GetAuthUser GET /api/auth/user
func (h *UserHandler) GetAuthUser(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	u, err := h.svc.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "user not found")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}

// ListPersonas GET /api/personas
func (h *UserHandler) ListPersonas(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, personas.All())
}

// UpdatePersona PUT /api/user/persona
func (h *UserHandler) UpdatePersona(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	var req struct {
		PersonaID string `json:"personaId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	u, err := h.svc.UpdatePersona(r.Context(), userID, req.PersonaID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			respond.WriteBadRequest(w, err.Error())
		case errors.Is(err, model.ErrNotFound):
			respond.WriteNotFound(w, "user not found")
		default:
			respond.WriteInternalError(w, err.Error())
		}
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}

// AdminLogin POST /api/admin/login
// Exchanges the shared admin key for a short-lived admin JWT. The caller
// must also be flagged as an administrator on their account.
func (h *UserHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	var req struct {
		AdminKey string `json:"adminKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if h.cfg.AdminKey == "" || req.AdminKey != h.cfg.AdminKey {
		respond.WriteUnauthorized(w, "invalid admin key")
		return
	}
	u, err := h.svc.GetUser(r.Context(), userID)
	if err != nil {
		respond.WriteUnauthorized(w, "unknown user")
		return
	}
	if !u.IsAdmin {
		respond.WriteForbidden(w, "admin access required")
		return
	}
	tok, err := h.tokens.Mint(userID)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"token":     tok,
		"expiresIn": int(time.Duration(h.cfg.AdminTokenTTLHours) * time.Hour / time.Second),
	})
}

// Notification is an activity-derived notice for the user's inbox. Notices
// are computed per request, never stored.
type Notification struct {
	ID        int       `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"` // achievement, report, reminder
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListNotifications GET /api/notifications
func (h *UserHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}

	now := time.Now().UTC()
	notices := make([]Notification, 0, 3)

	latest, err := h.moods.LatestEntry(r.Context(), userID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		respond.WriteInternalError(w, err.Error())
		return
	}
	if latest != nil && latest.CreatedAt.Local().Format("2006-01-02") == now.Local().Format("2006-01-02") {
		notices = append(notices, Notification{
			ID:        1,
			Message:   "Great job completing your mood check-in today! 🌟",
			Type:      "achievement",
			CreatedAt: latest.CreatedAt,
		})
	}
	notices = append(notices,
		Notification{
			ID:        2,
			Message:   "Your weekly wellness summary is ready to view",
			Type:      "report",
			CreatedAt: now.Add(-24 * time.Hour),
		},
		Notification{
			ID:        3,
			Message:   "Remember to take a few minutes for mindful breathing today",
			Type:      "reminder",
			Read:      true,
			CreatedAt: now.Add(-48 * time.Hour),
		},
	)
	respond.WriteJSON(w, http.StatusOK, notices)
}
