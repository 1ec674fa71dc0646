package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	respond "github.com/moodmate/backend/internal/api/respond"
	"github.com/moodmate/backend/internal/api/validate"
	"github.com/moodmate/backend/internal/model"
	"github.com/moodmate/backend/internal/services"
)

type ConversationHandler struct {
	svc *services.ConversationService
}

func NewConversationHandler(svc *services.ConversationService) *ConversationHandler {
	return &ConversationHandler{svc: svc}
}

// CreateConversation POST /api/conversations
func (h *ConversationHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	var req struct {
		Title     string `json:"title"`
		PersonaID string `json:"personaId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.CreateConversation(r.Context(), userID, req.Title, req.PersonaID)
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
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListConversations GET /api/conversations
func (h *ConversationHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	out, err := h.svc.ListConversations(r.Context(), userID)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	if out == nil {
		out = []*model.Conversation{}
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// GetConversation GET /api/conversations/{conversationId}
func (h *ConversationHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	v := mux.Vars(r)
	out, err := h.svc.GetConversation(r.Context(), userID, v["conversationId"])
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "conversation not found")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// SendMessage POST /api/conversations/{conversationId}/messages
func (h *ConversationHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.ChatMessage(req.Content); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	v := mux.Vars(r)
	out, err := h.svc.SendMessage(r.Context(), userID, v["conversationId"], req.Content)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "conversation not found")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}
