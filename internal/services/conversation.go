package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/moodmate/backend/internal/ai"
	"github.com/moodmate/backend/internal/model"
	"github.com/moodmate/backend/internal/personas"
	"github.com/moodmate/backend/internal/store"
)

// ConversationService handles chat sessions and message exchange with the
// AI counselor.
type ConversationService struct {
	store store.Store
	ai    *ai.Service
	log   zerolog.Logger
}

func NewConversationService(s store.Store, aiSvc *ai.Service, log zerolog.Logger) *ConversationService {
	return &ConversationService{store: s, ai: aiSvc, log: log}
}

// ConversationWithMessages bundles a conversation with its full transcript
// in chronological order.
type ConversationWithMessages struct {
	model.Conversation
	Messages []*model.Message `json:"messages"`
}

// CreateConversation starts a new chat session. When personaID is empty the
// user's selected persona is used.
func (s *ConversationService) CreateConversation(ctx context.Context, userID, title, personaID string) (*model.Conversation, error) {
	if personaID == "" {
		u, err := s.store.Users().Get(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("resolve persona: %w", err)
		}
		personaID = u.SelectedPersona
	}
	if !personas.Exists(personaID) {
		return nil, fmt.Errorf("%w: unknown persona %q", model.ErrValidation, personaID)
	}
	if title == "" {
		title = "New Conversation"
	}
	return s.store.Conversations().Create(ctx, &model.Conversation{
		ConversationID: uuid.NewString(),
		UserID:         userID,
		Title:          title,
		PersonaID:      personaID,
	})
}

func (s *ConversationService) ListConversations(ctx context.Context, userID string) ([]*model.Conversation, error) {
	return s.store.Conversations().List(ctx, userID)
}

// GetConversation returns the conversation and its transcript, oldest first.
func (s *ConversationService) GetConversation(ctx context.Context, userID, conversationID string) (*ConversationWithMessages, error) {
	conv, err := s.store.Conversations().Get(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}
	msgs, err := s.store.Messages().List(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return &ConversationWithMessages{Conversation: *conv, Messages: chronological(msgs)}, nil
}

// MessageExchange is the outcome of sending one user message: the stored
// user turn and the assistant's reply.
type MessageExchange struct {
	UserMessage      *model.Message `json:"userMessage"`
	AssistantMessage *model.Message `json:"assistantMessage"`
}

// SendMessage stores the user's turn, generates the counselor reply, and
// files a crisis alert when the message trips crisis detection. Alert
// creation failures are logged but never block the reply.
func (s *ConversationService) SendMessage(ctx context.Context, userID, conversationID, content string) (*MessageExchange, error) {
	conv, err := s.store.Conversations().Get(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	history, err := s.store.Messages().List(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	userMsg, err := s.store.Messages().Create(ctx, &model.Message{
		MessageID:      uuid.NewString(),
		ConversationID: conversationID,
		Role:           "user",
		Content:        content,
	})
	if err != nil {
		return nil, fmt.Errorf("store user message: %w", err)
	}

	persona := personas.ByID(conv.PersonaID)
	reply := s.ai.GenerateReply(ctx, persona, chronological(history), content)

	if check := s.ai.DetectCrisis(ctx, content); check.Detected {
		_, alertErr := s.store.CrisisAlerts().Create(ctx, &model.CrisisAlert{
			AlertID:     uuid.NewString(),
			UserID:      userID,
			Severity:    check.Severity,
			TriggerType: "keyword_detection",
			TriggerData: map[string]interface{}{
				"conversationId": conversationID,
				"messageId":      userMsg.MessageID,
			},
			Status: "new",
		})
		if alertErr != nil {
			s.log.Error().Err(alertErr).Str("userId", userID).Msg("failed to create crisis alert")
		} else {
			s.log.Warn().Str("userId", userID).Str("severity", check.Severity).Msg("crisis alert created")
		}
	}

	assistantMsg, err := s.store.Messages().Create(ctx, &model.Message{
		MessageID:       uuid.NewString(),
		ConversationID:  conversationID,
		Role:            "assistant",
		Content:         reply.Content,
		EmotionalTone:   &reply.EmotionalTone,
		SentimentScore:  &reply.SentimentScore,
		Recommendations: reply.Recommendations,
	})
	if err != nil {
		return nil, fmt.Errorf("store assistant message: %w", err)
	}

	return &MessageExchange{UserMessage: userMsg, AssistantMessage: assistantMsg}, nil
}

// chronological reverses a newest-first message list into oldest-first.
func chronological(msgs []*model.Message) []*model.Message {
	out := make([]*model.Message, len(msgs))
	for i, m := range msgs {
		out[len(msgs)-1-i] = m
	}
	return out
}
