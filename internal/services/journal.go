package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/moodmate/backend/internal/ai"
	"github.com/moodmate/backend/internal/model"
	"github.com/moodmate/backend/internal/store"
)

// JournalService handles journal entries and AI-assisted prompts.
type JournalService struct {
	store store.Store
	ai    *ai.Service
	log   zerolog.Logger
}

func NewJournalService(s store.Store, aiSvc *ai.Service, log zerolog.Logger) *JournalService {
	return &JournalService{store: s, ai: aiSvc, log: log}
}

// CreateEntry stores a journal entry annotated with AI-extracted emotional
// themes. Theme extraction failure degrades to an unannotated entry.
func (s *JournalService) CreateEntry(ctx context.Context, e *model.JournalEntry) (*model.JournalEntry, error) {
	e.EntryID = uuid.NewString()

	analysis := s.ai.AnalyzeJournal(ctx, e.Content)
	e.EmotionalThemes = analysis.Themes

	return s.store.JournalEntries().Create(ctx, e)
}

func (s *JournalService) GetEntry(ctx context.Context, userID, entryID string) (*model.JournalEntry, error) {
	return s.store.JournalEntries().Get(ctx, userID, entryID)
}

func (s *JournalService) ListEntries(ctx context.Context, userID string, limit int) ([]*model.JournalEntry, error) {
	return s.store.JournalEntries().List(ctx, userID, limit)
}

// Prompts generates personalized journal prompts seeded with the user's
// latest mood when one exists.
func (s *JournalService) Prompts(ctx context.Context, userID string) ([]ai.JournalPrompt, error) {
	latest, err := s.store.MoodEntries().Latest(ctx, userID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		s.log.Warn().Err(err).Str("userId", userID).Msg("latest mood lookup failed, generating generic prompts")
		latest = nil
	}
	return s.ai.JournalPrompts(ctx, latest), nil
}
