package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/moodmate/backend/internal/model"
	"github.com/moodmate/backend/internal/store"
)

// Run exercises a compliance suite against a store.Store implementation.
// Implementations should provide a clean, isolated store from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	userID := "u-" + uuid.New().String()
	email := userID + "@example.test"

	// Users
	u, err := s.Users().Upsert(ctx, &model.User{UserID: userID, Email: email, SelectedPersona: "sage"})
	if err != nil {
		t.Fatalf("UpsertUser: %v", err)
	}
	if u.SelectedPersona != "sage" {
		t.Fatalf("UpsertUser persona: got %q", u.SelectedPersona)
	}
	if got, err := s.Users().Get(ctx, userID); err != nil || got == nil || got.UserID != userID {
		t.Fatalf("GetUser: got=%v err=%v", got, err)
	}
	if got, err := s.Users().GetByEmail(ctx, email); err != nil || got == nil || got.UserID != userID {
		t.Fatalf("GetUserByEmail: got=%v err=%v", got, err)
	}
	if _, err := s.Users().Get(ctx, "missing-user"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetUser missing: want ErrNotFound, got %v", err)
	}

	// Upsert again must update profile fields without clobbering persona.
	if _, err := s.Users().UpdatePersona(ctx, userID, "alex"); err != nil {
		t.Fatalf("UpdatePersona: %v", err)
	}
	first := "Ada"
	again, err := s.Users().Upsert(ctx, &model.User{UserID: userID, Email: email, FirstName: &first, SelectedPersona: "sage"})
	if err != nil {
		t.Fatalf("UpsertUser again: %v", err)
	}
	if again.SelectedPersona != "alex" {
		t.Fatalf("Upsert clobbered persona: got %q", again.SelectedPersona)
	}
	if again.FirstName == nil || *again.FirstName != "Ada" {
		t.Fatalf("Upsert did not update first name: got %v", again.FirstName)
	}

	loginAt := time.Now().UTC().Truncate(time.Second)
	if err := s.Users().TouchLastLogin(ctx, userID, loginAt); err != nil {
		t.Fatalf("TouchLastLogin: %v", err)
	}
	if got, err := s.Users().Get(ctx, userID); err != nil || got.LastLoginAt == nil {
		t.Fatalf("last login not recorded: got=%v err=%v", got, err)
	}
	if lst, err := s.Users().ListAll(ctx); err != nil || len(lst) == 0 {
		t.Fatalf("ListAllUsers: n=%d err=%v", len(lst), err)
	}

	// Conversations
	conv, err := s.Conversations().Create(ctx, &model.Conversation{
		ConversationID: uuid.NewString(), UserID: userID, Title: "check-in", PersonaID: "sage",
	})
	if err != nil {
		t.Fatalf("CreateConversation: %v", err)
	}
	if got, err := s.Conversations().Get(ctx, userID, conv.ConversationID); err != nil || got.Title != "check-in" {
		t.Fatalf("GetConversation: got=%v err=%v", got, err)
	}
	if _, err := s.Conversations().Get(ctx, "other-user", conv.ConversationID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetConversation cross-user: want ErrNotFound, got %v", err)
	}
	if lst, err := s.Conversations().List(ctx, userID); err != nil || len(lst) != 1 {
		t.Fatalf("ListConversations: n=%d err=%v", len(lst), err)
	}

	// Messages
	if _, err := s.Messages().Create(ctx, &model.Message{
		MessageID: uuid.NewString(), ConversationID: conv.ConversationID, Role: "user", Content: "hello",
	}); err != nil {
		t.Fatalf("CreateMessage user: %v", err)
	}
	tone := "calm"
	score := 3
	if _, err := s.Messages().Create(ctx, &model.Message{
		MessageID: uuid.NewString(), ConversationID: conv.ConversationID, Role: "assistant", Content: "hi there",
		EmotionalTone: &tone, SentimentScore: &score,
		Recommendations: map[string]interface{}{"youtube": map[string]interface{}{"title": "Breathing"}},
	}); err != nil {
		t.Fatalf("CreateMessage assistant: %v", err)
	}
	msgs, err := s.Messages().List(ctx, conv.ConversationID)
	if err != nil || len(msgs) != 2 {
		t.Fatalf("ListMessages: n=%d err=%v", len(msgs), err)
	}
	var assistant *model.Message
	for _, m := range msgs {
		if m.Role == "assistant" {
			assistant = m
		}
	}
	if assistant == nil || assistant.EmotionalTone == nil || *assistant.EmotionalTone != "calm" {
		t.Fatalf("assistant annotations not persisted: %+v", assistant)
	}
	if assistant.Recommendations == nil {
		t.Fatalf("recommendations not persisted")
	}

	// Mood entries
	anx := 4
	notes := "rough day"
	if _, err := s.MoodEntries().Create(ctx, &model.MoodEntry{
		EntryID: uuid.NewString(), UserID: userID, MoodLevel: 3, AnxietyLevel: &anx, Notes: &notes,
	}); err != nil {
		t.Fatalf("CreateMoodEntry: %v", err)
	}
	time.Sleep(5 * time.Millisecond) // ensure monotonic creation time ordering
	if _, err := s.MoodEntries().Create(ctx, &model.MoodEntry{
		EntryID: uuid.NewString(), UserID: userID, MoodLevel: 7,
	}); err != nil {
		t.Fatalf("CreateMoodEntry second: %v", err)
	}
	moods, err := s.MoodEntries().List(ctx, model.ListMoodEntriesRequest{UserID: userID})
	if err != nil || len(moods) != 2 {
		t.Fatalf("ListMoodEntries: n=%d err=%v", len(moods), err)
	}
	if moods[0].MoodLevel != 7 {
		t.Fatalf("mood list not newest-first: first=%d", moods[0].MoodLevel)
	}
	if latest, err := s.MoodEntries().Latest(ctx, userID); err != nil || latest.MoodLevel != 7 {
		t.Fatalf("LatestMood: got=%v err=%v", latest, err)
	}
	if lst, err := s.MoodEntries().List(ctx, model.ListMoodEntriesRequest{UserID: userID, Limit: 1}); err != nil || len(lst) != 1 {
		t.Fatalf("ListMoodEntries limit: n=%d err=%v", len(lst), err)
	}
	cutoff := moods[0].CreatedAt.Add(-time.Millisecond)
	if lst, err := s.MoodEntries().List(ctx, model.ListMoodEntriesRequest{UserID: userID, Start: &cutoff}); err != nil || len(lst) != 1 {
		t.Fatalf("ListMoodEntries start filter: n=%d err=%v", len(lst), err)
	}

	// Journal entries
	prompt := "What went well today?"
	je, err := s.JournalEntries().Create(ctx, &model.JournalEntry{
		EntryID: uuid.NewString(), UserID: userID, Title: "Evening", Content: "Went for a walk.",
		Prompt: &prompt, EmotionalThemes: []string{"gratitude", "self-care"},
	})
	if err != nil {
		t.Fatalf("CreateJournalEntry: %v", err)
	}
	if got, err := s.JournalEntries().Get(ctx, userID, je.EntryID); err != nil || len(got.EmotionalThemes) != 2 {
		t.Fatalf("GetJournalEntry: got=%v err=%v", got, err)
	}
	if lst, err := s.JournalEntries().List(ctx, userID, 0); err != nil || len(lst) != 1 {
		t.Fatalf("ListJournalEntries: n=%d err=%v", len(lst), err)
	}

	// Interventions
	dur := 5
	iv, err := s.Interventions().Create(ctx, &model.Intervention{
		InterventionID: uuid.NewString(), UserID: userID, Type: "breathing", Title: "Box breathing", Duration: &dur,
	})
	if err != nil {
		t.Fatalf("CreateIntervention: %v", err)
	}
	if iv.Completed {
		t.Fatalf("intervention created as completed")
	}
	done, err := s.Interventions().Complete(ctx, userID, iv.InterventionID, time.Now().UTC())
	if err != nil || !done.Completed || done.CompletedAt == nil {
		t.Fatalf("CompleteIntervention: got=%v err=%v", done, err)
	}
	if _, err := s.Interventions().Complete(ctx, userID, "missing-iv", time.Now().UTC()); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("CompleteIntervention missing: want ErrNotFound, got %v", err)
	}

	// Crisis alerts
	alert, err := s.CrisisAlerts().Create(ctx, &model.CrisisAlert{
		AlertID: uuid.NewString(), UserID: userID, Severity: "high", TriggerType: "keyword_detection",
		TriggerData: map[string]interface{}{"messageId": "m1"}, Status: "new",
	})
	if err != nil {
		t.Fatalf("CreateCrisisAlert: %v", err)
	}
	reviewer := "admin-1"
	alertNotes := "called the user"
	reviewedAt := time.Now().UTC()
	upd, err := s.CrisisAlerts().Update(ctx, alert.AlertID, "resolved", &alertNotes, &reviewer, &reviewedAt)
	if err != nil || upd.Status != "resolved" || upd.ReviewedBy == nil || *upd.ReviewedBy != reviewer {
		t.Fatalf("UpdateCrisisAlert: got=%v err=%v", upd, err)
	}
	if upd.TriggerData == nil {
		t.Fatalf("trigger data lost on update")
	}
	if lst, err := s.CrisisAlerts().ListAll(ctx); err != nil || len(lst) != 1 {
		t.Fatalf("ListAllCrisisAlerts: n=%d err=%v", len(lst), err)
	}
}
