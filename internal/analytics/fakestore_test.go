package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/moodmate/backend/internal/model"
	"github.com/moodmate/backend/internal/store"
)

var errFakeStore = errors.New("fake store failure")

// fakeStore serves canned snapshots to the aggregator. Setting failOn to a
// collection name makes that collection's ListAll fail.
type fakeStore struct {
	users    []*model.User
	moods    []*model.MoodEntry
	convos   []*model.Conversation
	messages []*model.Message
	alerts   []*model.CrisisAlert
	failOn   string
}

func (f *fakeStore) Users() store.Users                   { return &fakeUsers{f} }
func (f *fakeStore) Conversations() store.Conversations   { return &fakeConversations{f} }
func (f *fakeStore) Messages() store.Messages             { return &fakeMessages{f} }
func (f *fakeStore) MoodEntries() store.MoodEntries       { return &fakeMoodEntries{f} }
func (f *fakeStore) JournalEntries() store.JournalEntries { return &fakeJournalEntries{} }
func (f *fakeStore) Interventions() store.Interventions   { return &fakeInterventions{} }
func (f *fakeStore) CrisisAlerts() store.CrisisAlerts     { return &fakeCrisisAlerts{f} }

type fakeUsers struct{ f *fakeStore }

func (u *fakeUsers) Upsert(ctx context.Context, m *model.User) (*model.User, error) {
	return m, nil
}
func (u *fakeUsers) Get(ctx context.Context, userID string) (*model.User, error) {
	for _, m := range u.f.users {
		if m.UserID == userID {
			return m, nil
		}
	}
	return nil, model.ErrNotFound
}
func (u *fakeUsers) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, model.ErrNotFound
}
func (u *fakeUsers) UpdatePersona(ctx context.Context, userID, personaID string) (*model.User, error) {
	return nil, model.ErrNotFound
}
func (u *fakeUsers) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	return nil
}
func (u *fakeUsers) ListAll(ctx context.Context) ([]*model.User, error) {
	if u.f.failOn == "users" {
		return nil, errFakeStore
	}
	return u.f.users, nil
}

type fakeConversations struct{ f *fakeStore }

func (c *fakeConversations) Create(ctx context.Context, m *model.Conversation) (*model.Conversation, error) {
	return m, nil
}
func (c *fakeConversations) Get(ctx context.Context, userID, conversationID string) (*model.Conversation, error) {
	return nil, model.ErrNotFound
}
func (c *fakeConversations) List(ctx context.Context, userID string) ([]*model.Conversation, error) {
	var out []*model.Conversation
	for _, m := range c.f.convos {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}
func (c *fakeConversations) ListAll(ctx context.Context) ([]*model.Conversation, error) {
	if c.f.failOn == "conversations" {
		return nil, errFakeStore
	}
	return c.f.convos, nil
}

type fakeMessages struct{ f *fakeStore }

func (m *fakeMessages) Create(ctx context.Context, msg *model.Message) (*model.Message, error) {
	return msg, nil
}
func (m *fakeMessages) List(ctx context.Context, conversationID string) ([]*model.Message, error) {
	var out []*model.Message
	for _, msg := range m.f.messages {
		if msg.ConversationID == conversationID {
			out = append(out, msg)
		}
	}
	return out, nil
}
func (m *fakeMessages) ListAll(ctx context.Context) ([]*model.Message, error) {
	if m.f.failOn == "messages" {
		return nil, errFakeStore
	}
	return m.f.messages, nil
}

type fakeMoodEntries struct{ f *fakeStore }

func (e *fakeMoodEntries) Create(ctx context.Context, m *model.MoodEntry) (*model.MoodEntry, error) {
	return m, nil
}
func (e *fakeMoodEntries) List(ctx context.Context, req model.ListMoodEntriesRequest) ([]*model.MoodEntry, error) {
	var out []*model.MoodEntry
	for _, m := range e.f.moods {
		if m.UserID == req.UserID {
			out = append(out, m)
		}
	}
	return out, nil
}
func (e *fakeMoodEntries) Latest(ctx context.Context, userID string) (*model.MoodEntry, error) {
	return nil, model.ErrNotFound
}
func (e *fakeMoodEntries) ListAll(ctx context.Context) ([]*model.MoodEntry, error) {
	if e.f.failOn == "moods" {
		return nil, errFakeStore
	}
	return e.f.moods, nil
}

type fakeJournalEntries struct{}

func (j *fakeJournalEntries) Create(ctx context.Context, e *model.JournalEntry) (*model.JournalEntry, error) {
	return e, nil
}
func (j *fakeJournalEntries) Get(ctx context.Context, userID, entryID string) (*model.JournalEntry, error) {
	return nil, model.ErrNotFound
}
func (j *fakeJournalEntries) List(ctx context.Context, userID string, limit int) ([]*model.JournalEntry, error) {
	return nil, nil
}

type fakeInterventions struct{}

func (i *fakeInterventions) Create(ctx context.Context, iv *model.Intervention) (*model.Intervention, error) {
	return iv, nil
}
func (i *fakeInterventions) List(ctx context.Context, userID string) ([]*model.Intervention, error) {
	return nil, nil
}
func (i *fakeInterventions) Complete(ctx context.Context, userID, interventionID string, at time.Time) (*model.Intervention, error) {
	return nil, model.ErrNotFound
}

type fakeCrisisAlerts struct{ f *fakeStore }

func (c *fakeCrisisAlerts) Create(ctx context.Context, a *model.CrisisAlert) (*model.CrisisAlert, error) {
	c.f.alerts = append(c.f.alerts, a)
	return a, nil
}
func (c *fakeCrisisAlerts) Update(ctx context.Context, alertID string, status string, notes, reviewedBy *string, reviewedAt *time.Time) (*model.CrisisAlert, error) {
	return nil, model.ErrNotFound
}
func (c *fakeCrisisAlerts) ListAll(ctx context.Context) ([]*model.CrisisAlert, error) {
	if c.f.failOn == "alerts" {
		return nil, errFakeStore
	}
	return c.f.alerts, nil
}
