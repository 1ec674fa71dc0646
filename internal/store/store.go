package store

import (
	"context"
	"time"

	"github.com/moodmate/backend/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (e.g., postgres, sqlite).
// List methods return collections ordered newest-first.
type Store interface {
	Users() Users
	Conversations() Conversations
	Messages() Messages
	MoodEntries() MoodEntries
	JournalEntries() JournalEntries
	Interventions() Interventions
	CrisisAlerts() CrisisAlerts
}

type Users interface {
	Upsert(ctx context.Context, u *model.User) (*model.User, error)
	Get(ctx context.Context, userID string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdatePersona(ctx context.Context, userID, personaID string) (*model.User, error)
	TouchLastLogin(ctx context.Context, userID string, at time.Time) error
	ListAll(ctx context.Context) ([]*model.User, error)
}

type Conversations interface {
	Create(ctx context.Context, c *model.Conversation) (*model.Conversation, error)
	Get(ctx context.Context, userID, conversationID string) (*model.Conversation, error)
	List(ctx context.Context, userID string) ([]*model.Conversation, error)
	ListAll(ctx context.Context) ([]*model.Conversation, error)
}

type Messages interface {
	Create(ctx context.Context, m *model.Message) (*model.Message, error)
	List(ctx context.Context, conversationID string) ([]*model.Message, error)
	ListAll(ctx context.Context) ([]*model.Message, error)
}

type MoodEntries interface {
	Create(ctx context.Context, e *model.MoodEntry) (*model.MoodEntry, error)
	List(ctx context.Context, req model.ListMoodEntriesRequest) ([]*model.MoodEntry, error)
	Latest(ctx context.Context, userID string) (*model.MoodEntry, error)
	ListAll(ctx context.Context) ([]*model.MoodEntry, error)
}

type JournalEntries interface {
	Create(ctx context.Context, e *model.JournalEntry) (*model.JournalEntry, error)
	Get(ctx context.Context, userID, entryID string) (*model.JournalEntry, error)
	List(ctx context.Context, userID string, limit int) ([]*model.JournalEntry, error)
}

type Interventions interface {
	Create(ctx context.Context, iv *model.Intervention) (*model.Intervention, error)
	List(ctx context.Context, userID string) ([]*model.Intervention, error)
	Complete(ctx context.Context, userID, interventionID string, at time.Time) (*model.Intervention, error)
}

type CrisisAlerts interface {
	Create(ctx context.Context, a *model.CrisisAlert) (*model.CrisisAlert, error)
	Update(ctx context.Context, alertID string, status string, notes, reviewedBy *string, reviewedAt *time.Time) (*model.CrisisAlert, error)
	ListAll(ctx context.Context) ([]*model.CrisisAlert, error)
}
