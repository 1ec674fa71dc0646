package services

import (
	"context"
	"testing"
	"time"

	"github.com/moodmate/backend/internal/model"
	"github.com/moodmate/backend/internal/store"
)

// moodStore is a fake backing store for streak tests; only the mood entry
// collection is implemented.
type moodStore struct {
	entries []*model.MoodEntry
}

func (s *moodStore) Users() store.Users                   { return nil }
func (s *moodStore) Conversations() store.Conversations   { return nil }
func (s *moodStore) Messages() store.Messages             { return nil }
func (s *moodStore) JournalEntries() store.JournalEntries { return nil }
func (s *moodStore) Interventions() store.Interventions   { return nil }
func (s *moodStore) CrisisAlerts() store.CrisisAlerts     { return nil }
func (s *moodStore) MoodEntries() store.MoodEntries       { return &moodEntries{s} }

type moodEntries struct{ s *moodStore }

func (e *moodEntries) Create(ctx context.Context, m *model.MoodEntry) (*model.MoodEntry, error) {
	e.s.entries = append(e.s.entries, m)
	return m, nil
}

func (e *moodEntries) List(ctx context.Context, req model.ListMoodEntriesRequest) ([]*model.MoodEntry, error) {
	var out []*model.MoodEntry
	for _, m := range e.s.entries {
		if m.UserID == req.UserID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (e *moodEntries) Latest(ctx context.Context, userID string) (*model.MoodEntry, error) {
	return nil, model.ErrNotFound
}

func (e *moodEntries) ListAll(ctx context.Context) ([]*model.MoodEntry, error) {
	return e.s.entries, nil
}

func entryOn(userID string, day time.Time) *model.MoodEntry {
	return &model.MoodEntry{UserID: userID, MoodLevel: 5, CreatedAt: day}
}

func TestStreak(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 0, 0, 0, time.Local)
	ctx := context.Background()

	cases := []struct {
		name string
		days []int // offsets in days before now
		want int
	}{
		{"no entries", nil, 0},
		{"today only", []int{0}, 1},
		{"three consecutive days", []int{0, 1, 2}, 3},
		{"ended yesterday still counts", []int{1, 2}, 2},
		{"gap two days ago breaks streak", []int{0, 1, 3, 4}, 2},
		{"last entry two days ago", []int{2, 3}, 0},
		{"multiple entries same day count once", []int{0, 0, 1}, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := &moodStore{}
			for _, d := range tc.days {
				st.entries = append(st.entries, entryOn("u1", now.AddDate(0, 0, -d)))
			}
			svc := NewMoodService(st)

			got, err := svc.Streak(ctx, "u1", now)
			if err != nil {
				t.Fatalf("Streak: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got streak %d, want %d", got, tc.want)
			}
		})
	}
}

func TestStreak_IgnoresOtherUsers(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 0, 0, 0, time.Local)
	st := &moodStore{entries: []*model.MoodEntry{entryOn("someone-else", now)}}
	svc := NewMoodService(st)

	got, err := svc.Streak(context.Background(), "u1", now)
	if err != nil {
		t.Fatalf("Streak: %v", err)
	}
	if got != 0 {
		t.Fatalf("got streak %d, want 0", got)
	}
}
