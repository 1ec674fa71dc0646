package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/moodmate/backend/internal/model"
	"github.com/moodmate/backend/internal/store"
)

// MoodService handles mood check-ins and streak computation.
type MoodService struct {
	store store.Store
}

func NewMoodService(s store.Store) *MoodService { return &MoodService{store: s} }

func (s *MoodService) AddEntry(ctx context.Context, e *model.MoodEntry) (*model.MoodEntry, error) {
	e.EntryID = uuid.NewString()
	return s.store.MoodEntries().Create(ctx, e)
}

func (s *MoodService) ListEntries(ctx context.Context, req model.ListMoodEntriesRequest) ([]*model.MoodEntry, error) {
	return s.store.MoodEntries().List(ctx, req)
}

func (s *MoodService) LatestEntry(ctx context.Context, userID string) (*model.MoodEntry, error) {
	return s.store.MoodEntries().Latest(ctx, userID)
}

// Streak counts consecutive local calendar days with at least one check-in,
// ending today or yesterday. A gap of more than one day breaks the streak.
func (s *MoodService) Streak(ctx context.Context, userID string, now time.Time) (int, error) {
	entries, err := s.store.MoodEntries().List(ctx, model.ListMoodEntriesRequest{UserID: userID})
	if err != nil {
		return 0, fmt.Errorf("list mood entries: %w", err)
	}
	if len(entries) == 0 {
		return 0, nil
	}

	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[e.CreatedAt.Local().Format("2006-01-02")] = true
	}

	day := now.Local()
	if !days[day.Format("2006-01-02")] {
		// A streak survives until the end of the day after the last check-in.
		day = day.AddDate(0, 0, -1)
		if !days[day.Format("2006-01-02")] {
			return 0, nil
		}
	}

	streak := 0
	for days[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}
