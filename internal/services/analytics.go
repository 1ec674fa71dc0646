package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/moodmate/backend/internal/analytics"
	"github.com/moodmate/backend/internal/model"
	"github.com/moodmate/backend/internal/store"
)

// AnalyticsService exposes the admin aggregate reports and the per-user
// dashboard summary.
type AnalyticsService struct {
	store      store.Store
	aggregator *analytics.Aggregator
	moods      *MoodService
}

func NewAnalyticsService(s store.Store, log zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{
		store:      s,
		aggregator: analytics.NewAggregator(s, log),
		moods:      NewMoodService(s),
	}
}

// AdminReport computes the full platform analytics snapshot.
func (s *AnalyticsService) AdminReport(ctx context.Context, now time.Time) (*model.AdminAnalytics, error) {
	return s.aggregator.ComputeReport(ctx, now)
}

// RiskReport computes the high-risk user list with intervention
// recommendations.
func (s *AnalyticsService) RiskReport(ctx context.Context, now time.Time) (*model.RiskReport, error) {
	return s.aggregator.RiskReport(ctx, now)
}

// WeeklyStats summarizes one user's activity over the trailing seven days.
func (s *AnalyticsService) WeeklyStats(ctx context.Context, userID string, now time.Time) (*model.WeeklyStats, error) {
	weekAgo := now.Add(-7 * 24 * time.Hour)
	stats := &model.WeeklyStats{}

	convos, err := s.store.Conversations().List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	for _, c := range convos {
		if !c.CreatedAt.Before(weekAgo) {
			stats.Conversations++
		}
	}

	moods, err := s.store.MoodEntries().List(ctx, model.ListMoodEntriesRequest{UserID: userID, Start: &weekAgo})
	if err != nil {
		return nil, fmt.Errorf("list mood entries: %w", err)
	}
	stats.MoodCheckIns = len(moods)

	journals, err := s.store.JournalEntries().List(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	for _, j := range journals {
		if !j.CreatedAt.Before(weekAgo) {
			stats.JournalEntries++
		}
	}

	interventions, err := s.store.Interventions().List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list interventions: %w", err)
	}
	for _, iv := range interventions {
		if iv.Completed && iv.CompletedAt != nil && !iv.CompletedAt.Before(weekAgo) {
			stats.CompletedInterventions++
		}
	}

	streak, err := s.moods.Streak(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	stats.Streak = streak

	return stats, nil
}
