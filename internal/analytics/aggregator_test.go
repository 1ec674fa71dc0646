package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodmate/backend/internal/model"
)

// reportFixture builds a store snapshot with known aggregate numbers. The
// reference instant is mid-afternoon local time so same-day checks cannot
// straddle midnight.
func reportFixture() (*fakeStore, time.Time) {
	now := time.Date(2025, 3, 14, 15, 0, 0, 0, time.Local)

	f := &fakeStore{
		users: []*model.User{
			{UserID: "alice", LastLoginAt: timePtr(now.Add(-time.Hour))},
			{UserID: "bob", LastLoginAt: timePtr(now.Add(-72 * time.Hour))},
			{UserID: "carol", LastLoginAt: timePtr(now.Add(-20 * 24 * time.Hour))},
			{UserID: "dave"},
		},
	}

	f.moods = append(f.moods, moodsAt("alice", now, 2, 2, 2)...)
	f.moods = append(f.moods, moodsAt("bob", now, 7, 8)...)
	f.moods = append(f.moods, &model.MoodEntry{
		EntryID: "m-carol", UserID: "carol", MoodLevel: 6,
		CreatedAt: now.Add(-10 * 24 * time.Hour),
	})

	f.convos = []*model.Conversation{
		{ConversationID: "c1", UserID: "bob", CreatedAt: now.Add(-30 * time.Minute)},
		{ConversationID: "c2", UserID: "bob", CreatedAt: now.Add(-2 * time.Hour)},
		{ConversationID: "c3", UserID: "carol", CreatedAt: now.Add(-10 * 24 * time.Hour)},
	}

	f.messages = []*model.Message{
		{MessageID: "m1", ConversationID: "c1", Role: "user", CreatedAt: now.Add(-30 * time.Minute)},
		{MessageID: "m2", ConversationID: "c1", Role: "assistant", CreatedAt: now.Add(-20 * time.Minute)},
		{MessageID: "m3", ConversationID: "c2", Role: "user", CreatedAt: now.Add(-3 * time.Hour)},
		{MessageID: "m4", ConversationID: "c2", Role: "assistant", CreatedAt: now.Add(-30 * time.Minute)},
		{MessageID: "m5", ConversationID: "c3", Role: "user", CreatedAt: now.Add(-10 * 24 * time.Hour)},
	}

	f.alerts = []*model.CrisisAlert{
		{AlertID: "a1", UserID: "alice", Severity: "high", TriggerType: "keyword_detection", Status: "new"},
		{AlertID: "a2", UserID: "alice", Severity: "critical", TriggerType: "keyword_detection", Status: "resolved"},
		{AlertID: "a3", UserID: "bob", Severity: "low", TriggerType: "manual", Status: "reviewed"},
	}

	return f, now
}

func TestComputeReport(t *testing.T) {
	f, now := reportFixture()
	agg := NewAggregator(f, zerolog.Nop())

	report, err := agg.ComputeReport(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 4, report.TotalUsers)
	assert.Equal(t, model.ActiveUsers{Daily: 1, Weekly: 2, Monthly: 3}, report.ActiveUsers)

	assert.Equal(t, 4.5, report.MoodTrends.AverageMoodLevel)
	assert.Equal(t, 1, report.MoodTrends.LowMoodUsers)
	assert.Equal(t, 1, report.MoodTrends.CriticalMoodUsers)

	require.Len(t, report.MoodTrends.MoodDistribution, 10)
	assert.Equal(t, 3, report.MoodTrends.MoodDistribution["2"])
	assert.Equal(t, 0, report.MoodTrends.MoodDistribution["10"])
	total := 0
	for _, n := range report.MoodTrends.MoodDistribution {
		total += n
	}
	assert.Equal(t, 6, total)

	assert.Equal(t, 3, report.ConversationMetrics.TotalConversations)
	assert.Equal(t, 1.7, report.ConversationMetrics.AverageMessagesPerConversation)
	// c1 spans ten minutes; c2 spans 150 minutes and is discarded as an
	// anomaly; c3 has a single message.
	assert.Equal(t, 10.0, report.ConversationMetrics.AverageSessionDuration)
	assert.Equal(t, 1, report.ConversationMetrics.MultipleSessionUsers)

	assert.Equal(t, 1, report.CrisisMetrics.ActiveAlerts)
	assert.Equal(t, 1, report.CrisisMetrics.ResolvedAlerts)
	assert.Equal(t, 2, report.CrisisMetrics.AlertsByType["keyword_detection"])
	assert.Equal(t, 1, report.CrisisMetrics.AlertsBySeverity["critical"])

	risky := report.UserBehaviorPatterns.HighRiskUsers
	require.Len(t, risky, 2)
	assert.Equal(t, "alice", risky[0].UserID)
	assert.Equal(t, model.RiskCritical, risky[0].RiskLevel)
	assert.Equal(t, "carol", risky[1].UserID)
	assert.Equal(t, model.RiskHigh, risky[1].RiskLevel)

	levels := report.UserBehaviorPatterns.EngagementLevels
	assert.Equal(t, model.EngagementLevels{High: 0, Medium: 2, Low: 2}, levels)
	assert.Equal(t, report.TotalUsers, levels.High+levels.Medium+levels.Low)
}

func TestComputeReport_Deterministic(t *testing.T) {
	f, now := reportFixture()
	agg := NewAggregator(f, zerolog.Nop())

	first, err := agg.ComputeReport(context.Background(), now)
	require.NoError(t, err)
	second, err := agg.ComputeReport(context.Background(), now)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestComputeReport_StoreFailureAborts(t *testing.T) {
	for _, collection := range []string{"users", "moods", "conversations", "messages", "alerts"} {
		f, now := reportFixture()
		f.failOn = collection
		agg := NewAggregator(f, zerolog.Nop())

		report, err := agg.ComputeReport(context.Background(), now)
		require.ErrorIs(t, err, errFakeStore, "collection %s", collection)
		assert.Nil(t, report)
	}
}

func TestRiskReport(t *testing.T) {
	f, now := reportFixture()
	agg := NewAggregator(f, zerolog.Nop())

	report, err := agg.RiskReport(context.Background(), now)
	require.NoError(t, err)

	require.Len(t, report.HighRiskUsers, 2)
	assert.Equal(t, 1, report.CriticalAlerts)

	require.Len(t, report.Recommendations, 3)
	assert.Equal(t, "crisis_intervention", report.Recommendations[0].Type)
	assert.Equal(t, "2 users identified as high-risk. Immediate outreach recommended.", report.Recommendations[0].Message)
	assert.Equal(t, "mood_intervention", report.Recommendations[1].Type)
	assert.Equal(t, "engagement_boost", report.Recommendations[2].Type)
}
