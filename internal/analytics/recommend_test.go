package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodmate/backend/internal/model"
)

func TestRecommendations_Empty(t *testing.T) {
	report := &model.AdminAnalytics{TotalUsers: 10}
	assert.Empty(t, Recommendations(report))
}

func TestRecommendations_HighRisk(t *testing.T) {
	report := &model.AdminAnalytics{
		TotalUsers: 10,
		UserBehaviorPatterns: model.UserBehaviorPatterns{
			HighRiskUsers: []model.RiskAssessment{{UserID: "u1"}, {UserID: "u2"}, {UserID: "u3"}},
		},
	}

	recs := Recommendations(report)
	require.Len(t, recs, 1)
	assert.Equal(t, "high", recs[0].Priority)
	assert.Equal(t, "crisis_intervention", recs[0].Type)
	assert.Equal(t, "3 users identified as high-risk. Immediate outreach recommended.", recs[0].Message)
	assert.Len(t, recs[0].ActionItems, 3)
}

func TestRecommendations_ThresholdsAreStrict(t *testing.T) {
	// Exactly 10% critical and exactly 30% low engagement must not trigger.
	report := &model.AdminAnalytics{
		TotalUsers: 10,
		MoodTrends: model.MoodTrends{CriticalMoodUsers: 1},
		UserBehaviorPatterns: model.UserBehaviorPatterns{
			EngagementLevels: model.EngagementLevels{Low: 3},
		},
	}
	assert.Empty(t, Recommendations(report))

	report.MoodTrends.CriticalMoodUsers = 2
	report.UserBehaviorPatterns.EngagementLevels.Low = 4

	recs := Recommendations(report)
	require.Len(t, recs, 2)
	assert.Equal(t, "mood_intervention", recs[0].Type)
	assert.Equal(t, "2 users showing critical mood patterns (>10% of user base).", recs[0].Message)
	assert.Equal(t, "engagement_boost", recs[1].Type)
	assert.Equal(t, "4 users show low engagement (>30% of user base).", recs[1].Message)
}
