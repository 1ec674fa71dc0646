package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/moodmate/backend/internal/model"
)

func TestEngagementTally(t *testing.T) {
	now := time.Now()
	windowStart := now.Add(-7 * 24 * time.Hour)

	users := []*model.User{
		{UserID: "high"},
		{UserID: "medium"},
		{UserID: "low"},
		{UserID: "silent"},
	}

	moods := moodsAt("high", now, 6, 7, 6, 7)
	moods = append(moods, moodsAt("medium", now, 5)...)
	// An activity outside the window does not count.
	moods = append(moods, &model.MoodEntry{UserID: "low", MoodLevel: 5, CreatedAt: windowStart.Add(-time.Hour)})

	convos := []*model.Conversation{
		convAt("high", now.Add(-time.Hour)),
		convAt("medium", now.Add(-2*time.Hour)),
	}

	levels := EngagementTally(users, moods, convos, windowStart)
	assert.Equal(t, 1, levels.High)
	assert.Equal(t, 1, levels.Medium)
	assert.Equal(t, 2, levels.Low)
	assert.Equal(t, len(users), levels.High+levels.Medium+levels.Low)
}

func TestEngagementTally_WindowBoundaryInclusive(t *testing.T) {
	windowStart := time.Now().Add(-7 * 24 * time.Hour)

	users := []*model.User{{UserID: "edge"}}
	moods := []*model.MoodEntry{
		{UserID: "edge", MoodLevel: 5, CreatedAt: windowStart},
		{UserID: "edge", MoodLevel: 6, CreatedAt: windowStart.Add(time.Minute)},
	}

	levels := EngagementTally(users, moods, nil, windowStart)
	assert.Equal(t, 1, levels.Medium)
	assert.Equal(t, 0, levels.Low)
}
