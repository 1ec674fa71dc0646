package analytics

import (
	"time"

	"github.com/moodmate/backend/internal/model"
)

// EngagementTally buckets every user into exactly one weekly-activity tier.
// An activity is a mood entry or a conversation created at or after
// windowStart.
func EngagementTally(users []*model.User, moods []*model.MoodEntry, convos []*model.Conversation, windowStart time.Time) model.EngagementLevels {
	var levels model.EngagementLevels

	for _, u := range users {
		total := 0
		for _, m := range moods {
			if m.UserID == u.UserID && !m.CreatedAt.Before(windowStart) {
				total++
			}
		}
		for _, c := range convos {
			if c.UserID == u.UserID && !c.CreatedAt.Before(windowStart) {
				total++
			}
		}

		switch {
		case total >= 5:
			levels.High++
		case total >= 2:
			levels.Medium++
		default:
			levels.Low++
		}
	}

	return levels
}
