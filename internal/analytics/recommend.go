package analytics

import (
	"fmt"

	"github.com/moodmate/backend/internal/model"
)

// Recommendations templates prioritized admin action items from an already
// computed report. Pure string substitution over the report's numbers.
func Recommendations(report *model.AdminAnalytics) []model.Recommendation {
	var recs []model.Recommendation

	if n := len(report.UserBehaviorPatterns.HighRiskUsers); n > 0 {
		recs = append(recs, model.Recommendation{
			Priority: "high",
			Type:     "crisis_intervention",
			Message:  fmt.Sprintf("%d users identified as high-risk. Immediate outreach recommended.", n),
			ActionItems: []string{
				"Review crisis alerts and user patterns",
				"Consider wellness check-ins for critical users",
				"Deploy targeted mental health resources",
			},
		})
	}

	if float64(report.MoodTrends.CriticalMoodUsers) > float64(report.TotalUsers)*0.1 {
		recs = append(recs, model.Recommendation{
			Priority: "medium",
			Type:     "mood_intervention",
			Message:  fmt.Sprintf("%d users showing critical mood patterns (>10%% of user base).", report.MoodTrends.CriticalMoodUsers),
			ActionItems: []string{
				"Launch mood improvement campaigns",
				"Increase therapy resource visibility",
				"Deploy positive intervention content",
			},
		})
	}

	if float64(report.UserBehaviorPatterns.EngagementLevels.Low) > float64(report.TotalUsers)*0.3 {
		recs = append(recs, model.Recommendation{
			Priority: "low",
			Type:     "engagement_boost",
			Message:  fmt.Sprintf("%d users show low engagement (>30%% of user base).", report.UserBehaviorPatterns.EngagementLevels.Low),
			ActionItems: []string{
				"Send re-engagement emails",
				"Highlight app benefits and features",
				"Personalized wellness reminders",
			},
		})
	}

	return recs
}
