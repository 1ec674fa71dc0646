// Package analytics derives admin-facing risk, engagement and aggregate
// metrics from raw mood, conversation and crisis records. Everything here is
// computed fresh per request; nothing is persisted.
package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/moodmate/backend/internal/model"
)

// crisisKeywords are matched case-insensitively as substrings against mood
// entry notes. Any hit forces the risk level to critical.
var crisisKeywords = []string{
	"suicide",
	"kill myself",
	"end it all",
	"worthless",
	"hopeless",
	"can't go on",
}

// ClassifyRisk evaluates one user's history against the heuristic risk rules.
// moods and convos must be ordered newest-first. Returns nil when no risk
// factor fires; rules may raise the level but never lower it.
func ClassifyRisk(user *model.User, moods []*model.MoodEntry, convos []*model.Conversation, now time.Time) *model.RiskAssessment {
	var factors []string
	level := model.RiskMedium

	recent := moods
	if len(recent) > 5 {
		recent = recent[:5]
	}
	if len(recent) >= 3 && allAtMost(recent, 2) {
		factors = append(factors, "Critical mood pattern (≤2)")
		level = model.RiskCritical
	} else if len(recent) >= 3 && allAtMost(recent, 3) {
		factors = append(factors, "Consistently low mood (≤3)")
		level = model.RiskHigh
	}

	if hasCrisisNotes(moods) {
		factors = append(factors, "Crisis keywords detected")
		level = model.RiskCritical
	}

	weekAgo := now.Add(-7 * 24 * time.Hour)
	recentConvos := 0
	for _, c := range convos {
		if !c.CreatedAt.Before(weekAgo) {
			recentConvos++
		}
	}
	if recentConvos == 0 && len(moods) > 0 {
		factors = append(factors, "Social withdrawal")
		if level != model.RiskCritical {
			level = model.RiskHigh
		}
	}

	if len(moods) >= 3 {
		var total float64
		for i := 0; i < len(moods)-1; i++ {
			total += math.Abs(float64(moods[i].MoodLevel - moods[i+1].MoodLevel))
		}
		if total/float64(len(moods)-1) > 4 {
			factors = append(factors, "Extreme mood swings")
			if level != model.RiskCritical {
				level = model.RiskHigh
			}
		}
	}

	if len(factors) == 0 {
		return nil
	}

	return &model.RiskAssessment{
		UserID:       user.UserID,
		RiskLevel:    level,
		Factors:      factors,
		LastActivity: lastActivity(user, moods, convos),
	}
}

// SortByRisk orders assessments by non-increasing severity rank. Equal
// severities keep their encounter order.
func SortByRisk(assessments []model.RiskAssessment) {
	sort.SliceStable(assessments, func(i, j int) bool {
		return model.RiskRank(assessments[i].RiskLevel) > model.RiskRank(assessments[j].RiskLevel)
	})
}

func allAtMost(entries []*model.MoodEntry, max int) bool {
	for _, e := range entries {
		if e.MoodLevel > max {
			return false
		}
	}
	return true
}

func hasCrisisNotes(moods []*model.MoodEntry) bool {
	for _, m := range moods {
		if m.Notes == nil {
			continue
		}
		notes := strings.ToLower(*m.Notes)
		for _, kw := range crisisKeywords {
			if strings.Contains(notes, kw) {
				return true
			}
		}
	}
	return false
}

// lastActivity prefers the latest mood entry timestamp, then the latest
// conversation, then the user's last login.
func lastActivity(user *model.User, moods []*model.MoodEntry, convos []*model.Conversation) *time.Time {
	if len(moods) > 0 {
		t := moods[0].CreatedAt
		return &t
	}
	if len(convos) > 0 {
		t := convos[0].CreatedAt
		return &t
	}
	return user.LastLoginAt
}
