package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/moodmate/backend/internal/model"
	"github.com/moodmate/backend/internal/store"
)

// Aggregator computes the full admin analytics report from whole-collection
// store snapshots. Each call recomputes everything; there is no caching and
// no partial report on failure.
type Aggregator struct {
	store store.Store
	log   zerolog.Logger
}

func NewAggregator(s store.Store, log zerolog.Logger) *Aggregator {
	return &Aggregator{store: s, log: log}
}

// ComputeReport pulls all records and derives the aggregate report relative
// to now. Any store read failure aborts the whole computation.
func (a *Aggregator) ComputeReport(ctx context.Context, now time.Time) (*model.AdminAnalytics, error) {
	users, err := a.store.Users().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: list users: %w", err)
	}
	moods, err := a.store.MoodEntries().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: list mood entries: %w", err)
	}
	convos, err := a.store.Conversations().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: list conversations: %w", err)
	}
	messages, err := a.store.Messages().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: list messages: %w", err)
	}
	alerts, err := a.store.CrisisAlerts().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: list crisis alerts: %w", err)
	}

	oneDayAgo := now.Add(-24 * time.Hour)
	oneWeekAgo := now.Add(-7 * 24 * time.Hour)
	oneMonthAgo := now.Add(-30 * 24 * time.Hour)

	report := &model.AdminAnalytics{TotalUsers: len(users)}

	for _, u := range users {
		if u.LastLoginAt == nil {
			continue
		}
		if !u.LastLoginAt.Before(oneDayAgo) {
			report.ActiveUsers.Daily++
		}
		if !u.LastLoginAt.Before(oneWeekAgo) {
			report.ActiveUsers.Weekly++
		}
		if !u.LastLoginAt.Before(oneMonthAgo) {
			report.ActiveUsers.Monthly++
		}
	}

	moodsByUser := groupMoodsByUser(moods)
	convosByUser := groupConversationsByUser(convos)

	report.MoodTrends = moodTrends(users, moods, moodsByUser)
	report.ConversationMetrics = conversationMetrics(users, convos, convosByUser, messages, now)
	report.CrisisMetrics = crisisMetrics(alerts)

	var risky []model.RiskAssessment
	for _, u := range users {
		if ra := ClassifyRisk(u, moodsByUser[u.UserID], convosByUser[u.UserID], now); ra != nil {
			risky = append(risky, *ra)
		}
	}
	SortByRisk(risky)

	report.UserBehaviorPatterns = model.UserBehaviorPatterns{
		HighRiskUsers:    risky,
		EngagementLevels: EngagementTally(users, moods, convos, oneWeekAgo),
	}

	a.log.Debug().
		Int("users", len(users)).
		Int("mood_entries", len(moods)).
		Int("conversations", len(convos)).
		Int("high_risk", len(risky)).
		Msg("analytics report computed")

	return report, nil
}

// RiskReport is the risk-assessment view: the sorted high-risk list, the
// active alert count and the templated intervention recommendations.
func (a *Aggregator) RiskReport(ctx context.Context, now time.Time) (*model.RiskReport, error) {
	report, err := a.ComputeReport(ctx, now)
	if err != nil {
		return nil, err
	}
	return &model.RiskReport{
		HighRiskUsers:   report.UserBehaviorPatterns.HighRiskUsers,
		CriticalAlerts:  report.CrisisMetrics.ActiveAlerts,
		Recommendations: Recommendations(report),
	}, nil
}

func moodTrends(users []*model.User, moods []*model.MoodEntry, byUser map[string][]*model.MoodEntry) model.MoodTrends {
	trends := model.MoodTrends{MoodDistribution: make(map[string]int, 10)}
	for i := 1; i <= 10; i++ {
		trends.MoodDistribution[strconv.Itoa(i)] = 0
	}

	if len(moods) > 0 {
		sum := 0
		for _, m := range moods {
			sum += m.MoodLevel
			if m.MoodLevel >= 1 && m.MoodLevel <= 10 {
				trends.MoodDistribution[strconv.Itoa(m.MoodLevel)]++
			}
		}
		trends.AverageMoodLevel = round1(float64(sum) / float64(len(moods)))
	}

	// These thresholds intentionally differ from the risk classifier's: they
	// feed separate dashboard widgets with shorter lookbacks.
	for _, u := range users {
		recent := byUser[u.UserID]
		if len(recent) > 3 {
			recent = recent[:3]
		}
		if len(recent) >= 2 && allAtMost(recent, 3) {
			trends.LowMoodUsers++
		}

		last2 := byUser[u.UserID]
		if len(last2) > 2 {
			last2 = last2[:2]
		}
		if len(last2) >= 1 && anyAtMost(last2, 2) {
			trends.CriticalMoodUsers++
		}
	}

	return trends
}

func conversationMetrics(users []*model.User, convos []*model.Conversation, convosByUser map[string][]*model.Conversation, messages []*model.Message, now time.Time) model.ConversationMetrics {
	metrics := model.ConversationMetrics{TotalConversations: len(convos)}

	msgsByConvo := make(map[string][]*model.Message, len(convos))
	for _, m := range messages {
		msgsByConvo[m.ConversationID] = append(msgsByConvo[m.ConversationID], m)
	}

	if len(convos) > 0 {
		total := 0
		for _, c := range convos {
			total += len(msgsByConvo[c.ConversationID])
		}
		metrics.AverageMessagesPerConversation = round1(float64(total) / float64(len(convos)))
	}

	// Session duration is estimated from the span between a conversation's
	// first and last message. Spans of two hours or more are treated as data
	// anomalies, not real sessions, and left out of the average.
	var totalDuration float64
	sessions := 0
	for _, c := range convos {
		msgs := msgsByConvo[c.ConversationID]
		if len(msgs) < 2 {
			continue
		}
		sorted := make([]*model.Message, len(msgs))
		copy(sorted, msgs)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.Before(sorted[j].CreatedAt) })

		duration := sorted[len(sorted)-1].CreatedAt.Sub(sorted[0].CreatedAt).Minutes()
		if duration < 120 {
			totalDuration += duration
			sessions++
		}
	}
	if sessions > 0 {
		metrics.AverageSessionDuration = round1(totalDuration / float64(sessions))
	}

	today := now.Local().Format("2006-01-02")
	for _, u := range users {
		count := 0
		for _, c := range convosByUser[u.UserID] {
			if c.CreatedAt.Local().Format("2006-01-02") == today {
				count++
			}
		}
		if count > 1 {
			metrics.MultipleSessionUsers++
		}
	}

	return metrics
}

func crisisMetrics(alerts []*model.CrisisAlert) model.CrisisMetrics {
	metrics := model.CrisisMetrics{
		AlertsByType:     make(map[string]int),
		AlertsBySeverity: make(map[string]int),
	}
	for _, a := range alerts {
		switch a.Status {
		case "new":
			metrics.ActiveAlerts++
		case "resolved":
			metrics.ResolvedAlerts++
		}
		metrics.AlertsByType[a.TriggerType]++
		metrics.AlertsBySeverity[a.Severity]++
	}
	return metrics
}

// groupMoodsByUser buckets entries per user, newest-first regardless of the
// input ordering.
func groupMoodsByUser(moods []*model.MoodEntry) map[string][]*model.MoodEntry {
	byUser := make(map[string][]*model.MoodEntry)
	for _, m := range moods {
		byUser[m.UserID] = append(byUser[m.UserID], m)
	}
	for _, entries := range byUser {
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].CreatedAt.After(entries[j].CreatedAt) })
	}
	return byUser
}

func groupConversationsByUser(convos []*model.Conversation) map[string][]*model.Conversation {
	byUser := make(map[string][]*model.Conversation)
	for _, c := range convos {
		byUser[c.UserID] = append(byUser[c.UserID], c)
	}
	for _, list := range byUser {
		sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	}
	return byUser
}

func anyAtMost(entries []*model.MoodEntry, max int) bool {
	for _, e := range entries {
		if e.MoodLevel <= max {
			return true
		}
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
