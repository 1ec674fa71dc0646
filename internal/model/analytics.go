package model

import "time"

// Risk levels ordered by severity. RiskRank maps them to a sortable rank.
const (
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

// RiskRank returns the numeric severity rank for a risk level.
func RiskRank(level string) int {
	switch level {
	case RiskCritical:
		return 3
	case RiskHigh:
		return 2
	case RiskMedium:
		return 1
	}
	return 0
}

// RiskAssessment is the derived risk profile for one user. It is computed on
// demand and never persisted.
type RiskAssessment struct {
	UserID       string     `json:"userId"`
	RiskLevel    string     `json:"riskLevel"` // medium, high, critical
	Factors      []string   `json:"factors"`
	LastActivity *time.Time `json:"lastActivity,omitempty"`
}

// EngagementLevels tallies users into weekly-activity tiers.
type EngagementLevels struct {
	High   int `json:"high"`   // >=5 activities in the window
	Medium int `json:"medium"` // 2-4 activities
	Low    int `json:"low"`    // <2 activities
}

// ActiveUsers counts users whose last login falls within each window.
type ActiveUsers struct {
	Daily   int `json:"daily"`
	Weekly  int `json:"weekly"`
	Monthly int `json:"monthly"`
}

// MoodTrends summarizes mood entries across all users.
type MoodTrends struct {
	AverageMoodLevel  float64        `json:"averageMoodLevel"`
	LowMoodUsers      int            `json:"lowMoodUsers"`      // last 3 entries all <=3, at least 2 entries
	CriticalMoodUsers int            `json:"criticalMoodUsers"` // any of last 2 entries <=2
	MoodDistribution  map[string]int `json:"moodDistribution"`  // level "1".."10" -> count
}

// ConversationMetrics summarizes conversations and messages.
type ConversationMetrics struct {
	AverageSessionDuration         float64 `json:"averageSessionDuration"` // minutes
	TotalConversations             int     `json:"totalConversations"`
	AverageMessagesPerConversation float64 `json:"averageMessagesPerConversation"`
	MultipleSessionUsers           int     `json:"multipleSessionUsers"` // >1 conversation today
}

// CrisisMetrics summarizes crisis alerts.
type CrisisMetrics struct {
	ActiveAlerts     int            `json:"activeAlerts"`
	AlertsByType     map[string]int `json:"alertsByType"`
	AlertsBySeverity map[string]int `json:"alertsBySeverity"`
	ResolvedAlerts   int            `json:"resolvedAlerts"`
}

// UserBehaviorPatterns carries the derived per-user classifications.
type UserBehaviorPatterns struct {
	HighRiskUsers    []RiskAssessment `json:"highRiskUsers"`
	EngagementLevels EngagementLevels `json:"engagementLevels"`
}

// AdminAnalytics is the full aggregate report, valid only for the instant it
// was computed.
type AdminAnalytics struct {
	TotalUsers           int                  `json:"totalUsers"`
	ActiveUsers          ActiveUsers          `json:"activeUsers"`
	MoodTrends           MoodTrends           `json:"moodTrends"`
	ConversationMetrics  ConversationMetrics  `json:"conversationMetrics"`
	CrisisMetrics        CrisisMetrics        `json:"crisisMetrics"`
	UserBehaviorPatterns UserBehaviorPatterns `json:"userBehaviorPatterns"`
}

// Recommendation is a templated, prioritized action item for administrators.
type Recommendation struct {
	Priority    string   `json:"priority"` // high, medium, low
	Type        string   `json:"type"`     // crisis_intervention, mood_intervention, engagement_boost
	Message     string   `json:"message"`
	ActionItems []string `json:"actionItems"`
}

// RiskReport is the payload of the admin risk-assessment endpoint.
type RiskReport struct {
	HighRiskUsers   []RiskAssessment `json:"highRiskUsers"`
	CriticalAlerts  int              `json:"criticalAlerts"`
	Recommendations []Recommendation `json:"interventionRecommendations"`
}

// WeeklyStats is a single user's activity summary for the dashboard.
type WeeklyStats struct {
	Conversations          int `json:"conversations"`
	MoodCheckIns           int `json:"moodCheckIns"`
	JournalEntries         int `json:"journalEntries"`
	CompletedInterventions int `json:"completedInterventions"`
	Streak                 int `json:"streak"`
}
