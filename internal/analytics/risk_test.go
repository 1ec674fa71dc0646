package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodmate/backend/internal/model"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

// moodsAt builds newest-first entries for userID: levels[0] is the most
// recent, one hour apart.
func moodsAt(userID string, now time.Time, levels ...int) []*model.MoodEntry {
	entries := make([]*model.MoodEntry, 0, len(levels))
	for i, lvl := range levels {
		entries = append(entries, &model.MoodEntry{
			EntryID:   "m-" + userID + "-" + string(rune('a'+i)),
			UserID:    userID,
			MoodLevel: lvl,
			CreatedAt: now.Add(-time.Duration(i+1) * time.Hour),
		})
	}
	return entries
}

func convAt(userID string, at time.Time) *model.Conversation {
	return &model.Conversation{ConversationID: "c-" + userID, UserID: userID, CreatedAt: at}
}

func TestClassifyRisk_CriticalMoodPattern(t *testing.T) {
	now := time.Now()
	user := &model.User{UserID: "u1"}

	ra := ClassifyRisk(user, moodsAt("u1", now, 2, 2, 2), nil, now)
	require.NotNil(t, ra)
	assert.Equal(t, model.RiskCritical, ra.RiskLevel)
	assert.Contains(t, ra.Factors, "Critical mood pattern (≤2)")
	// No conversations in the past week plus recorded moods also flags
	// withdrawal, but the level stays critical.
	assert.Contains(t, ra.Factors, "Social withdrawal")
}

func TestClassifyRisk_ConsistentlyLowMood(t *testing.T) {
	now := time.Now()
	user := &model.User{UserID: "u1"}
	convos := []*model.Conversation{convAt("u1", now.Add(-time.Hour))}

	ra := ClassifyRisk(user, moodsAt("u1", now, 3, 3, 3), convos, now)
	require.NotNil(t, ra)
	assert.Equal(t, model.RiskHigh, ra.RiskLevel)
	assert.Equal(t, []string{"Consistently low mood (≤3)"}, ra.Factors)
}

func TestClassifyRisk_CrisisKeywords(t *testing.T) {
	now := time.Now()
	user := &model.User{UserID: "u1"}
	convos := []*model.Conversation{convAt("u1", now.Add(-time.Hour))}

	moods := moodsAt("u1", now, 7)
	moods[0].Notes = strPtr("Feeling HOPELESS about everything lately")

	ra := ClassifyRisk(user, moods, convos, now)
	require.NotNil(t, ra)
	assert.Equal(t, model.RiskCritical, ra.RiskLevel)
	assert.Equal(t, []string{"Crisis keywords detected"}, ra.Factors)
}

func TestClassifyRisk_MoodSwings(t *testing.T) {
	now := time.Now()
	user := &model.User{UserID: "u1"}
	convos := []*model.Conversation{convAt("u1", now.Add(-time.Hour))}

	ra := ClassifyRisk(user, moodsAt("u1", now, 9, 1, 9, 1), convos, now)
	require.NotNil(t, ra)
	assert.Equal(t, model.RiskHigh, ra.RiskLevel)
	assert.Equal(t, []string{"Extreme mood swings"}, ra.Factors)
}

func TestClassifyRisk_NoFactors(t *testing.T) {
	now := time.Now()
	user := &model.User{UserID: "u1"}
	convos := []*model.Conversation{convAt("u1", now.Add(-time.Hour))}

	assert.Nil(t, ClassifyRisk(user, moodsAt("u1", now, 7, 8), convos, now))
	assert.Nil(t, ClassifyRisk(user, nil, nil, now))
}

func TestClassifyRisk_OnlyRecentEntriesDrivePatterns(t *testing.T) {
	now := time.Now()
	user := &model.User{UserID: "u1"}
	convos := []*model.Conversation{convAt("u1", now.Add(-time.Hour))}

	// Old low entries beyond the five most recent must not trigger the
	// pattern rules.
	assert.Nil(t, ClassifyRisk(user, moodsAt("u1", now, 8, 8, 8, 7, 7, 2, 2, 2), convos, now))
}

func TestClassifyRisk_LastActivity(t *testing.T) {
	now := time.Now()
	login := now.Add(-48 * time.Hour)
	user := &model.User{UserID: "u1", LastLoginAt: timePtr(login)}

	moods := moodsAt("u1", now, 2, 2, 2)
	ra := ClassifyRisk(user, moods, nil, now)
	require.NotNil(t, ra)
	require.NotNil(t, ra.LastActivity)
	assert.Equal(t, moods[0].CreatedAt, *ra.LastActivity)

	// Without moods the classifier can still fire on crisis notes; with
	// neither moods nor conversations it falls back to the last login.
	withNote := moodsAt("u1", now, 7)
	withNote[0].Notes = strPtr("worthless")
	ra = ClassifyRisk(user, withNote, nil, now)
	require.NotNil(t, ra)
	assert.Equal(t, withNote[0].CreatedAt, *ra.LastActivity)
}

func TestSortByRisk_StableDescending(t *testing.T) {
	assessments := []model.RiskAssessment{
		{UserID: "a", RiskLevel: model.RiskHigh},
		{UserID: "b", RiskLevel: model.RiskCritical},
		{UserID: "c", RiskLevel: model.RiskHigh},
		{UserID: "d", RiskLevel: model.RiskMedium},
		{UserID: "e", RiskLevel: model.RiskCritical},
	}
	SortByRisk(assessments)

	got := make([]string, 0, len(assessments))
	for _, ra := range assessments {
		got = append(got, ra.UserID)
	}
	assert.Equal(t, []string{"b", "e", "a", "c", "d"}, got)
}
