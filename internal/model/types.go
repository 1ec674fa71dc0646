package model

import "time"

// User represents an account in the system.
type User struct {
	UserID          string     `json:"userId"`
	Email           string     `json:"email"`
	FirstName       *string    `json:"firstName,omitempty"`
	LastName        *string    `json:"lastName,omitempty"`
	SelectedPersona string     `json:"selectedPersona"`
	IsAdmin         bool       `json:"isAdmin"`
	LastLoginAt     *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Conversation is a chat session between a user and a persona.
type Conversation struct {
	ConversationID string    `json:"conversationId"`
	UserID         string    `json:"userId"`
	Title          string    `json:"title"`
	PersonaID      string    `json:"personaId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Message is a single turn inside a conversation.
type Message struct {
	MessageID       string                 `json:"messageId"`
	ConversationID  string                 `json:"conversationId"`
	Role            string                 `json:"role"` // "user" or "assistant"
	Content         string                 `json:"content"`
	EmotionalTone   *string                `json:"emotionalTone,omitempty"`
	SentimentScore  *int                   `json:"sentimentScore,omitempty"` // 1-10
	Recommendations map[string]interface{} `json:"recommendations,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// MoodEntry is a user-submitted self-report of emotional state.
type MoodEntry struct {
	EntryID      string    `json:"entryId"`
	UserID       string    `json:"userId"`
	MoodLevel    int       `json:"moodLevel"`              // 1-10
	AnxietyLevel *int      `json:"anxietyLevel,omitempty"` // 1-5
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// JournalEntry is free-form writing, optionally prompted and theme-annotated.
type JournalEntry struct {
	EntryID         string    `json:"entryId"`
	UserID          string    `json:"userId"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	Prompt          *string   `json:"prompt,omitempty"`
	EmotionalThemes []string  `json:"emotionalThemes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Intervention is a wellness exercise assigned to a user.
type Intervention struct {
	InterventionID string     `json:"interventionId"`
	UserID         string     `json:"userId"`
	Type           string     `json:"type"` // breathing, cbt, meditation, music
	Title          string     `json:"title"`
	Duration       *int       `json:"duration,omitempty"` // minutes
	Completed      bool       `json:"completed"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// CrisisAlert is a flagged event requiring administrator review.
type CrisisAlert struct {
	AlertID     string                 `json:"alertId"`
	UserID      string                 `json:"userId"`
	Severity    string                 `json:"severity"` // low, medium, high, critical
	TriggerType string                 `json:"triggerType"`
	TriggerData map[string]interface{} `json:"triggerData,omitempty"`
	Status      string                 `json:"status"` // new, reviewed, resolved
	ReviewedBy  *string                `json:"reviewedBy,omitempty"`
	Notes       *string                `json:"notes,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	ReviewedAt  *time.Time             `json:"reviewedAt,omitempty"`
}

// ListMoodEntriesRequest captures filters used when listing mood entries.
type ListMoodEntriesRequest struct {
	UserID string
	Start  *time.Time
	End    *time.Time
	Limit  int
}
