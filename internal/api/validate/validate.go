package validate

import (
	"fmt"
	"regexp"
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// interventionTypes are the supported wellness exercise kinds.
var interventionTypes = map[string]bool{
	"breathing":  true,
	"cbt":        true,
	"meditation": true,
	"music":      true,
}

func Email(v string) error {
	if v == "" {
		return fmt.Errorf("email is required")
	}
	if len(v) > 320 || !emailRx.MatchString(v) {
		return fmt.Errorf("invalid email")
	}
	return nil
}

func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func MaxLen(field string, v *string, limit int) error {
	if v == nil {
		return nil
	}
	if len(*v) > limit {
		return fmt.Errorf("%s exceeds %d characters", field, limit)
	}
	return nil
}

// -------- Request specific helpers ----------

// MoodEntry validates a mood self-report. moodLevel is a 1-10 scale,
// anxietyLevel an optional 1-5 scale.
func MoodEntry(moodLevel int, anxietyLevel *int, notes *string) error {
	if moodLevel < 1 || moodLevel > 10 {
		return fmt.Errorf("moodLevel must be between 1 and 10")
	}
	if anxietyLevel != nil && (*anxietyLevel < 1 || *anxietyLevel > 5) {
		return fmt.Errorf("anxietyLevel must be between 1 and 5")
	}
	if err := MaxLen("notes", notes, 2000); err != nil {
		return err
	}
	return nil
}

// JournalEntry validates input for creating a journal entry.
func JournalEntry(title, content string) error {
	if err := NonEmpty("title", title); err != nil {
		return err
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds 200 characters")
	}
	if err := NonEmpty("content", content); err != nil {
		return err
	}
	if len(content) > 20000 {
		return fmt.Errorf("content exceeds 20000 characters")
	}
	return nil
}

// ChatMessage validates a user message before it enters a conversation.
func ChatMessage(content string) error {
	if err := NonEmpty("content", content); err != nil {
		return err
	}
	if len(content) > 8000 {
		return fmt.Errorf("content exceeds 8000 characters")
	}
	return nil
}

// Intervention validates input for creating a wellness intervention.
func Intervention(ivType, title string, duration *int) error {
	if !interventionTypes[ivType] {
		return fmt.Errorf("type must be one of breathing, cbt, meditation, music")
	}
	if err := NonEmpty("title", title); err != nil {
		return err
	}
	if duration != nil && (*duration < 1 || *duration > 240) {
		return fmt.Errorf("duration must be between 1 and 240 minutes")
	}
	return nil
}

// CrisisAlertUpdate validates an admin review update.
func CrisisAlertUpdate(status string) error {
	switch status {
	case "new", "reviewed", "resolved":
		return nil
	}
	return fmt.Errorf("status must be one of new, reviewed, resolved")
}
