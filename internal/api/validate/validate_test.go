package validate

import (
	"strings"
	"testing"
)

func TestMoodEntry_Bounds(t *testing.T) {
	if err := MoodEntry(0, nil, nil); err == nil {
		t.Fatalf("expected error for moodLevel 0")
	}
	if err := MoodEntry(11, nil, nil); err == nil {
		t.Fatalf("expected error for moodLevel 11")
	}
	if err := MoodEntry(5, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	anx := 6
	if err := MoodEntry(5, &anx, nil); err == nil {
		t.Fatalf("expected error for anxietyLevel 6")
	}
}

func TestMoodEntry_NotesTooLong(t *testing.T) {
	notes := strings.Repeat("x", 2001)
	if err := MoodEntry(5, nil, &notes); err == nil {
		t.Fatalf("expected error for oversized notes")
	}
}

func TestJournalEntry_RequiresTitleAndContent(t *testing.T) {
	if err := JournalEntry("", "content"); err == nil {
		t.Fatalf("expected error for empty title")
	}
	if err := JournalEntry("title", ""); err == nil {
		t.Fatalf("expected error for empty content")
	}
	if err := JournalEntry("title", "content"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIntervention_Type(t *testing.T) {
	if err := Intervention("yoga", "stretch", nil); err == nil {
		t.Fatalf("expected error for unknown intervention type")
	}
	if err := Intervention("breathing", "box breathing", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCrisisAlertUpdate_Status(t *testing.T) {
	if err := CrisisAlertUpdate("closed"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
	if err := CrisisAlertUpdate("resolved"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEmail(t *testing.T) {
	if err := Email("bad email"); err == nil {
		t.Fatalf("expected error for invalid email")
	}
	if err := Email("user@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
