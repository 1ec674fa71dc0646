package personas

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCatalogIntegrity(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("catalog is empty")
	}

	seen := make(map[string]bool, len(all))
	for _, p := range all {
		if p.ID == "" || p.Name == "" || p.SystemPrompt == "" || p.WelcomeMessage == "" {
			t.Fatalf("persona %q has missing fields", p.ID)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate persona id %q", p.ID)
		}
		seen[p.ID] = true
	}
	if !seen[DefaultID] {
		t.Fatalf("default persona %q not in catalog", DefaultID)
	}
}

func TestByID_FallsBackToDefault(t *testing.T) {
	if got := ByID("sage"); got.ID != "sage" {
		t.Fatalf("expected sage, got %s", got.ID)
	}
	if got := ByID("no-such-persona"); got.ID != DefaultID {
		t.Fatalf("expected default %s for unknown id, got %s", DefaultID, got.ID)
	}
}

func TestExists(t *testing.T) {
	if !Exists("alex") {
		t.Fatal("expected alex to exist")
	}
	if Exists("no-such-persona") {
		t.Fatal("expected unknown id to not exist")
	}
}

func TestSystemPromptNotSerialized(t *testing.T) {
	b, err := json.Marshal(ByID(DefaultID))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "systemPrompt") || strings.Contains(string(b), "You are") {
		t.Fatal("system prompt must not leak into API responses")
	}
}
