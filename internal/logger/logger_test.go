package logger

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

// withCapturedStdout runs f with os.Stdout swapped for a pipe and returns
// everything written to it.
func withCapturedStdout(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	f()

	_ = w.Close()
	out, _ := io.ReadAll(r)
	_ = r.Close()
	return string(out)
}

func TestNew_ErrorEventCarriesServiceAndStack(t *testing.T) {
	out := withCapturedStdout(t, func() {
		log := New("wellness-service")
		log.Error().Stack().Err(errors.New("store unreachable")).Msg("health probe failed")
	})

	var line string
	for _, l := range strings.Split(out, "\n") {
		if strings.TrimSpace(l) != "" {
			line = l
		}
	}
	if line == "" {
		t.Fatal("no log output captured")
	}

	var event map[string]interface{}
	if err := json.Unmarshal([]byte(line), &event); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, line)
	}
	if event["service"] != "wellness-service" {
		t.Fatalf("expected service tag, got %v", event["service"])
	}
	if event["level"] != "error" {
		t.Fatalf("expected error level, got %v", event["level"])
	}
	if _, ok := event["stack"]; !ok {
		t.Fatalf("expected a stack field: %s", line)
	}
}
