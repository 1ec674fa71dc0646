package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/moodmate/backend/internal/model"
	"github.com/moodmate/backend/internal/personas"
)

// scriptedProvider returns a fixed completion (or error) and records every
// request it receives.
type scriptedProvider struct {
	out      string
	err      error
	requests []CompletionRequest
}

func (p *scriptedProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	p.requests = append(p.requests, req)
	return p.out, p.err
}

func newTestService(p Provider) *Service {
	return NewService(p, zerolog.Nop())
}

func TestAnalyzeTone(t *testing.T) {
	svc := newTestService(&scriptedProvider{out: `{"tone":"anxious","score":8}`})
	tone, score := svc.AnalyzeTone(context.Background(), "I can't stop worrying")
	if tone != "anxious" || score != 8 {
		t.Fatalf("got (%s, %d), want (anxious, 8)", tone, score)
	}
}

func TestAnalyzeTone_ClampsScore(t *testing.T) {
	svc := newTestService(&scriptedProvider{out: `{"tone":"calm","score":15}`})
	_, score := svc.AnalyzeTone(context.Background(), "all good")
	if score != 10 {
		t.Fatalf("expected score clamped to 10, got %d", score)
	}
}

func TestAnalyzeTone_StripsFences(t *testing.T) {
	svc := newTestService(&scriptedProvider{out: "```json\n{\"tone\":\"sad\",\"score\":6}\n```"})
	tone, score := svc.AnalyzeTone(context.Background(), "rough day")
	if tone != "sad" || score != 6 {
		t.Fatalf("got (%s, %d), want (sad, 6)", tone, score)
	}
}

func TestAnalyzeTone_DegradesToNeutral(t *testing.T) {
	for name, p := range map[string]Provider{
		"provider error": &scriptedProvider{err: errors.New("boom")},
		"non-json":       &scriptedProvider{out: "sorry, I cannot help with that"},
	} {
		svc := newTestService(p)
		tone, score := svc.AnalyzeTone(context.Background(), "hello")
		if tone != "neutral" || score != 5 {
			t.Fatalf("%s: got (%s, %d), want (neutral, 5)", name, tone, score)
		}
	}
}

func TestGenerateReply_Fallback(t *testing.T) {
	svc := newTestService(&scriptedProvider{err: errors.New("boom")})
	reply := svc.GenerateReply(context.Background(), personas.ByID("sage"), nil, "I feel stuck")

	if reply.Content != "I'm here to support you. Could you tell me more about how you're feeling?" {
		t.Fatalf("unexpected fallback content: %q", reply.Content)
	}
	if reply.EmotionalTone != "neutral" || reply.SentimentScore != 5 {
		t.Fatalf("expected neutral/5 tone, got %s/%d", reply.EmotionalTone, reply.SentimentScore)
	}
	if reply.Recommendations == nil {
		t.Fatal("expected fallback recommendations")
	}
}

func TestGenerateReply_HistoryWindow(t *testing.T) {
	p := &scriptedProvider{out: "Hello there"}
	svc := newTestService(p)

	history := make([]*model.Message, 15)
	for i := range history {
		history[i] = &model.Message{Role: "user", Content: "turn"}
	}
	svc.GenerateReply(context.Background(), personas.ByID("sage"), history, "latest message")

	// The reply call is the one with a 300 token cap.
	var replyReq *CompletionRequest
	for i := range p.requests {
		if p.requests[i].MaxTokens == 300 {
			replyReq = &p.requests[i]
		}
	}
	if replyReq == nil {
		t.Fatal("reply request not issued")
	}
	// system + last 10 history turns + new user message
	if len(replyReq.Messages) != 12 {
		t.Fatalf("expected 12 prompt messages, got %d", len(replyReq.Messages))
	}
	if got := replyReq.Messages[len(replyReq.Messages)-1].Content; got != "latest message" {
		t.Fatalf("expected user message last, got %q", got)
	}
}

func TestDetectCrisis(t *testing.T) {
	svc := newTestService(&scriptedProvider{out: `{"crisis_detected":true,"severity":"high"}`})
	check := svc.DetectCrisis(context.Background(), "I can't go on")
	if !check.Detected || check.Severity != "high" {
		t.Fatalf("got %+v, want detected/high", check)
	}
}

func TestDetectCrisis_ErrsTowardNotFlagging(t *testing.T) {
	svc := newTestService(&scriptedProvider{err: errors.New("boom")})
	check := svc.DetectCrisis(context.Background(), "I can't go on")
	if check.Detected {
		t.Fatal("provider failure must not flag a crisis")
	}
	if check.Severity != "low" {
		t.Fatalf("expected low severity, got %s", check.Severity)
	}
}

func TestJournalPrompts_Fallback(t *testing.T) {
	svc := newTestService(&scriptedProvider{err: errors.New("boom")})
	prompts := svc.JournalPrompts(context.Background(), nil)
	if len(prompts) != 1 || prompts[0].Category != "gratitude" {
		t.Fatalf("unexpected fallback prompts: %+v", prompts)
	}
}

func TestJournalPrompts_SeedsLatestMood(t *testing.T) {
	p := &scriptedProvider{out: `{"prompts":[{"prompt":"p","category":"self-reflection","reasoning":"r"}]}`}
	svc := newTestService(p)

	anxiety := 4
	svc.JournalPrompts(context.Background(), &model.MoodEntry{MoodLevel: 3, AnxietyLevel: &anxiety})

	if len(p.requests) != 1 {
		t.Fatalf("expected one provider call, got %d", len(p.requests))
	}
	sys := p.requests[0].Messages[0].Content
	if !strings.Contains(sys, "mood level is 3/10") || !strings.Contains(sys, "anxiety level 4/5") {
		t.Fatalf("prompt not seeded with mood context: %q", sys)
	}
}

func TestAnalyzeJournal_Fallback(t *testing.T) {
	svc := newTestService(&scriptedProvider{out: "not json"})
	analysis := svc.AnalyzeJournal(context.Background(), "today was fine")
	if analysis.Sentiment != "neutral" || len(analysis.Themes) != 0 {
		t.Fatalf("unexpected fallback analysis: %+v", analysis)
	}
}

func TestFallbackRecommendations(t *testing.T) {
	rec := FallbackRecommendations("Anxious")
	if rec["youtube"] == nil || rec["spotify"] == nil {
		t.Fatalf("expected youtube and spotify entries, got %+v", rec)
	}

	// Unknown tones share the stress catalog entry.
	unknown := FallbackRecommendations("bewildered")
	yt, ok := unknown["youtube"].(map[string]interface{})
	if !ok || yt["category"] != "meditation" {
		t.Fatalf("unexpected default recommendation: %+v", unknown)
	}
}
