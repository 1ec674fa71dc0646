package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/moodmate/backend/internal/model"
	"github.com/moodmate/backend/internal/personas"
)

// Reply is the assistant's answer to a user message, annotated with the
// detected tone of the user's message.
type Reply struct {
	Content         string
	EmotionalTone   string
	SentimentScore  int // 1-10, 10 is most distressed
	Recommendations map[string]interface{}
}

// JournalAnalysis is the AI's read of a journal entry.
type JournalAnalysis struct {
	Themes    []string `json:"themes"`
	Sentiment string   `json:"sentiment"`
	Insights  []string `json:"insights"`
}

// JournalPrompt is one suggested writing prompt.
type JournalPrompt struct {
	Prompt    string `json:"prompt"`
	Category  string `json:"category"`
	Reasoning string `json:"reasoning"`
}

// CrisisCheck is the result of scanning a message for crisis indicators.
type CrisisCheck struct {
	Detected bool   `json:"crisis_detected"`
	Severity string `json:"severity"` // low, medium, high, critical
}

// Service composes the completion provider into counselor operations. Every
// operation returns a usable result even when the provider fails.
type Service struct {
	provider Provider
	log      zerolog.Logger
}

func NewService(p Provider, log zerolog.Logger) *Service {
	return &Service{provider: p, log: log}
}

// GenerateReply produces the assistant's next turn for a conversation, in
// the voice of the given persona. The last ten history turns are included as
// context.
func (s *Service) GenerateReply(ctx context.Context, persona personas.Persona, history []*model.Message, userMessage string) Reply {
	tone, score := s.AnalyzeTone(ctx, userMessage)

	system := persona.SystemPrompt + "\n\n" +
		"Core Guidelines:\n" +
		"- Never provide medical or psychiatric advice\n" +
		"- Focus on emotional support and self-care strategies\n" +
		"- If someone expresses suicidal thoughts or crisis, encourage them to contact emergency services or crisis hotlines\n" +
		"- Keep responses conversational and supportive, not clinical\n\n" +
		fmt.Sprintf("The user's current emotional tone appears to be: %s\n\n", tone) +
		fmt.Sprintf("Remember to stay true to your persona as %s, %s.", persona.Name, persona.Title)

	msgs := []ChatMessage{{Role: "system", Content: system}}
	turns := history
	if len(turns) > 10 {
		turns = turns[len(turns)-10:]
	}
	for _, m := range turns {
		msgs = append(msgs, ChatMessage{Role: m.Role, Content: m.Content})
	}
	msgs = append(msgs, ChatMessage{Role: "user", Content: userMessage})

	content, err := s.provider.Complete(ctx, CompletionRequest{
		Messages:    msgs,
		MaxTokens:   300,
		Temperature: 0.7,
	})
	if err != nil {
		s.log.Error().Err(err).Str("persona", persona.ID).Msg("reply generation failed, using fallback")
		content = "I'm here to support you. Could you tell me more about how you're feeling?"
	}

	return Reply{
		Content:         content,
		EmotionalTone:   tone,
		SentimentScore:  score,
		Recommendations: s.Recommendations(ctx, tone, userMessage),
	}
}

// AnalyzeTone scores the emotional tone of a text on a 1-10 distress scale.
func (s *Service) AnalyzeTone(ctx context.Context, text string) (string, int) {
	out, err := s.provider.Complete(ctx, CompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: "Analyze the emotional tone of the text. Respond with JSON in this format: " +
				`{"tone": "emotion_name", "score": number_1_to_10}. ` +
				"Score represents emotional intensity/distress level where 1 is very positive/calm and 10 is extremely distressed/negative."},
			{Role: "user", Content: text},
		},
		JSONMode: true,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("tone analysis failed")
		return "neutral", 5
	}

	var parsed struct {
		Tone  string `json:"tone"`
		Score int    `json:"score"`
	}
	if err := json.Unmarshal([]byte(stripFences(out)), &parsed); err != nil || parsed.Tone == "" {
		return "neutral", 5
	}
	if parsed.Score < 1 {
		parsed.Score = 1
	}
	if parsed.Score > 10 {
		parsed.Score = 10
	}
	return parsed.Tone, parsed.Score
}

// AnalyzeJournal extracts emotional themes and insights from a journal entry.
func (s *Service) AnalyzeJournal(ctx context.Context, content string) JournalAnalysis {
	out, err := s.provider.Complete(ctx, CompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: "Analyze this journal entry for emotional themes and insights. Respond with JSON in this format: " +
				`{"themes": ["theme1"], "sentiment": "overall_sentiment", "insights": ["insight1"]}. ` +
				"Focus on emotional wellness themes like anxiety, depression, stress, gratitude, growth, relationships, work-life balance, self-care."},
			{Role: "user", Content: content},
		},
		JSONMode: true,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("journal analysis failed")
		return JournalAnalysis{Sentiment: "neutral"}
	}

	var parsed JournalAnalysis
	if err := json.Unmarshal([]byte(stripFences(out)), &parsed); err != nil {
		return JournalAnalysis{Sentiment: "neutral"}
	}
	if parsed.Sentiment == "" {
		parsed.Sentiment = "neutral"
	}
	return parsed
}

// JournalPrompts generates personalized writing prompts, seeded with the
// user's latest mood when available.
func (s *Service) JournalPrompts(ctx context.Context, latestMood *model.MoodEntry) []JournalPrompt {
	prompt := "Generate personalized journal prompts for emotional wellness and self-reflection."
	if latestMood != nil {
		prompt += fmt.Sprintf(" The user's recent mood level is %d/10", latestMood.MoodLevel)
		if latestMood.AnxietyLevel != nil {
			prompt += fmt.Sprintf(" with anxiety level %d/5", *latestMood.AnxietyLevel)
		}
		prompt += "."
	}

	out, err := s.provider.Complete(ctx, CompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: prompt + " Generate 3 thoughtful journal prompts. Respond with JSON in this format: " +
				`{"prompts": [{"prompt": "prompt_text", "category": "category_name", "reasoning": "why_this_prompt_is_helpful"}]}. ` +
				"Categories can include: gratitude, self-reflection, goal-setting, emotional-processing, stress-management, relationships, personal-growth."},
			{Role: "user", Content: "Please generate personalized journal prompts for me."},
		},
		JSONMode: true,
	})
	if err == nil {
		var parsed struct {
			Prompts []JournalPrompt `json:"prompts"`
		}
		if json.Unmarshal([]byte(stripFences(out)), &parsed) == nil && len(parsed.Prompts) > 0 {
			return parsed.Prompts
		}
	} else {
		s.log.Warn().Err(err).Msg("journal prompt generation failed")
	}

	return []JournalPrompt{{
		Prompt:    "What are three things you're grateful for today, and how did they make you feel?",
		Category:  "gratitude",
		Reasoning: "Gratitude practice can improve mood and emotional well-being",
	}}
}

// DetectCrisis scans a message for crisis indicators. It errs toward not
// flagging when the provider is unavailable; the analytics keyword scan is
// the independent safety net.
func (s *Service) DetectCrisis(ctx context.Context, text string) CrisisCheck {
	out, err := s.provider.Complete(ctx, CompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: "Analyze this text for signs of mental health crisis, including suicidal ideation or self-harm " +
				"mentions, expressions of hopelessness or despair, threats to harm others, or severe mental health crisis indicators. " +
				`Respond with JSON: {"crisis_detected": boolean, "severity": "low|medium|high|critical"}`},
			{Role: "user", Content: text},
		},
		JSONMode: true,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("crisis detection failed")
		return CrisisCheck{Severity: "low"}
	}

	var parsed CrisisCheck
	if err := json.Unmarshal([]byte(stripFences(out)), &parsed); err != nil {
		return CrisisCheck{Severity: "low"}
	}
	if parsed.Severity == "" {
		parsed.Severity = "low"
	}
	return parsed
}

// Recommendations suggests one YouTube and one Spotify resource matched to
// the user's emotional tone, with a static catalog as fallback.
func (s *Service) Recommendations(ctx context.Context, emotionalTone, userMessage string) map[string]interface{} {
	prompt := fmt.Sprintf("Based on someone feeling %q and their message: %q, provide exactly 1 YouTube recommendation and 1 Spotify "+
		"recommendation that would be therapeutically beneficial. Focus on evidence-based content like guided meditations, therapy "+
		"techniques, calming music, or educational content. Format as JSON: "+
		`{"youtube": {"title": "...", "description": "...", "searchQuery": "...", "category": "meditation|therapy|music|education"}, `+
		`"spotify": {"title": "...", "description": "...", "searchQuery": "...", "type": "playlist|podcast|album"}}`,
		emotionalTone, userMessage)

	out, err := s.provider.Complete(ctx, CompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: "You are a mental health resource curator. Provide only legitimate, therapeutic content " +
				"recommendations from reputable sources. Respond with valid JSON only, no markdown formatting."},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   500,
		Temperature: 0.3,
		JSONMode:    true,
	})
	if err == nil {
		var parsed map[string]interface{}
		if json.Unmarshal([]byte(stripFences(out)), &parsed) == nil && len(parsed) > 0 {
			return parsed
		}
	} else {
		s.log.Warn().Err(err).Msg("recommendation generation failed")
	}

	return FallbackRecommendations(emotionalTone)
}

// FallbackRecommendations returns a static resource pairing for a tone.
func FallbackRecommendations(emotionalTone string) map[string]interface{} {
	fallbacks := map[string]map[string]interface{}{
		"anxious": {
			"youtube": map[string]interface{}{"title": "10-Minute Anxiety Relief Meditation", "description": "Guided breathing to calm anxiety", "searchQuery": "anxiety meditation guided breathing", "category": "meditation"},
			"spotify": map[string]interface{}{"title": "Anxiety & Stress Relief", "description": "Calming instrumental music", "searchQuery": "anxiety relief music playlist", "type": "playlist"},
		},
		"sad": {
			"youtube": map[string]interface{}{"title": "Loving-Kindness Meditation", "description": "Self-compassion for difficult emotions", "searchQuery": "loving kindness meditation sadness", "category": "meditation"},
			"spotify": map[string]interface{}{"title": "Peaceful Piano", "description": "Gentle piano for emotional healing", "searchQuery": "peaceful piano calm music", "type": "playlist"},
		},
		"stressed": {
			"youtube": map[string]interface{}{"title": "Progressive Muscle Relaxation", "description": "Physical tension release", "searchQuery": "progressive muscle relaxation stress", "category": "meditation"},
			"spotify": map[string]interface{}{"title": "Deep Focus", "description": "Ambient sounds for concentration", "searchQuery": "focus music stress relief", "type": "playlist"},
		},
	}
	if rec, ok := fallbacks[strings.ToLower(emotionalTone)]; ok {
		return rec
	}
	return fallbacks["stressed"]
}

// stripFences removes markdown code fences some models wrap around JSON.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
