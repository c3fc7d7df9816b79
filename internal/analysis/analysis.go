// Package analysis converts free journal text plus a self-reported mood
// rating into a structured sentiment result, and produces supportive chat
// replies. A configured provider (OpenAI) handles the real-model path; when
// no credential is present, or the provider fails, the deterministic keyword
// fallback keeps the product fully functional.
package analysis

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"
)

// ErrEmptyText is returned when the input text is empty or whitespace-only.
// It is the only analysis failure surfaced to callers; everything else
// degrades to the fallback heuristic.
var ErrEmptyText = errors.New("text is required")

// demoNote annotates fallback results produced because the real-model path
// failed, so the UI can optionally inform the user.
const demoNote = "Demo mode: Connect OpenAI API for full AI features"

// defaultMoodRating substitutes for a missing or out-of-range self-rating.
const defaultMoodRating = 5

// Result is the structured analysis of one journal entry.
type Result struct {
	Sentiment       string   `json:"sentiment"`
	Confidence      float64  `json:"confidence"`
	Emotions        []string `json:"emotions"`
	MoodScore       float64  `json:"moodScore"`
	KeyPhrases      []string `json:"keyPhrases"`
	Insights        string   `json:"insights"`
	Recommendations []string `json:"recommendations"`
	IsDemo          bool     `json:"isDemo,omitempty"`
	Note            string   `json:"error,omitempty"`
}

// ChatResult is a supportive companion reply.
type ChatResult struct {
	Response string `json:"chatResponse"`
	IsDemo   bool   `json:"isDemo,omitempty"`
}

// Provider is the real-model collaborator. Implemented by OpenAIProvider;
// tests substitute mocks.
type Provider interface {
	Analyze(ctx context.Context, text string, moodRating int) (Result, error)
	Chat(ctx context.Context, message string) (string, error)
}

// Service routes analysis requests to the provider when one is configured
// and to the deterministic fallback otherwise. Provider failures degrade to
// the fallback rather than propagating.
type Service struct {
	provider Provider // nil means demo mode
	logger   *zap.Logger
	pick     func(n int) int // random index source for canned replies
}

// NewService creates a Service. Pass a nil provider to force demo mode.
func NewService(provider Provider, logger *zap.Logger) *Service {
	return NewServiceWithRand(provider, logger, rand.IntN)
}

// NewServiceWithRand creates a Service with a custom random index source so
// tests can fix the canned-reply draw.
func NewServiceWithRand(provider Provider, logger *zap.Logger, pick func(n int) int) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, logger: logger, pick: pick}
}

// DemoMode reports whether the service runs without a configured provider.
func (s *Service) DemoMode() bool {
	return s.provider == nil
}

// Analyze produces a structured sentiment result for the given text and
// self-rating. Ratings outside 1–10 (including the zero value for "not
// provided") are normalized to the default. The returned error is non-nil
// only for empty input.
func (s *Service) Analyze(ctx context.Context, text string, moodRating int) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptyText
	}
	moodRating = normalizeRating(moodRating)

	if s.provider == nil {
		r := fallbackAnalysis(text, moodRating)
		return r, nil
	}

	r, err := s.provider.Analyze(ctx, text, moodRating)
	if err != nil {
		s.logger.Warn("provider analysis failed, falling back to heuristic", zap.Error(err))
		fb := fallbackAnalysis(text, moodRating)
		fb.Note = demoNote
		return fb, nil
	}
	return sanitizeResult(r, moodRating), nil
}

// Chat produces a supportive companion reply. The returned error is non-nil
// only for empty input.
func (s *Service) Chat(ctx context.Context, message string) (ChatResult, error) {
	if strings.TrimSpace(message) == "" {
		return ChatResult{}, ErrEmptyText
	}

	if s.provider == nil {
		return ChatResult{Response: s.cannedReply(), IsDemo: true}, nil
	}

	reply, err := s.provider.Chat(ctx, message)
	if err != nil {
		s.logger.Warn("provider chat failed, using canned reply", zap.Error(err))
		return ChatResult{Response: s.cannedReply(), IsDemo: true}, nil
	}
	return ChatResult{Response: reply}, nil
}

func (s *Service) cannedReply() string {
	return chatFallbackResponses[s.pick(len(chatFallbackResponses))]
}

func normalizeRating(rating int) int {
	if rating < 1 || rating > 10 {
		return defaultMoodRating
	}
	return rating
}

// sanitizeResult clamps model output into the documented domains so a sloppy
// model response cannot leak out-of-range values to callers.
func sanitizeResult(r Result, moodRating int) Result {
	switch r.Sentiment {
	case "positive", "negative", "neutral":
	default:
		r.Sentiment = "neutral"
	}
	if r.MoodScore < 1 || r.MoodScore > 10 {
		r.MoodScore = float64(moodRating)
	}
	if r.Confidence < 0 {
		r.Confidence = 0
	}
	if r.Confidence > 1 {
		r.Confidence = 1
	}
	if r.Emotions == nil {
		r.Emotions = []string{}
	}
	if r.KeyPhrases == nil {
		r.KeyPhrases = []string{}
	}
	if r.Recommendations == nil {
		r.Recommendations = []string{}
	}
	return r
}
