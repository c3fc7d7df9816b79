// Package journal orchestrates the entry and chat lifecycle: it runs
// sentiment analysis on new entries, persists them, and notifies subscribers
// on every store mutation so derived views can recompute.
package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mindhaven/mindhaven/internal/analysis"
	"github.com/mindhaven/mindhaven/internal/storage"
)

// ErrInvalidMood is returned when the self-rating is outside 1–10.
var ErrInvalidMood = errors.New("mood rating must be between 1 and 10")

// chatContextEntries is how many recent entries are summarized into the
// companion prompt.
const chatContextEntries = 3

// defaultCompanionReply is used when the companion call fails entirely, so a
// chat exchange always completes.
const defaultCompanionReply = "I'm here to help you process your thoughts and emotions. How are you feeling today?"

// EventKind identifies the mutation that triggered a notification.
type EventKind string

const (
	EventEntrySaved   EventKind = "entry_saved"
	EventChatAppended EventKind = "chat_appended"
	EventCleared      EventKind = "cleared"
)

// Event describes one store mutation.
type Event struct {
	Kind    EventKind
	EntryID string
}

// Store is the persistence surface the service needs. Implemented by
// storage.Store.
type Store interface {
	SaveEntry(storage.Entry) error
	ListEntries(limit int) ([]storage.Entry, error)
	SaveChatMessage(storage.ChatMessage) error
	ListChatMessages(limit int) ([]storage.ChatMessage, error)
	ClearAll() error
}

// Analyzer produces sentiment results and companion replies. Implemented by
// analysis.Service.
type Analyzer interface {
	Analyze(ctx context.Context, text string, moodRating int) (analysis.Result, error)
	Chat(ctx context.Context, message string) (analysis.ChatResult, error)
}

// Service is the single writer over the journal store.
type Service struct {
	store    Store
	analyzer Analyzer
	clock    func() time.Time
	logger   *zap.Logger

	mu          sync.RWMutex
	subscribers []func(Event)
}

// NewService creates a journal service.
func NewService(store Store, analyzer Analyzer, logger *zap.Logger) *Service {
	return NewServiceWithClock(store, analyzer, logger, time.Now)
}

// NewServiceWithClock creates a Service with a custom clock (for testing).
func NewServiceWithClock(store Store, analyzer Analyzer, logger *zap.Logger, clock func() time.Time) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, analyzer: analyzer, clock: clock, logger: logger}
}

// Subscribe registers fn to be called after every store mutation. Callbacks
// run synchronously on the mutating goroutine and must be fast.
func (s *Service) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Service) notify(ev Event) {
	s.mu.RLock()
	subs := s.subscribers
	s.mu.RUnlock()
	for _, fn := range subs {
		fn(ev)
	}
}

// CreateEntry analyzes content, saves the entry, and appends a companion
// summary message to the chat history when analysis produced insights.
// Analysis failure never blocks the save: the entry is stored with neutral
// sentiment and no analysis attachment. Validation errors (empty content,
// out-of-range mood) are the only failures that prevent saving.
func (s *Service) CreateEntry(ctx context.Context, content string, mood int) (storage.Entry, error) {
	if mood < 1 || mood > 10 {
		return storage.Entry{}, ErrInvalidMood
	}

	entry := storage.Entry{
		ID:        uuid.New().String(),
		CreatedAt: s.clock(),
		Mood:      mood,
		Content:   content,
	}

	res, err := s.analyzer.Analyze(ctx, content, mood)
	switch {
	case errors.Is(err, analysis.ErrEmptyText):
		return storage.Entry{}, err
	case err != nil:
		s.logger.Warn("analysis failed, saving entry with defaults", zap.Error(err))
		entry.Sentiment = storage.SentimentNeutral
		entry.Emotions = []string{"reflective"}
	default:
		entry.Sentiment = res.Sentiment
		entry.Emotions = res.Emotions
		entry.Analysis = &storage.Analysis{
			MoodScore:       res.MoodScore,
			Confidence:      res.Confidence,
			KeyPhrases:      res.KeyPhrases,
			Insights:        res.Insights,
			Recommendations: res.Recommendations,
			IsDemo:          res.IsDemo,
		}
	}

	if err := s.store.SaveEntry(entry); err != nil {
		return storage.Entry{}, fmt.Errorf("saving entry: %w", err)
	}
	s.notify(Event{Kind: EventEntrySaved, EntryID: entry.ID})

	if entry.Analysis != nil && entry.Analysis.Insights != "" {
		summary := storage.ChatMessage{
			ID:        uuid.New().String(),
			Role:      storage.RoleAI,
			Content: fmt.Sprintf(
				"I've analyzed your journal entry. Here's what I noticed: %s Your mood rating of %d/10 suggests you're feeling %s. Would you like to talk about anything specific?",
				entry.Analysis.Insights, mood, strings.ToLower(MoodLabel(mood)),
			),
			CreatedAt: s.clock(),
		}
		if err := s.store.SaveChatMessage(summary); err != nil {
			// The entry is already saved; a lost summary message is not fatal.
			s.logger.Warn("saving companion summary failed", zap.Error(err))
		} else {
			s.notify(Event{Kind: EventChatAppended})
		}
	}

	return entry, nil
}

// ChatExchange is the outcome of one companion conversation turn.
type ChatExchange struct {
	User   storage.ChatMessage `json:"user"`
	Reply  storage.ChatMessage `json:"reply"`
	IsDemo bool                `json:"isDemo,omitempty"`
}

// SendChatMessage appends the user message, obtains a companion reply with
// recent-entry context, and appends the reply.
func (s *Service) SendChatMessage(ctx context.Context, message string) (ChatExchange, error) {
	if strings.TrimSpace(message) == "" {
		return ChatExchange{}, analysis.ErrEmptyText
	}

	userMsg := storage.ChatMessage{
		ID:        uuid.New().String(),
		Role:      storage.RoleUser,
		Content:   message,
		CreatedAt: s.clock(),
	}
	if err := s.store.SaveChatMessage(userMsg); err != nil {
		return ChatExchange{}, fmt.Errorf("saving chat message: %w", err)
	}
	s.notify(Event{Kind: EventChatAppended})

	prompt := message
	if ctxText := s.recentEntryContext(); ctxText != "" {
		prompt = fmt.Sprintf("User question: %s\n\nRecent journal context:\n%s", message, ctxText)
	}

	res, err := s.analyzer.Chat(ctx, prompt)
	if err != nil {
		s.logger.Warn("companion chat failed, using default reply", zap.Error(err))
		res = analysis.ChatResult{Response: defaultCompanionReply}
	}

	reply := storage.ChatMessage{
		ID:        uuid.New().String(),
		Role:      storage.RoleAI,
		Content:   res.Response,
		CreatedAt: s.clock(),
	}
	if err := s.store.SaveChatMessage(reply); err != nil {
		return ChatExchange{}, fmt.Errorf("saving companion reply: %w", err)
	}
	s.notify(Event{Kind: EventChatAppended})

	return ChatExchange{User: userMsg, Reply: reply, IsDemo: res.IsDemo}, nil
}

// recentEntryContext formats the most recent entries for the companion
// prompt: date, self-rating, and truncated content per entry.
func (s *Service) recentEntryContext() string {
	entries, err := s.store.ListEntries(chatContextEntries)
	if err != nil {
		s.logger.Warn("loading chat context entries failed", zap.Error(err))
		return ""
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		content := e.Content
		if len(content) > 200 {
			content = content[:200] + "..."
		}
		lines = append(lines, fmt.Sprintf("Date: %s, Mood: %d/10, Content: %s",
			e.CreatedAt.Format("Jan 2, 2006"), e.Mood, content))
	}
	return strings.Join(lines, "\n")
}

// Entries returns stored entries most-recent-first. limit <= 0 returns all.
func (s *Service) Entries(limit int) ([]storage.Entry, error) {
	return s.store.ListEntries(limit)
}

// ChatHistory returns the conversation in chronological order.
func (s *Service) ChatHistory(limit int) ([]storage.ChatMessage, error) {
	return s.store.ListChatMessages(limit)
}

// ClearAll wipes every entry, chat message, and setting.
func (s *Service) ClearAll() error {
	if err := s.store.ClearAll(); err != nil {
		return err
	}
	s.notify(Event{Kind: EventCleared})
	return nil
}

var moodLabels = []string{
	"Terrible", "Very Bad", "Bad", "Poor", "Okay",
	"Good", "Great", "Very Good", "Excellent", "Amazing",
}

// MoodLabel returns the display label for a 1–10 mood rating.
func MoodLabel(mood int) string {
	if mood < 1 || mood > 10 {
		return "Okay"
	}
	return moodLabels[mood-1]
}
