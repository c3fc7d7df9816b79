package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Sentiment labels used across the service.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Entry is one journal submission: a self-reported mood paired with free
// text. Sentiment and emotions are always present (the analyzer supplies a
// safe default when it cannot run); the Analysis attachment exists only when
// AI analysis actually produced a result. Entries are immutable once saved.
type Entry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"date"`
	Mood      int       `json:"mood"`
	Content   string    `json:"content"`
	Sentiment string    `json:"sentiment"`
	Emotions  []string  `json:"emotions"`
	Analysis  *Analysis `json:"analysis,omitempty"`
}

// Analysis holds the AI-derived fields of an entry.
type Analysis struct {
	MoodScore       float64  `json:"moodScore"`
	Confidence      float64  `json:"confidence"`
	KeyPhrases      []string `json:"keyPhrases"`
	Insights        string   `json:"insights"`
	Recommendations []string `json:"recommendations"`
	IsDemo          bool     `json:"isDemo,omitempty"`
}

// Chat message roles.
const (
	RoleUser = "user"
	RoleAI   = "ai"
)

// ChatMessage is one turn in the companion conversation. History is
// append-only and chronological.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"type"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"timestamp"`
}
