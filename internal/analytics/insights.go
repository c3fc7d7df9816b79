package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/mindhaven/mindhaven/internal/storage"
)

// Insight kinds.
const (
	InsightWarning  = "warning"
	InsightPositive = "positive"
	InsightNeutral  = "neutral"
)

// Insight is a rule-derived observation about recent or historical
// mood/sentiment patterns.
type Insight struct {
	Kind        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

const maxInsights = 4

const recentWindow = 5

// Insights evaluates the fixed wellness heuristics against the entry list
// (most-recent-first) and returns at most 4 insights in evaluation order.
// The truncation deliberately keeps the first four produced rather than
// re-ranking by severity.
func Insights(entries []storage.Entry, now time.Time) []Insight {
	if len(entries) == 0 {
		return nil
	}

	var insights []Insight

	recent := entries
	if len(recent) > recentWindow {
		recent = recent[:recentWindow]
	}

	// Recent mood level: warn below 4, celebrate above 7.
	avgRecent := avgMood(recent)
	if avgRecent < 4 {
		insights = append(insights, Insight{
			Kind:        InsightWarning,
			Title:       "Low Mood Pattern",
			Description: "Your recent mood scores have been below 4/10. Consider reaching out to someone or practicing self-care.",
		})
	} else if avgRecent > 7 {
		insights = append(insights, Insight{
			Kind:        InsightPositive,
			Title:       "Great Mood Streak",
			Description: "You've been feeling great lately! Keep up the positive momentum.",
		})
	}

	// Run of negative entries.
	recentNegative := 0
	for _, e := range recent {
		if e.Sentiment == storage.SentimentNegative {
			recentNegative++
		}
	}
	if recentNegative >= 3 {
		insights = append(insights, Insight{
			Kind:        InsightWarning,
			Title:       "Negative Sentiment Alert",
			Description: "You've had several negative entries recently. Consider talking to a mental health professional.",
		})
	}

	// Overall positivity ratio.
	positive := 0
	for _, e := range entries {
		if e.Sentiment == storage.SentimentPositive {
			positive++
		}
	}
	positiveRatio := float64(positive) / float64(len(entries))
	if positiveRatio > 0.7 {
		insights = append(insights, Insight{
			Kind:        InsightPositive,
			Title:       "Positive Outlook",
			Description: fmt.Sprintf("%d%% of your entries show positive sentiment. Great job maintaining a positive mindset!", int(math.Round(positiveRatio*100))),
		})
	}

	// Journaling consistency since the oldest entry.
	oldest := entries[len(entries)-1]
	daysSinceFirst := int(now.Sub(oldest.CreatedAt).Hours() / 24)
	entriesPerDay := float64(len(entries)) / float64(max(daysSinceFirst, 1))
	if entriesPerDay > 0.8 {
		insights = append(insights, Insight{
			Kind:        InsightPositive,
			Title:       "Consistent Journaling",
			Description: "You're maintaining great journaling consistency. This habit supports your mental wellness journey.",
		})
	}

	// Emotional vocabulary breadth.
	unique := make(map[string]bool)
	for _, e := range entries {
		for _, emotion := range e.Emotions {
			unique[emotion] = true
		}
	}
	if len(unique) > 10 {
		insights = append(insights, Insight{
			Kind:        InsightNeutral,
			Title:       "Emotional Awareness",
			Description: fmt.Sprintf("You've expressed %d different emotions. This shows good emotional awareness and vocabulary.", len(unique)),
		})
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}
