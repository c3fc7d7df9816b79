// Package analytics derives charts, statistics, and rule-based insights from
// the stored entry list. Every function is pure: it takes the entry list
// (most-recent-first, as returned by storage.ListEntries) and returns fresh
// output on each call. Nothing is cached between calls; callers recompute on
// every store mutation.
package analytics

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/mindhaven/mindhaven/internal/storage"
)

const (
	trendWindow    = 14
	topEmotions    = 8
	weeklyBuckets  = 8
	displayDateFmt = "Jan 2"
)

// TrendPoint is one charted day of the mood trend: the user's self-rating
// and, when analysis ran, the AI mood estimate.
type TrendPoint struct {
	Date     string   `json:"date"`
	Day      string   `json:"day"`
	UserMood int      `json:"userMood"`
	AIMood   *float64 `json:"aiMood,omitempty"`
}

// TrendSeries maps the most recent 14 entries, oldest to newest, into chart
// points.
func TrendSeries(entries []storage.Entry) []TrendPoint {
	if len(entries) > trendWindow {
		entries = entries[:trendWindow]
	}

	points := make([]TrendPoint, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		p := TrendPoint{
			Date:     e.CreatedAt.Format(displayDateFmt),
			Day:      e.CreatedAt.Format("Mon"),
			UserMood: e.Mood,
		}
		if e.Analysis != nil {
			score := e.Analysis.MoodScore
			p.AIMood = &score
		}
		points = append(points, p)
	}
	return points
}

// EmotionCount is one bar of the emotion distribution chart.
type EmotionCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// EmotionDistribution flattens all entries' emotion labels, counts frequency
// per distinct label (case-normalized to capitalized form), and returns the
// top 8 sorted by count descending. Ties keep first-encountered order.
func EmotionDistribution(entries []storage.Entry) []EmotionCount {
	counts := make(map[string]int)
	var order []string
	for _, e := range entries {
		for _, emotion := range e.Emotions {
			name := capitalize(emotion)
			if name == "" {
				continue
			}
			if _, seen := counts[name]; !seen {
				order = append(order, name)
			}
			counts[name]++
		}
	}

	result := make([]EmotionCount, 0, len(order))
	for _, name := range order {
		result = append(result, EmotionCount{Name: name, Value: counts[name]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Value > result[j].Value
	})
	if len(result) > topEmotions {
		result = result[:topEmotions]
	}
	return result
}

func capitalize(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// WeekBucket is one stacked bar of the weekly sentiment chart: sentiment
// counts for the Sunday-starting week identified by WeekStart.
type WeekBucket struct {
	WeekStart time.Time `json:"-"`
	WeekLabel string    `json:"date"`
	Positive  int       `json:"positive"`
	Negative  int       `json:"negative"`
	Neutral   int       `json:"neutral"`
}

// WeeklySentiment groups entries by the Sunday-starting week of their
// creation date and counts sentiments per week. It returns the most recent 8
// non-empty weeks in chronological order; weeks without entries are omitted
// rather than zero-filled.
func WeeklySentiment(entries []storage.Entry) []WeekBucket {
	byWeek := make(map[time.Time]*WeekBucket)
	for _, e := range entries {
		ws := weekStart(e.CreatedAt)
		b, ok := byWeek[ws]
		if !ok {
			b = &WeekBucket{WeekStart: ws, WeekLabel: ws.Format(displayDateFmt)}
			byWeek[ws] = b
		}
		switch e.Sentiment {
		case storage.SentimentPositive:
			b.Positive++
		case storage.SentimentNegative:
			b.Negative++
		default:
			b.Neutral++
		}
	}

	buckets := make([]WeekBucket, 0, len(byWeek))
	for _, b := range byWeek {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].WeekStart.Before(buckets[j].WeekStart)
	})
	if len(buckets) > weeklyBuckets {
		buckets = buckets[len(buckets)-weeklyBuckets:]
	}
	return buckets
}

// weekStart truncates t to the date of the preceding (or same) Sunday.
func weekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}
