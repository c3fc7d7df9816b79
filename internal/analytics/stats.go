package analytics

import (
	"time"

	"github.com/mindhaven/mindhaven/internal/storage"
)

// Summary holds the headline numbers for the dashboard stat cards.
type Summary struct {
	AverageMood     float64 `json:"averageMood"`
	AverageAIMood   float64 `json:"averageAIMood"`
	TotalEntries    int     `json:"totalEntries"`
	PositiveEntries int     `json:"positiveEntries"`
	MoodTrend       float64 `json:"moodTrend"`
	StreakDays      int     `json:"streakDays"`
}

// Summarize computes summary statistics over the full entry list
// (most-recent-first). now anchors the streak computation.
func Summarize(entries []storage.Entry, now time.Time) Summary {
	if len(entries) == 0 {
		return Summary{}
	}

	var moodSum int
	var aiSum float64
	var aiCount, positive int
	for _, e := range entries {
		moodSum += e.Mood
		if e.Analysis != nil {
			aiSum += e.Analysis.MoodScore
			aiCount++
		}
		if e.Sentiment == storage.SentimentPositive {
			positive++
		}
	}

	s := Summary{
		AverageMood:     float64(moodSum) / float64(len(entries)),
		TotalEntries:    len(entries),
		PositiveEntries: positive,
		MoodTrend:       moodTrend(entries),
		StreakDays:      streakDays(entries, now),
	}
	if aiCount > 0 {
		s.AverageAIMood = aiSum / float64(aiCount)
	}
	return s
}

// moodTrend is the average mood of the most recent 3 entries minus the
// average of the preceding 3. With fewer than 6 entries there is not enough
// data and the trend is 0.
func moodTrend(entries []storage.Entry) float64 {
	if len(entries) < 6 {
		return 0
	}
	return avgMood(entries[:3]) - avgMood(entries[3:6])
}

func avgMood(entries []storage.Entry) float64 {
	var sum int
	for _, e := range entries {
		sum += e.Mood
	}
	return float64(sum) / float64(len(entries))
}

// streakDays counts consecutive calendar days, starting today, each having
// at least one entry. The scan stops at the first day without one, so a
// missed day resets the streak.
func streakDays(entries []storage.Entry, now time.Time) int {
	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[e.CreatedAt.In(now.Location()).Format(time.DateOnly)] = true
	}

	streak := 0
	for day := now; days[day.Format(time.DateOnly)]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}
