package analytics

import (
	"sort"
	"time"

	"github.com/mindhaven/mindhaven/internal/storage"
)

// CalendarDay is one marked day in the monthly mood calendar.
type CalendarDay struct {
	Day       int    `json:"day"`
	Mood      int    `json:"mood"`
	Sentiment string `json:"sentiment"`
}

// MonthCalendar returns, for each day of the given month that has at least
// one entry, the mood and sentiment of that day's most recent entry. Days
// are returned in ascending order.
func MonthCalendar(entries []storage.Entry, year int, month time.Month) []CalendarDay {
	seen := make(map[int]bool)
	var days []CalendarDay
	// Entries arrive most-recent-first, so the first hit per day wins.
	for _, e := range entries {
		y, m, d := e.CreatedAt.Date()
		if y != year || m != month || seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, CalendarDay{Day: d, Mood: e.Mood, Sentiment: e.Sentiment})
	}

	// Insertion order is recency; the calendar wants day order.
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })
	return days
}
