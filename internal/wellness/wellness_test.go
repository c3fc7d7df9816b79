package wellness

import (
	"testing"
	"time"
)

func TestQuoteOfDay_StablePerDay(t *testing.T) {
	morning := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.March, 10, 22, 30, 0, 0, time.UTC)

	if QuoteOfDay(morning) != QuoteOfDay(evening) {
		t.Error("quote changed within a single day")
	}

	nextDay := morning.AddDate(0, 0, 1)
	if QuoteOfDay(morning) == QuoteOfDay(nextDay) {
		t.Error("consecutive days returned the same quote")
	}
}

func TestQuoteOfDay_CoversWholeMonth(t *testing.T) {
	for d := 1; d <= 31; d++ {
		at := time.Date(2025, time.March, d, 12, 0, 0, 0, time.UTC)
		if QuoteOfDay(at) == "" {
			t.Errorf("day %d produced an empty quote", d)
		}
	}
}

func TestRandomQuote(t *testing.T) {
	for i := range motivationalQuotes {
		got := RandomQuote(func(n int) int {
			if n != len(motivationalQuotes) {
				t.Errorf("pick bound = %d, want %d", n, len(motivationalQuotes))
			}
			return i
		})
		if got != motivationalQuotes[i] {
			t.Errorf("pick %d returned %q", i, got)
		}
	}
}

func TestCopingTechniques(t *testing.T) {
	techniques := CopingTechniques()
	if len(techniques) == 0 {
		t.Fatal("no coping techniques")
	}
	for _, tech := range techniques {
		if tech.Title == "" || tech.Category == "" || tech.Duration == "" {
			t.Errorf("technique missing fields: %+v", tech)
		}
		if len(tech.Steps) == 0 {
			t.Errorf("technique %q has no steps", tech.Title)
		}
	}
}
