package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mindhaven/mindhaven/internal/analysis"
	"github.com/mindhaven/mindhaven/internal/analytics"
	"github.com/mindhaven/mindhaven/internal/journal"
	"github.com/mindhaven/mindhaven/internal/storage"
)

type createEntryRequest struct {
	Content string `json:"content"`
	Mood    int    `json:"mood"`
}

func handleCreateEntry(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req createEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid request body: %v", err)
			return
		}

		entry, err := deps.Journal.CreateEntry(r.Context(), req.Content, req.Mood)
		if errors.Is(err, journal.ErrInvalidMood) || errors.Is(err, analysis.ErrEmptyText) {
			httpError(w, http.StatusBadRequest, "%v", err)
			return
		}
		if err != nil {
			httpError(w, http.StatusInternalServerError, "failed to save entry: %v", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		writeJSON(w, entry)
	}
}

func handleListEntries(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parseIntParam(r, "limit", 0, 0)

		entries, err := deps.Journal.Entries(limit)
		if err != nil {
			httpError(w, http.StatusInternalServerError, "failed to list entries: %v", err)
			return
		}
		if entries == nil {
			entries = []storage.Entry{}
		}
		writeJSON(w, entries)
	}
}

func handleClearAll(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Journal.ClearAll(); err != nil {
			httpError(w, http.StatusInternalServerError, "failed to clear data: %v", err)
			return
		}
		deps.Profile.Invalidate()
		writeJSON(w, map[string]string{"status": "cleared"})
	}
}

type sendChatRequest struct {
	Message string `json:"message"`
}

func handleSendChat(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req sendChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid request body: %v", err)
			return
		}

		exchange, err := deps.Journal.SendChatMessage(r.Context(), req.Message)
		if errors.Is(err, analysis.ErrEmptyText) {
			httpError(w, http.StatusBadRequest, "%v", err)
			return
		}
		if err != nil {
			httpError(w, http.StatusInternalServerError, "failed to send message: %v", err)
			return
		}
		writeJSON(w, exchange)
	}
}

func handleChatHistory(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parseIntParam(r, "limit", 0, 0)

		messages, err := deps.Journal.ChatHistory(limit)
		if err != nil {
			httpError(w, http.StatusInternalServerError, "failed to load chat history: %v", err)
			return
		}
		if messages == nil {
			messages = []storage.ChatMessage{}
		}
		writeJSON(w, messages)
	}
}

// --- Analytics ---

func loadEntries(deps Deps, w http.ResponseWriter) ([]storage.Entry, bool) {
	entries, err := deps.Journal.Entries(0)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "failed to load entries: %v", err)
		return nil, false
	}
	return entries, true
}

func handleTrend(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, ok := loadEntries(deps, w)
		if !ok {
			return
		}
		points := analytics.TrendSeries(entries)
		if points == nil {
			points = []analytics.TrendPoint{}
		}
		writeJSON(w, points)
	}
}

func handleEmotions(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, ok := loadEntries(deps, w)
		if !ok {
			return
		}
		counts := analytics.EmotionDistribution(entries)
		if counts == nil {
			counts = []analytics.EmotionCount{}
		}
		writeJSON(w, counts)
	}
}

func handleWeekly(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, ok := loadEntries(deps, w)
		if !ok {
			return
		}
		buckets := analytics.WeeklySentiment(entries)
		if buckets == nil {
			buckets = []analytics.WeekBucket{}
		}
		writeJSON(w, buckets)
	}
}

func handleStats(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, ok := loadEntries(deps, w)
		if !ok {
			return
		}
		writeJSON(w, analytics.Summarize(entries, deps.Now()))
	}
}

func handleInsights(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, ok := loadEntries(deps, w)
		if !ok {
			return
		}
		insights := analytics.Insights(entries, deps.Now())
		if insights == nil {
			insights = []analytics.Insight{}
		}
		writeJSON(w, insights)
	}
}

func handleCalendar(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := deps.Now()
		year := parseIntParam(r, "year", now.Year(), 0)
		month := parseIntParam(r, "month", int(now.Month()), 12)
		if month < 1 {
			month = int(now.Month())
		}

		entries, ok := loadEntries(deps, w)
		if !ok {
			return
		}
		days := analytics.MonthCalendar(entries, year, time.Month(month))
		if days == nil {
			days = []analytics.CalendarDay{}
		}
		writeJSON(w, days)
	}
}
