// Package api exposes the journaling service over HTTP.
package api

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mindhaven/mindhaven/internal/analysis"
	"github.com/mindhaven/mindhaven/internal/journal"
	"github.com/mindhaven/mindhaven/internal/profile"
)

const maxRequestBodySize = 1 << 20 // 1MB

// Deps bundles everything the handlers need.
type Deps struct {
	Journal  *journal.Service
	Analyzer *analysis.Service
	Profile  *profile.Manager
	Logger   *zap.Logger

	// Now and Rand are injectable for deterministic tests; nil selects the
	// real clock and math/rand.
	Now  func() time.Time
	Rand func(n int) int
}

// NewHandler builds the HTTP router.
func NewHandler(deps Deps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Rand == nil {
		deps.Rand = rand.IntN
	}

	r := chi.NewRouter()

	r.Get("/health", handleHealth)

	r.Post("/api/analyze-sentiment", handleAnalyzeSentiment(deps))

	r.Post("/api/entries", handleCreateEntry(deps))
	r.Get("/api/entries", handleListEntries(deps))
	r.Delete("/api/entries", handleClearAll(deps))

	r.Post("/api/chat", handleSendChat(deps))
	r.Get("/api/chat", handleChatHistory(deps))

	r.Get("/api/analytics/trend", handleTrend(deps))
	r.Get("/api/analytics/emotions", handleEmotions(deps))
	r.Get("/api/analytics/weekly", handleWeekly(deps))
	r.Get("/api/analytics/stats", handleStats(deps))
	r.Get("/api/analytics/insights", handleInsights(deps))
	r.Get("/api/calendar", handleCalendar(deps))

	r.Get("/api/profile", handleGetProfile(deps))
	r.Patch("/api/profile", handlePatchProfile(deps))
	r.Get("/api/settings", handleGetSettings(deps))
	r.Put("/api/settings", handlePutSettings(deps))

	r.Get("/api/quote", handleQuote(deps))
	r.Get("/api/coping", handleCoping(deps))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// httpError writes the flat JSON error envelope the product uses.
func httpError(w http.ResponseWriter, code int, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"error": fmt.Sprintf(format, args...),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func parseIntParam(r *http.Request, key string, defaultVal, maxVal int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return defaultVal
	}
	if maxVal > 0 && v > maxVal {
		return maxVal
	}
	return v
}
