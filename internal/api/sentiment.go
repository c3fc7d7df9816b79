package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// AnalyzeRequest is the body of POST /api/analyze-sentiment. UserMoodRating
// is optional; out-of-range or missing ratings fall back to the analyzer's
// default. IsChat switches to companion-reply mode.
type AnalyzeRequest struct {
	Text           string  `json:"text"`
	UserMoodRating float64 `json:"userMoodRating"`
	IsChat         bool    `json:"isChat"`
}

// handleAnalyzeSentiment implements the analysis endpoint contract:
//   - 400 {"error":"Text is required"} for empty/missing text
//   - 200 with the structured analysis (optionally isDemo/error annotated)
//   - 200 {"chatResponse":...} in chat mode
//   - 500 {"error":"Failed to analyze sentiment"} only when the request body
//     itself is unreadable; analysis failures degrade to the fallback and
//     still return 200.
func handleAnalyzeSentiment(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusInternalServerError, "Failed to analyze sentiment")
			return
		}

		if strings.TrimSpace(req.Text) == "" {
			httpError(w, http.StatusBadRequest, "Text is required")
			return
		}

		if req.IsChat {
			res, err := deps.Analyzer.Chat(r.Context(), req.Text)
			if err != nil {
				// Text was validated above, so this should not happen.
				httpError(w, http.StatusInternalServerError, "Failed to analyze sentiment")
				return
			}
			writeJSON(w, res)
			return
		}

		res, err := deps.Analyzer.Analyze(r.Context(), req.Text, int(req.UserMoodRating))
		if err != nil {
			httpError(w, http.StatusInternalServerError, "Failed to analyze sentiment")
			return
		}
		writeJSON(w, res)
	}
}
