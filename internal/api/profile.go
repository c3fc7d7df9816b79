package api

import (
	"encoding/json"
	"net/http"

	"github.com/mindhaven/mindhaven/internal/profile"
	"github.com/mindhaven/mindhaven/internal/wellness"
)

func handleGetProfile(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := deps.Profile.GetProfile()
		if err != nil {
			httpError(w, http.StatusInternalServerError, "failed to get profile: %v", err)
			return
		}
		writeJSON(w, p)
	}
}

func handlePatchProfile(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		current, err := deps.Profile.GetProfile()
		if err != nil {
			httpError(w, http.StatusInternalServerError, "failed to get profile: %v", err)
			return
		}

		var fields map[string]string
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			httpError(w, http.StatusBadRequest, "invalid request body: %v", err)
			return
		}
		if name, ok := fields["name"]; ok {
			current.Name = name
		}
		if email, ok := fields["email"]; ok {
			current.Email = email
		}

		if err := deps.Profile.SetProfile(current); err != nil {
			httpError(w, http.StatusInternalServerError, "failed to update profile: %v", err)
			return
		}
		writeJSON(w, current)
	}
}

func handleGetSettings(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := deps.Profile.GetSettings()
		if err != nil {
			httpError(w, http.StatusInternalServerError, "failed to get settings: %v", err)
			return
		}
		writeJSON(w, s)
	}
}

func handlePutSettings(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var s profile.Settings
		if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
			httpError(w, http.StatusBadRequest, "invalid request body: %v", err)
			return
		}

		if err := deps.Profile.SetSettings(s); err != nil {
			httpError(w, http.StatusInternalServerError, "failed to update settings: %v", err)
			return
		}
		writeJSON(w, s)
	}
}

func handleQuote(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var quote string
		if r.URL.Query().Get("random") != "" {
			quote = wellness.RandomQuote(deps.Rand)
		} else {
			quote = wellness.QuoteOfDay(deps.Now())
		}
		writeJSON(w, map[string]string{"quote": quote})
	}
}

func handleCoping(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, wellness.CopingTechniques())
	}
}
