package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"finsight-server/src/db"
	"finsight-server/src/logger"
	"finsight-server/src/models"
	"finsight-server/src/suggestions"
)

// GetSuggestions classifies the posted expense list. Responses are cached
// by request body, so identical payloads within the TTL skip the engine.
func GetSuggestions(cache *db.SuggestionCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Log.Error().Err(err).Msg("Failed to read suggestions request body")
			writeError(w, http.StatusBadRequest, "Invalid input, 'expenses' key is required")
			return
		}

		var req struct {
			Expenses *[]models.Expense `json:"expenses"`
		}
		if err := json.Unmarshal(body, &req); err != nil || req.Expenses == nil {
			logger.Log.Error().Err(err).Msg("Invalid suggestions request body")
			writeError(w, http.StatusBadRequest, "Invalid input, 'expenses' key is required")
			return
		}

		key := db.Key(body)
		if payload, ok := cache.Get(key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(payload)
			return
		}

		result := suggestions.Generate(*req.Expenses)
		logger.Log.Info().
			Int("expenses", len(*req.Expenses)).
			Int("categories", len(result.CategorySuggestions)).
			Msg("Generated suggestions")

		payload, err := json.Marshal(result)
		if err != nil {
			logger.Log.Error().Err(err).Msg("Failed to encode suggestions")
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		cache.Set(key, payload)

		w.Header().Set("Content-Type", "application/json")
		w.Write(payload)
	}
}
