package handlers

import "net/http"

// Health is a trivial liveness check.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"message": "server is healthy",
		})
	}
}
