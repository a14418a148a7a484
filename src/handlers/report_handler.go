package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"finsight-server/src/models"
	"finsight-server/src/reports"
)

// ReportSyncer is the part of the report synchronizer the handler needs.
type ReportSyncer interface {
	Sync(ctx context.Context, token string) ([]models.ReportEntry, error)
}

// GetReports refreshes the caller's current-month report row and returns
// their trailing history.
func GetReports(syncer ReportSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "Missing or invalid token")
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		history, err := syncer.Sync(r.Context(), token)
		if err != nil {
			if errors.Is(err, reports.ErrInvalidToken) {
				writeError(w, http.StatusForbidden, "Invalid token")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to process report")
			return
		}

		if history == nil {
			history = []models.ReportEntry{}
		}
		writeJSON(w, http.StatusOK, history)
	}
}
