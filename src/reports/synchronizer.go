// Package reports keeps the rolling monthly report table in step with the
// external summary service.
package reports

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"finsight-server/src/logger"
	"finsight-server/src/models"
)

// Sentinel errors the transport layer maps to response statuses.
var (
	// ErrInvalidToken means the caller's credential failed verification or
	// carried no user ID.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUpstream means the external summary fetch or the report write
	// failed; nothing was partially persisted past the failure point.
	ErrUpstream = errors.New("failed to process report")
)

// TokenVerifier validates a bearer credential and extracts the user ID.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// SummaryFetcher retrieves the current period's aggregate spend for the
// caller identified by token.
type SummaryFetcher interface {
	FetchSummary(ctx context.Context, token string) (*models.SpendingSummary, error)
}

// ReportStore persists monthly report rows.
type ReportStore interface {
	EnsureSchema(ctx context.Context) error
	Upsert(ctx context.Context, report *models.MonthlyReport) error
	RecentHistory(ctx context.Context, userID string, limit int) ([]models.ReportEntry, error)
}

const historyLimit = 6

// Synchronizer upserts the caller's current-month report row from the
// external summary and returns their trailing history. All collaborators
// are fixed at construction.
type Synchronizer struct {
	verifier TokenVerifier
	summary  SummaryFetcher
	store    ReportStore
	now      func() time.Time
}

func NewSynchronizer(verifier TokenVerifier, summary SummaryFetcher, store ReportStore) *Synchronizer {
	return &Synchronizer{
		verifier: verifier,
		summary:  summary,
		store:    store,
		now:      time.Now,
	}
}

// Sync verifies the token, refreshes the caller's row for the current
// month from the external summary service, and returns the six most recent
// report rows, newest first.
//
// Verification failure aborts before any I/O; a fetch failure aborts
// before any write. There are no retries.
func (s *Synchronizer) Sync(ctx context.Context, token string) ([]models.ReportEntry, error) {
	userID, err := s.verifier.Verify(token)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Token verification failed")
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if err := s.store.EnsureSchema(ctx); err != nil {
		logger.Log.Error().Err(err).Msg("Schema creation failed")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	sum, err := s.summary.FetchSummary(ctx, token)
	if err != nil {
		logger.Log.Error().Err(err).Str("user_id", userID).Msg("Summary fetch failed")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	month := s.now().Format("2006-01")
	report := &models.MonthlyReport{
		UserID:               userID,
		Month:                month,
		TotalSpent:           sum.Total,
		TopCategory:          sum.TopCategory,
		OverbudgetCategories: strings.Join(sum.OverbudgetCategories, ","),
	}
	if err := s.store.Upsert(ctx, report); err != nil {
		logger.Log.Error().Err(err).Str("user_id", userID).Str("month", month).Msg("Report upsert failed")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	logger.Log.Info().Str("user_id", userID).Str("month", month).Msg("Synced monthly report")

	history, err := s.store.RecentHistory(ctx, userID, historyLimit)
	if err != nil {
		logger.Log.Error().Err(err).Str("user_id", userID).Msg("History query failed")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return history, nil
}
