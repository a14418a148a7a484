package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"finsight-server/src/models"
)

// ReportStore persists per-user, per-month spending aggregates.
type ReportStore struct {
	pool *pgxpool.Pool
}

func NewReportStore(pool *pgxpool.Pool) *ReportStore {
	return &ReportStore{pool: pool}
}

// EnsureSchema creates the monthly_reports table if it does not exist.
// Safe to run on every call.
func (s *ReportStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS monthly_reports (
			id BIGSERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			month TEXT NOT NULL,
			total_spent NUMERIC,
			top_category TEXT,
			overbudget_categories TEXT,
			UNIQUE (user_id, month)
		)
	`
	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("ensure monthly_reports schema: %w", err)
	}
	return nil
}

// Upsert writes the report row for (user_id, month), inserting it on first
// sight and updating it in place afterwards. The conflict target makes the
// write atomic, so concurrent syncs for the same user and month cannot
// produce duplicate rows.
func (s *ReportStore) Upsert(ctx context.Context, report *models.MonthlyReport) error {
	query := `
		INSERT INTO monthly_reports (user_id, month, total_spent, top_category, overbudget_categories)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, month) DO UPDATE
		SET total_spent = EXCLUDED.total_spent,
		    top_category = EXCLUDED.top_category,
		    overbudget_categories = EXCLUDED.overbudget_categories
	`
	_, err := s.pool.Exec(ctx, query,
		report.UserID, report.Month, report.TotalSpent, report.TopCategory, report.OverbudgetCategories)
	if err != nil {
		return fmt.Errorf("upsert monthly report: %w", err)
	}
	return nil
}

// RecentHistory returns up to limit report rows for the user, newest month
// first.
func (s *ReportStore) RecentHistory(ctx context.Context, userID string, limit int) ([]models.ReportEntry, error) {
	query := `
		SELECT month, total_spent, top_category
		FROM monthly_reports
		WHERE user_id = $1
		ORDER BY month DESC
		LIMIT $2
	`
	rows, err := s.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query report history: %w", err)
	}
	defer rows.Close()

	var history []models.ReportEntry
	for rows.Next() {
		var e models.ReportEntry
		if err := rows.Scan(&e.Month, &e.TotalSpent, &e.TopCategory); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		history = append(history, e)
	}
	return history, rows.Err()
}
