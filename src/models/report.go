package models

// MonthlyReport is one persisted per-user, per-month aggregate row.
// At most one row exists per (user_id, month).
type MonthlyReport struct {
	ID                   int64   `json:"id"`
	UserID               string  `json:"user_id"`
	Month                string  `json:"month"` // YYYY-MM
	TotalSpent           float64 `json:"total_spent"`
	TopCategory          string  `json:"top_category"`
	OverbudgetCategories string  `json:"overbudget_categories"` // comma-joined
}

// ReportEntry is one row of the trailing history returned to the caller.
type ReportEntry struct {
	Month       string  `json:"month"`
	TotalSpent  float64 `json:"total_spent"`
	TopCategory string  `json:"top_category"`
}

// SpendingSummary is the aggregate returned by the external summary service.
type SpendingSummary struct {
	Total                float64  `json:"total"`
	TopCategory          string   `json:"topCategory"`
	OverbudgetCategories []string `json:"overbudgetCategories"`
}
