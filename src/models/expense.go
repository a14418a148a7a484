package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single dated expense record supplied by the caller.
// Records are ephemeral: they are classified per request and never persisted.
type Expense struct {
	Date     ExpenseDate     `json:"date"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// ExpenseDate wraps time.Time to accept the date formats clients actually
// send: full RFC3339 timestamps, timestamps without an offset, or bare dates.
type ExpenseDate struct {
	time.Time
}

var expenseDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (d *ExpenseDate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return fmt.Errorf("expense date is required")
	}
	for _, layout := range expenseDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized expense date %q", s)
}

func (d ExpenseDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}
