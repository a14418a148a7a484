// Package suggestions turns a caller-supplied expense list into qualitative
// spending assessments. It is a pure computation over its input and does no
// I/O; every call with the same input produces the same output.
package suggestions

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"finsight-server/src/models"
)

// band is one severity tier of the spend-ratio scale. The table is ordered
// by ascending upper bound and is the single source of truth for the label,
// color, label types, and advice attached to a ratio.
type band struct {
	max        float64 // upper ratio bound; the last band is open-ended
	inclusive  bool    // whether max itself still belongs to this band
	label      string
	color      string
	labelTypes []string
	advice     string
}

var bands = []band{
	{max: 30, label: "🧊 Very Low", color: "blue", labelTypes: []string{"neutral"},
		advice: "🧊 Very low spending. Make sure you're not under-spending on necessities."},
	{max: 50, label: "📉 Low", color: "lightblue", labelTypes: []string{"neutral"},
		advice: "📉 Spending is low. Are you missing essentials?"},
	{max: 60, label: "🙂 Balanced", color: "green", labelTypes: []string{"info"},
		advice: "🙂 Balanced spending. You're doing well!"},
	{max: 80, label: "🟡 Moderate", color: "yellow", labelTypes: []string{"info"},
		advice: "No specific advice."},
	{max: 100, inclusive: true, label: "🟢 Normal", color: "green", labelTypes: []string{"success"},
		advice: "✅ Spending is within your expected range. Good job!"},
	{max: 120, inclusive: true, label: "🟠 Slightly High", color: "orange", labelTypes: []string{"warning"},
		advice: "🟠 Slightly above average. Keep monitoring it."},
	{max: 150, inclusive: true, label: "🔴 Overbudget", color: "red", labelTypes: []string{"danger"},
		advice: "⚠️ You're over your usual spending. Try reducing it by 15-20%."},
	{label: "❌ Critical Overspending", color: "darkred", labelTypes: []string{"danger"},
		advice: "❌ Spending is extremely high. Cut back urgently!"},
}

// bandFor maps a spend ratio (percent of average) to its severity band.
// A ratio falls into the first band whose upper bound admits it.
func bandFor(ratio float64) band {
	for _, b := range bands[:len(bands)-1] {
		if ratio < b.max || (b.inclusive && ratio == b.max) {
			return b
		}
	}
	return bands[len(bands)-1]
}

// Generate classifies spending over the trailing 30-day window and returns
// per-category and account-wide assessments.
func Generate(expenses []models.Expense) models.SuggestionResponse {
	return generateAt(expenses, time.Now())
}

func generateAt(expenses []models.Expense, now time.Time) models.SuggestionResponse {
	if len(expenses) == 0 {
		return sentinel("⚠️ No Data", "No expense data found. Add expenses to get suggestions.", "neutral")
	}

	// Window is inclusive of records exactly 30 days old.
	cutoff := naive(now).AddDate(0, 0, -30)
	var recent []models.Expense
	for _, e := range expenses {
		e.Date.Time = naive(e.Date.Time)
		if !e.Date.Before(cutoff) {
			recent = append(recent, e)
		}
	}
	if len(recent) == 0 {
		return sentinel("🕒 No Recent Activity", "No expenses in the last 30 days. Keep tracking regularly!", "info")
	}

	categorySums := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, e := range recent {
		categorySums[e.Category] = categorySums[e.Category].Add(e.Amount)
		total = total.Add(e.Amount)
	}
	catCount := decimal.NewFromInt(int64(len(categorySums)))
	avg := total.Div(catCount)

	categories := make(map[string]models.CategorySuggestion, len(categorySums))
	for category, spent := range categorySums {
		b := bandFor(ratioOf(spent, avg))
		categories[category] = models.CategorySuggestion{
			Spent:      round2(spent),
			Status:     []string{b.label},
			Color:      b.color,
			LabelTypes: b.labelTypes,
			Message:    messageFor(category, b),
		}
	}

	overallAvg := avg.Mul(catCount)
	b := bandFor(ratioOf(total, overallAvg))
	totalSpent := round2(total)
	account := []models.AccountSuggestion{{
		TotalSpent: &totalSpent,
		Status:     []string{b.label},
		Color:      b.color,
		LabelTypes: b.labelTypes,
		Message:    messageFor("overall account", b),
	}}

	if hasDailySpike(recent) {
		account = append(account, models.AccountSuggestion{
			Status:     []string{"📈 Daily Spike"},
			Message:    "You had spending spikes on certain days. Consider distributing expenses evenly.",
			Color:      "orange",
			LabelTypes: []string{"warning", "spike"},
		})
	}

	return models.SuggestionResponse{
		CategorySuggestions: categories,
		AccountSuggestions:  account,
	}
}

// hasDailySpike reports whether the maximum single-day total exceeds 1.5x
// the mean daily total across active days.
func hasDailySpike(recent []models.Expense) bool {
	daily := make(map[string]decimal.Decimal)
	for _, e := range recent {
		day := e.Date.Format("2006-01-02")
		daily[day] = daily[day].Add(e.Amount)
	}

	sum := decimal.Zero
	var max decimal.Decimal
	first := true
	for _, v := range daily {
		sum = sum.Add(v)
		if first || v.GreaterThan(max) {
			max = v
			first = false
		}
	}
	mean := sum.Div(decimal.NewFromInt(int64(len(daily))))
	return max.GreaterThan(mean.Mul(decimal.NewFromFloat(1.5)))
}

func sentinel(label, message, labelType string) models.SuggestionResponse {
	return models.SuggestionResponse{
		CategorySuggestions: map[string]models.CategorySuggestion{},
		AccountSuggestions: []models.AccountSuggestion{{
			Status:     []string{label},
			Message:    message,
			Color:      "gray",
			LabelTypes: []string{labelType},
		}},
	}
}

func messageFor(category string, b band) string {
	return "Category: **" + capitalize(category) + "** → " + b.advice
}

// ratioOf returns spend as a percentage of the average, 0 when the average
// is zero.
func ratioOf(amount, avg decimal.Decimal) float64 {
	if avg.IsZero() {
		return 0
	}
	r, _ := amount.Div(avg).Mul(decimal.NewFromInt(100)).Float64()
	return r
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// naive drops the zone while keeping wall-clock fields, so offset-stamped
// and bare dates compare on the same axis.
func naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
