package suggestions

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"finsight-server/src/models"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func expenseAt(daysAgo int, category string, amount float64) models.Expense {
	return models.Expense{
		Date:     models.ExpenseDate{Time: testNow.AddDate(0, 0, -daysAgo)},
		Category: category,
		Amount:   decimal.NewFromFloat(amount),
	}
}

func TestGenerateAtSentinels(t *testing.T) {
	t.Run("empty input returns no-data suggestion", func(t *testing.T) {
		result := generateAt(nil, testNow)

		require.Empty(t, result.CategorySuggestions)
		require.Len(t, result.AccountSuggestions, 1)
		acct := result.AccountSuggestions[0]
		require.Equal(t, []string{"⚠️ No Data"}, acct.Status)
		require.Equal(t, "gray", acct.Color)
		require.Equal(t, []string{"neutral"}, acct.LabelTypes)
		require.Equal(t, "No expense data found. Add expenses to get suggestions.", acct.Message)
		require.Nil(t, acct.TotalSpent)
	})

	t.Run("only stale records returns no-recent-activity suggestion", func(t *testing.T) {
		expenses := []models.Expense{
			expenseAt(45, "food", 100),
			expenseAt(90, "travel", 250),
		}
		result := generateAt(expenses, testNow)

		require.Empty(t, result.CategorySuggestions)
		require.Len(t, result.AccountSuggestions, 1)
		acct := result.AccountSuggestions[0]
		require.Equal(t, []string{"🕒 No Recent Activity"}, acct.Status)
		require.Equal(t, "gray", acct.Color)
		require.Equal(t, []string{"info"}, acct.LabelTypes)
	})

	t.Run("record exactly 30 days old is inside the window", func(t *testing.T) {
		expenses := []models.Expense{expenseAt(30, "food", 100)}
		result := generateAt(expenses, testNow)

		require.Contains(t, result.CategorySuggestions, "food")
	})
}

func TestGenerateAtSingleCategory(t *testing.T) {
	// One category at the average is by definition at ratio 100.
	expenses := []models.Expense{expenseAt(0, "food", 100)}
	result := generateAt(expenses, testNow)

	require.Len(t, result.CategorySuggestions, 1)
	food := result.CategorySuggestions["food"]
	require.Equal(t, 100.0, food.Spent)
	require.Equal(t, []string{"🟢 Normal"}, food.Status)
	require.Equal(t, "green", food.Color)
	require.Equal(t, []string{"success"}, food.LabelTypes)
	require.Equal(t, "Category: **Food** → ✅ Spending is within your expected range. Good job!", food.Message)

	require.Len(t, result.AccountSuggestions, 1)
	acct := result.AccountSuggestions[0]
	require.NotNil(t, acct.TotalSpent)
	require.Equal(t, 100.0, *acct.TotalSpent)
	require.Equal(t, []string{"🟢 Normal"}, acct.Status)
	require.Equal(t, "Category: **Overall account** → ✅ Spending is within your expected range. Good job!", acct.Message)
}

func TestGenerateAtCategoryBands(t *testing.T) {
	// Two categories of 50 and 150 give an average of 100, so the small one
	// sits at ratio 50 and the large one at ratio 150.
	expenses := []models.Expense{
		expenseAt(1, "groceries", 50),
		expenseAt(2, "rent", 150),
	}
	result := generateAt(expenses, testNow)

	groceries := result.CategorySuggestions["groceries"]
	require.Equal(t, []string{"🙂 Balanced"}, groceries.Status)
	require.Equal(t, "green", groceries.Color)
	require.Equal(t, []string{"info"}, groceries.LabelTypes)
	require.Equal(t, "Category: **Groceries** → 🙂 Balanced spending. You're doing well!", groceries.Message)

	rent := result.CategorySuggestions["rent"]
	require.Equal(t, []string{"🔴 Overbudget"}, rent.Status)
	require.Equal(t, "red", rent.Color)
	require.Equal(t, []string{"danger"}, rent.LabelTypes)
	require.Equal(t, "Category: **Rent** → ⚠️ You're over your usual spending. Try reducing it by 15-20%.", rent.Message)
}

func TestBandFor(t *testing.T) {
	cases := []struct {
		name  string
		ratio float64
		label string
		color string
		types []string
	}{
		{"zero", 0, "🧊 Very Low", "blue", []string{"neutral"}},
		{"just under 30", 29.99, "🧊 Very Low", "blue", []string{"neutral"}},
		{"boundary 30", 30, "📉 Low", "lightblue", []string{"neutral"}},
		{"boundary 50", 50, "🙂 Balanced", "green", []string{"info"}},
		{"boundary 60", 60, "🟡 Moderate", "yellow", []string{"info"}},
		{"boundary 80", 80, "🟢 Normal", "green", []string{"success"}},
		{"boundary 100 inclusive", 100, "🟢 Normal", "green", []string{"success"}},
		{"just above 100", 100.01, "🟠 Slightly High", "orange", []string{"warning"}},
		{"boundary 120 inclusive", 120, "🟠 Slightly High", "orange", []string{"warning"}},
		{"just above 120", 120.01, "🔴 Overbudget", "red", []string{"danger"}},
		{"boundary 150 inclusive", 150, "🔴 Overbudget", "red", []string{"danger"}},
		{"above 150", 150.01, "❌ Critical Overspending", "darkred", []string{"danger"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := bandFor(tc.ratio)
			require.Equal(t, tc.label, b.label)
			require.Equal(t, tc.color, b.color)
			require.Equal(t, tc.types, b.labelTypes)
		})
	}
}

func TestGenerateAtSumConsistency(t *testing.T) {
	expenses := []models.Expense{
		expenseAt(0, "food", 12.34),
		expenseAt(3, "food", 7.89),
		expenseAt(5, "travel", 120.5),
		expenseAt(9, "rent", 800),
		expenseAt(12, "fun", 33.33),
	}
	result := generateAt(expenses, testNow)

	var sum float64
	for _, c := range result.CategorySuggestions {
		sum += c.Spent
	}
	require.NotNil(t, result.AccountSuggestions[0].TotalSpent)
	require.InDelta(t, *result.AccountSuggestions[0].TotalSpent, sum, 0.01)
}

func TestGenerateAtIdempotence(t *testing.T) {
	expenses := []models.Expense{
		expenseAt(0, "food", 40),
		expenseAt(1, "travel", 160),
		expenseAt(2, "fun", 55),
	}
	first := generateAt(expenses, testNow)
	second := generateAt(expenses, testNow)
	require.Equal(t, first, second)
}

func TestGenerateAtDailySpike(t *testing.T) {
	t.Run("spike day appends warning", func(t *testing.T) {
		// Day totals 300, 0, 0: mean 100, max 300 > 150.
		expenses := []models.Expense{
			expenseAt(0, "food", 300),
			expenseAt(1, "food", 0),
			expenseAt(2, "food", 0),
		}
		result := generateAt(expenses, testNow)

		require.Len(t, result.AccountSuggestions, 2)
		spike := result.AccountSuggestions[1]
		require.Equal(t, []string{"📈 Daily Spike"}, spike.Status)
		require.Equal(t, "orange", spike.Color)
		require.Equal(t, []string{"warning", "spike"}, spike.LabelTypes)
		require.Equal(t, "You had spending spikes on certain days. Consider distributing expenses evenly.", spike.Message)
		require.Nil(t, spike.TotalSpent)
	})

	t.Run("even daily spending has no spike", func(t *testing.T) {
		expenses := []models.Expense{
			expenseAt(0, "food", 100),
			expenseAt(1, "food", 100),
			expenseAt(2, "food", 100),
		}
		result := generateAt(expenses, testNow)
		require.Len(t, result.AccountSuggestions, 1)
	})

	t.Run("max exactly at threshold has no spike", func(t *testing.T) {
		// Day totals 150 and 50: mean 100, threshold 150, not exceeded.
		expenses := []models.Expense{
			expenseAt(0, "food", 150),
			expenseAt(1, "food", 50),
		}
		result := generateAt(expenses, testNow)
		require.Len(t, result.AccountSuggestions, 1)
	})
}

func TestGenerateAtRounding(t *testing.T) {
	expenses := []models.Expense{
		expenseAt(0, "food", 10.005),
		expenseAt(1, "food", 10.005),
	}
	result := generateAt(expenses, testNow)

	require.Equal(t, 20.01, result.CategorySuggestions["food"].Spent)
	require.Equal(t, 20.01, *result.AccountSuggestions[0].TotalSpent)
}

func TestGenerateAtZeroTotals(t *testing.T) {
	// A zero-spend category against a zero average classifies at ratio 0.
	expenses := []models.Expense{expenseAt(0, "food", 0)}
	result := generateAt(expenses, testNow)

	food := result.CategorySuggestions["food"]
	require.Equal(t, []string{"🧊 Very Low"}, food.Status)
	require.Equal(t, "blue", food.Color)
	require.Equal(t, "Category: **Food** → 🧊 Very low spending. Make sure you're not under-spending on necessities.", food.Message)
}

func TestGenerateAtMixedWindow(t *testing.T) {
	// Stale records must not contribute to category sums.
	expenses := []models.Expense{
		expenseAt(0, "food", 100),
		expenseAt(60, "food", 9999),
		expenseAt(45, "travel", 500),
	}
	result := generateAt(expenses, testNow)

	require.Len(t, result.CategorySuggestions, 1)
	require.Equal(t, 100.0, result.CategorySuggestions["food"].Spent)
}

func TestGenerateAtNormalizesOffsets(t *testing.T) {
	// An offset-stamped date is compared by wall clock, like a bare date.
	offset := time.FixedZone("UTC+8", 8*3600)
	expenses := []models.Expense{{
		Date:     models.ExpenseDate{Time: testNow.AddDate(0, 0, -29).In(offset)},
		Category: "food",
		Amount:   decimal.NewFromInt(75),
	}}
	result := generateAt(expenses, testNow)
	require.Contains(t, result.CategorySuggestions, "food")
}

func TestCapitalize(t *testing.T) {
	require.Equal(t, "Food", capitalize("food"))
	require.Equal(t, "Overall account", capitalize("overall account"))
	require.Equal(t, "Rent", capitalize("RENT"))
	require.Equal(t, "", capitalize(""))
}
