package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svarno/svarno_backend/internal/core/domain"
	"github.com/svarno/svarno_backend/internal/core/ledger"
)

func testSession(t *testing.T, userID string) domain.Session {
	t.Helper()
	s, err := domain.NewSession(userID, userID+"@example.com", "jti", time.Now().Add(time.Hour))
	require.NoError(t, err)
	return s
}

func entry(userID string, kind domain.TransactionType, amount int64, category string, date time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: category + "-" + date.Format(time.RFC3339Nano),
		UserID:        userID,
		Type:          kind,
		Amount:        decimal.NewFromInt(amount),
		Description:   category,
		Category:      category,
		Date:          date,
	}
}

func TestSummary_NetAmountIsIncomeMinusExpenses(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	s := testSession(t, "u1")
	entries := []domain.Transaction{
		entry("u1", domain.TransactionIncome, 5000, "Salary", now),
		entry("u1", domain.TransactionExpense, 250, "Food & Dining", now),
		entry("u1", domain.TransactionExpense, 1200, "Bills & Utilities", now),
		entry("u1", domain.TransactionBuy, 900, "Stocks", now),
	}

	stats := ledger.NewAggregator(s, entries).Summary()

	assert.True(t, stats.TotalIncome.Equal(decimal.NewFromInt(5000)))
	assert.True(t, stats.TotalExpenses.Equal(decimal.NewFromInt(1450)))
	assert.True(t, stats.NetAmount.Equal(stats.TotalIncome.Sub(stats.TotalExpenses)))
	assert.True(t, stats.SavingsRate.Equal(decimal.NewFromInt(71)), "got %s", stats.SavingsRate)
	assert.Equal(t, 4, stats.TransactionCount)
}

func TestSummary_SavingsRateZeroWithoutIncome(t *testing.T) {
	s := testSession(t, "u1")
	entries := []domain.Transaction{
		entry("u1", domain.TransactionExpense, 100, "Food", time.Now()),
	}

	stats := ledger.NewAggregator(s, entries).Summary()
	assert.True(t, stats.SavingsRate.IsZero())

	empty := ledger.NewAggregator(s, nil).Summary()
	assert.True(t, empty.SavingsRate.IsZero())
	assert.Equal(t, 0, empty.TransactionCount)
}

func TestCategoryTotals_SortedDescending(t *testing.T) {
	now := time.Now()
	s := testSession(t, "u1")
	entries := []domain.Transaction{
		entry("u1", domain.TransactionExpense, 100, "Food", now),
		entry("u1", domain.TransactionExpense, 50, "Food", now.Add(time.Second)),
		entry("u1", domain.TransactionExpense, 80, "Gas", now),
		entry("u1", domain.TransactionIncome, 999, "Salary", now),
	}

	totals := ledger.NewAggregator(s, entries).CategoryTotals()

	require.Len(t, totals, 2)
	assert.Equal(t, "Food", totals[0].Category)
	assert.True(t, totals[0].Amount.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, "Gas", totals[1].Category)
	assert.True(t, totals[1].Amount.Equal(decimal.NewFromInt(80)))
}

func TestCategoryTotals_TiesKeepFirstSeenOrder(t *testing.T) {
	now := time.Now()
	s := testSession(t, "u1")
	entries := []domain.Transaction{
		entry("u1", domain.TransactionExpense, 40, "Books", now),
		entry("u1", domain.TransactionExpense, 40, "Arcade", now),
		entry("u1", domain.TransactionExpense, 40, "Coffee", now),
	}

	totals := ledger.NewAggregator(s, entries).CategoryTotals()

	require.Len(t, totals, 3)
	assert.Equal(t, []string{"Books", "Arcade", "Coffee"},
		[]string{totals[0].Category, totals[1].Category, totals[2].Category})
}

func TestCategoryTotals_SkipsUncategorised(t *testing.T) {
	s := testSession(t, "u1")
	uncategorised := entry("u1", domain.TransactionExpense, 10, "", time.Now())

	agg := ledger.NewAggregator(s, []domain.Transaction{uncategorised})

	assert.Empty(t, agg.CategoryTotals())
	_, ok := agg.TopExpenseCategory()
	assert.False(t, ok)
}

func TestTopExpenseCategory(t *testing.T) {
	now := time.Now()
	s := testSession(t, "u1")
	entries := []domain.Transaction{
		entry("u1", domain.TransactionExpense, 30, "Snacks", now),
		entry("u1", domain.TransactionExpense, 70, "Games", now),
	}

	top, ok := ledger.NewAggregator(s, entries).TopExpenseCategory()
	require.True(t, ok)
	assert.Equal(t, "Games", top.Category)
}

func TestMonthlySpending_ExpenseAndSellInTargetMonth(t *testing.T) {
	march := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	s := testSession(t, "u1")
	entries := []domain.Transaction{
		entry("u1", domain.TransactionExpense, 100, "Food", march),
		entry("u1", domain.TransactionSell, 40, "AAPL", march),
		entry("u1", domain.TransactionBuy, 500, "AAPL", march),
		entry("u1", domain.TransactionIncome, 900, "Salary", march),
		entry("u1", domain.TransactionExpense, 70, "Food", april),
	}

	spending := ledger.NewAggregator(s, entries).MonthlySpending(2026, time.March)
	assert.True(t, spending.Equal(decimal.NewFromInt(140)), "got %s", spending)

	totals := ledger.NewAggregator(s, entries).MonthlyTotals(2026, time.March)
	assert.True(t, totals.Income.Equal(decimal.NewFromInt(900)))
	assert.True(t, totals.Expenses.Equal(decimal.NewFromInt(100)))
}

func TestAggregator_IgnoresForeignEntries(t *testing.T) {
	now := time.Now()
	s := testSession(t, "u1")
	entries := []domain.Transaction{
		entry("u1", domain.TransactionExpense, 10, "Food", now),
		entry("intruder", domain.TransactionExpense, 1000, "Food", now),
	}

	agg := ledger.NewAggregator(s, entries)

	assert.Len(t, agg.Entries(), 1)
	assert.True(t, agg.Summary().TotalExpenses.Equal(decimal.NewFromInt(10)))
}

func TestSpentByCategory_CurrentMonthOnly(t *testing.T) {
	march := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	s := testSession(t, "u1")
	entries := []domain.Transaction{
		entry("u1", domain.TransactionExpense, 100, "Food", march),
		entry("u1", domain.TransactionExpense, 25, "Food", march),
		entry("u1", domain.TransactionExpense, 60, "Food", feb),
	}

	spent := ledger.NewAggregator(s, entries).SpentByCategory(2026, time.March)
	assert.True(t, spent["Food"].Equal(decimal.NewFromInt(125)))
}
