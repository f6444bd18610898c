package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svarno/svarno_backend/internal/core/domain"
	"github.com/svarno/svarno_backend/internal/core/ledger"
)

func TestRecent_DefaultWindow(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	entries := ledger.PlaceholderTransactions("u1", now)
	entries = append(entries, entry("u1", domain.TransactionExpense, 5, "Old", now.AddDate(0, 0, -30)))

	recent := ledger.Recent(entries, 0, now)
	assert.Len(t, recent, 4)

	narrow := ledger.Recent(entries, 1, now)
	assert.Len(t, narrow, 2)
}

func TestInMonthAndByType(t *testing.T) {
	march := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	entries := []domain.Transaction{
		entry("u1", domain.TransactionExpense, 10, "Food", march),
		entry("u1", domain.TransactionIncome, 10, "Gift", march),
		entry("u1", domain.TransactionExpense, 10, "Food", march.AddDate(0, 1, 0)),
	}

	assert.Len(t, ledger.InMonth(entries, 2026, time.March), 2)
	assert.Len(t, ledger.ByType(entries, domain.TransactionExpense), 2)
	assert.Len(t, ledger.ByCategory(entries, "Gift"), 1)
}

func TestQuery_SearchFilterAndSort(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	entries := ledger.PlaceholderTransactions("u1", now)

	expense := domain.TransactionExpense
	got := ledger.Query(entries, ledger.QueryOptions{Type: &expense, SortBy: ledger.SortByAmount, Order: ledger.OrderAsc})
	require.Len(t, got, 3)
	assert.Equal(t, "Netflix Subscription", got[0].Description)
	assert.Equal(t, "Rent Payment", got[2].Description)

	got = ledger.Query(entries, ledger.QueryOptions{Search: "DINING"})
	require.Len(t, got, 1)
	assert.Equal(t, "Grocery Shopping", got[0].Description)

	got = ledger.Query(entries, ledger.QueryOptions{SortBy: ledger.SortByDescription, Order: ledger.OrderAsc})
	require.Len(t, got, 4)
	assert.Equal(t, "Grocery Shopping", got[0].Description)

	got = ledger.Query(entries, ledger.QueryOptions{})
	assert.Equal(t, "Monthly Salary", got[0].Description, "default is newest first")
}
