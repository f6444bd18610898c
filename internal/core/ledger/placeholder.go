package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/svarno/svarno_backend/internal/core/domain"
)

// Placeholder IDs are stable so clients can key list rows across refreshes.
const placeholderIDPrefix = "placeholder-"

// PlaceholderTransactions is the fixed sample ledger served when neither the
// database nor a snapshot is available. Dates are relative to now.
func PlaceholderTransactions(userID string, now time.Time) []domain.Transaction {
	source := func(s string) *string { return &s }
	day := 24 * time.Hour

	entries := []domain.Transaction{
		{
			TransactionID: placeholderIDPrefix + "1",
			Type:          domain.TransactionIncome,
			Amount:        decimal.NewFromInt(5000),
			Description:   "Monthly Salary",
			Category:      "Salary",
			Date:          now,
			Source:        source("Company Payroll"),
		},
		{
			TransactionID: placeholderIDPrefix + "2",
			Type:          domain.TransactionExpense,
			Amount:        decimal.NewFromInt(250),
			Description:   "Grocery Shopping",
			Category:      "Food & Dining",
			Date:          now.Add(-day),
			Source:        source("Chase Debit Card"),
		},
		{
			TransactionID: placeholderIDPrefix + "3",
			Type:          domain.TransactionExpense,
			Amount:        decimal.NewFromInt(1200),
			Description:   "Rent Payment",
			Category:      "Bills & Utilities",
			Date:          now.Add(-2 * day),
			Source:        source("Bank Transfer"),
		},
		{
			TransactionID: placeholderIDPrefix + "4",
			Type:          domain.TransactionExpense,
			Amount:        decimal.NewFromInt(80),
			Description:   "Netflix Subscription",
			Category:      "Entertainment",
			Date:          now.Add(-4 * day),
			Source:        source("Credit Card"),
		},
	}
	for i := range entries {
		entries[i].UserID = userID
		entries[i].AuditFields = domain.NewAuditFields(userID, now)
	}
	return entries
}

// PlaceholderBudgets is the fixed sample budget list served when budgets cannot be fetched.
func PlaceholderBudgets(userID string) []domain.Budget {
	return []domain.Budget{
		{BudgetID: placeholderIDPrefix + "food", UserID: userID, Category: "Food", Limit: decimal.NewFromInt(500), Spent: decimal.NewFromInt(350), Color: "#3B82F6"},
		{BudgetID: placeholderIDPrefix + "entertainment", UserID: userID, Category: "Entertainment", Limit: decimal.NewFromInt(200), Spent: decimal.NewFromInt(150), Color: "#10B981"},
		{BudgetID: placeholderIDPrefix + "transportation", UserID: userID, Category: "Transportation", Limit: decimal.NewFromInt(300), Spent: decimal.NewFromInt(280), Color: "#F59E0B"},
	}
}
