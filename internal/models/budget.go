package models

import "github.com/shopspring/decimal"

// Budget is a row of the budgets table.
type Budget struct {
	BudgetID    string          `db:"budget_id"`
	UserID      string          `db:"user_id"`
	Category    string          `db:"category"`
	LimitAmount decimal.Decimal `db:"limit_amount"`
	Spent       decimal.Decimal `db:"spent"`
	Color       string          `db:"color"`
	AuditFields
}
