package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// BudgetStatus is the health band of a budget.
type BudgetStatus string

const (
	BudgetGood    BudgetStatus = "good"
	BudgetWarning BudgetStatus = "warning"
	BudgetOver    BudgetStatus = "over"
)

var (
	ErrLimitNotPositive = errors.New("limit must be greater than zero")
	ErrSpentNegative    = errors.New("spent must not be negative")
)

// Budget caps spending for one category. Spent is stored as entered and is
// not recomputed from the ledger.
type Budget struct {
	BudgetID string          `json:"id"`
	UserID   string          `json:"userId"`
	Category string          `json:"category"` // Unique per user
	Limit    decimal.Decimal `json:"limit"`
	Spent    decimal.Decimal `json:"spent"`
	Color    string          `json:"color"` // Display hint, e.g. "#3B82F6"
	AuditFields
}

// Validate checks a budget before it is persisted.
func (b *Budget) Validate() error {
	if strings.TrimSpace(b.Category) == "" {
		return ErrCategoryRequired
	}
	if !b.Limit.IsPositive() {
		return ErrLimitNotPositive
	}
	if b.Spent.IsNegative() {
		return ErrSpentNegative
	}
	return nil
}

// BudgetPatch carries a partial budget update.
type BudgetPatch struct {
	Limit *decimal.Decimal
	Spent *decimal.Decimal
	Color *string
}

// IsEmpty reports whether the patch changes nothing.
func (p BudgetPatch) IsEmpty() bool {
	return p.Limit == nil && p.Spent == nil && p.Color == nil
}

// Validate checks the fields present in the patch.
func (p BudgetPatch) Validate() error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}
	if p.Limit != nil && !p.Limit.IsPositive() {
		return ErrLimitNotPositive
	}
	if p.Spent != nil && p.Spent.IsNegative() {
		return ErrSpentNegative
	}
	return nil
}
