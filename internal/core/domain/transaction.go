package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
	TransactionBuy     TransactionType = "buy"
	TransactionSell    TransactionType = "sell"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionIncome, TransactionExpense, TransactionBuy, TransactionSell:
		return true
	}
	return false
}

// CountsAsSpending reports whether the type contributes to monthly spending.
func (t TransactionType) CountsAsSpending() bool {
	return t == TransactionExpense || t == TransactionSell
}

var (
	ErrAmountNotPositive   = errors.New("amount must be greater than zero")
	ErrDescriptionRequired = errors.New("description is required")
	ErrCategoryRequired    = errors.New("category is required")
	ErrInvalidType         = errors.New("transaction type must be one of income, expense, buy, sell")
	ErrEmptyPatch          = errors.New("no fields to update")
)

// Transaction is a single ledger entry owned by exactly one user.
type Transaction struct {
	TransactionID string          `json:"id"`     // Server-assigned UUID
	UserID        string          `json:"userId"` // Owner
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"` // Non-negative
	Description   string          `json:"description"`
	Category      string          `json:"category,omitempty"` // Empty means uncategorised
	Date          time.Time       `json:"date"`
	Symbol        *string         `json:"symbol,omitempty"` // Ticker for buy/sell
	Source        *string         `json:"source,omitempty"`
	AuditFields
}

// Validate checks the fields a caller must supply when recording a transaction.
func (t *Transaction) Validate() error {
	if !t.Type.IsValid() {
		return ErrInvalidType
	}
	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrDescriptionRequired
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrCategoryRequired
	}
	return nil
}

// HasCategory reports whether the entry carries a category label.
func (t *Transaction) HasCategory() bool {
	return t.Category != ""
}

// TransactionPatch carries the fields of a partial update. Nil fields are left untouched.
type TransactionPatch struct {
	Type        *TransactionType
	Amount      *decimal.Decimal
	Description *string
	Category    *string
	Date        *time.Time
	Symbol      *string
	Source      *string
}

// IsEmpty reports whether the patch changes nothing.
func (p TransactionPatch) IsEmpty() bool {
	return p.Type == nil && p.Amount == nil && p.Description == nil &&
		p.Category == nil && p.Date == nil && p.Symbol == nil && p.Source == nil
}

// Validate applies the creation rules to the fields present in the patch.
func (p TransactionPatch) Validate() error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}
	if p.Type != nil && !p.Type.IsValid() {
		return ErrInvalidType
	}
	if p.Amount != nil && !p.Amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		return ErrDescriptionRequired
	}
	if p.Category != nil && strings.TrimSpace(*p.Category) == "" {
		return ErrCategoryRequired
	}
	return nil
}

// Normalize returns a copy of the patch with its text fields trimmed, the
// same way a new transaction is recorded.
func (p TransactionPatch) Normalize() TransactionPatch {
	if p.Description != nil {
		description := strings.TrimSpace(*p.Description)
		p.Description = &description
	}
	if p.Category != nil {
		category := strings.TrimSpace(*p.Category)
		p.Category = &category
	}
	return p
}

// Category options offered to clients when recording a transaction.
var (
	ExpenseCategories = []string{
		"Food & Dining",
		"Transportation",
		"Entertainment",
		"Shopping",
		"Bills & Utilities",
		"Healthcare",
		"Education",
		"Travel",
		"Personal Care",
		"Other",
	}
	IncomeCategories = []string{
		"Salary",
		"Freelance",
		"Investment Returns",
		"Gift",
		"Allowance",
		"Other",
	}
)
