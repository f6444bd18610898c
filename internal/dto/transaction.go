package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/svarno/svarno_backend/internal/core/domain"
	"github.com/svarno/svarno_backend/internal/core/ledger"
)

// CreateTransactionRequest defines the data needed to record a ledger entry.
// Amount, description and category are checked by the store before any write.
type CreateTransactionRequest struct {
	Type        domain.TransactionType `json:"type" binding:"required,oneof=income expense buy sell"`
	Amount      decimal.Decimal        `json:"amount" binding:"required,gt=0"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Date        *time.Time             `json:"date"`   // Optional, defaults to now
	Symbol      *string                `json:"symbol"` // Optional, for buy/sell
	Source      *string                `json:"source"` // Optional
}

// ToDomain builds an unsaved entry owned by userID. Identity is assigned by the store.
func (r CreateTransactionRequest) ToDomain(userID string, now time.Time) domain.Transaction {
	date := now
	if r.Date != nil {
		date = *r.Date
	}
	return domain.Transaction{
		UserID:      userID,
		Type:        r.Type,
		Amount:      r.Amount,
		Description: strings.TrimSpace(r.Description),
		Category:    strings.TrimSpace(r.Category),
		Date:        date,
		Symbol:      r.Symbol,
		Source:      r.Source,
	}
}

// UpdateTransactionRequest defines the fields allowed in a partial update.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateTransactionRequest struct {
	Type        *domain.TransactionType `json:"type" binding:"omitempty,oneof=income expense buy sell"`
	Amount      *decimal.Decimal        `json:"amount"`
	Description *string                 `json:"description"`
	Category    *string                 `json:"category"`
	Date        *time.Time              `json:"date"`
	Symbol      *string                 `json:"symbol"`
	Source      *string                 `json:"source"`
}

// ToPatch converts the request into a normalized domain patch.
func (r UpdateTransactionRequest) ToPatch() domain.TransactionPatch {
	patch := domain.TransactionPatch{
		Type:        r.Type,
		Amount:      r.Amount,
		Description: r.Description,
		Category:    r.Category,
		Date:        r.Date,
		Symbol:      r.Symbol,
		Source:      r.Source,
	}
	return patch.Normalize()
}

// ListTransactionsParams defines query parameters for listing the ledger.
type ListTransactionsParams struct {
	Search string `form:"search"`
	Type   string `form:"type" binding:"omitempty,oneof=income expense buy sell"`
	SortBy string `form:"sortBy,default=date" binding:"oneof=date amount description"`
	Order  string `form:"order,default=desc" binding:"oneof=asc desc"`
}

// ToQueryOptions converts the params into ledger query options.
func (p ListTransactionsParams) ToQueryOptions() ledger.QueryOptions {
	opts := ledger.QueryOptions{
		Search: p.Search,
		SortBy: ledger.SortField(p.SortBy),
		Order:  ledger.SortOrder(p.Order),
	}
	if p.Type != "" {
		t := domain.TransactionType(p.Type)
		opts.Type = &t
	}
	return opts
}

// RecentTransactionsParams defines the trailing window for recent entries.
type RecentTransactionsParams struct {
	Days int `form:"days,default=7" binding:"min=1,max=366"`
}

// MonthlyTransactionsParams selects a calendar month. Zero values mean the current month.
type MonthlyTransactionsParams struct {
	Year  int `form:"year" binding:"omitempty,min=1970,max=9999"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

// Resolve fills unset fields from now.
func (p MonthlyTransactionsParams) Resolve(now time.Time) (int, time.Month) {
	year, month := p.Year, time.Month(p.Month)
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}
	return year, month
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID string                 `json:"id"`
	Type          domain.TransactionType `json:"type"`
	Amount        decimal.Decimal        `json:"amount"`
	Description   string                 `json:"description"`
	Category      string                 `json:"category,omitempty"`
	Date          time.Time              `json:"date"`
	Symbol        *string                `json:"symbol,omitempty"`
	Source        *string                `json:"source,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: tx.TransactionID,
		Type:          tx.Type,
		Amount:        tx.Amount,
		Description:   tx.Description,
		Category:      tx.Category,
		Date:          tx.Date,
		Symbol:        tx.Symbol,
		Source:        tx.Source,
		CreatedAt:     tx.CreatedAt,
		LastUpdatedAt: tx.LastUpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to DTOs
func ToTransactionResponses(txs []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txs))
	for i := range txs {
		res[i] = ToTransactionResponse(&txs[i])
	}
	return res
}

// ListTransactionsResponse wraps a ledger listing and its provenance.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Provenance
}

// SummaryResponse wraps the ledger summary and its provenance.
type SummaryResponse struct {
	ledger.SummaryStats
	Provenance
}

// CategoryTotalsResponse wraps the per-category totals and its provenance.
type CategoryTotalsResponse struct {
	Categories []ledger.CategoryTotal `json:"categories"`
	Top        *ledger.CategoryTotal  `json:"top,omitempty"`
	Provenance
}

// MonthlyTransactionsResponse wraps one calendar month of the ledger.
type MonthlyTransactionsResponse struct {
	Year         int                   `json:"year"`
	Month        int                   `json:"month"`
	Income       decimal.Decimal       `json:"income"`
	Expenses     decimal.Decimal       `json:"expenses"`
	Spending     decimal.Decimal       `json:"spending"`
	Transactions []TransactionResponse `json:"transactions"`
	Provenance
}

// ToMonthlyTransactionsResponse converts a month view into its DTO.
func ToMonthlyTransactionsResponse(r domain.Result[ledger.MonthView]) MonthlyTransactionsResponse {
	return MonthlyTransactionsResponse{
		Year:         r.Data.Year,
		Month:        int(r.Data.Month),
		Income:       r.Data.Income,
		Expenses:     r.Data.Expenses,
		Spending:     r.Data.Spending,
		Transactions: ToTransactionResponses(r.Data.Transactions),
		Provenance:   ToProvenance(r),
	}
}

// CategoryOptionsResponse lists the category labels offered per transaction type.
type CategoryOptionsResponse struct {
	Expense []string `json:"expense"`
	Income  []string `json:"income"`
}
