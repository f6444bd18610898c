package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/svarno/svarno_backend/internal/core/domain"
	"github.com/svarno/svarno_backend/internal/core/ledger"
	"github.com/svarno/svarno_backend/internal/dto"
)

// TransactionReaderSvc defines read operations over a user's ledger. Reads
// never fail outright: a remote outage yields a degraded Result.
type TransactionReaderSvc interface {
	// ListTransactions refreshes the ledger from the store and applies opts.
	ListTransactions(ctx context.Context, session domain.Session, opts ledger.QueryOptions) domain.Result[[]domain.Transaction]

	// GetSummary returns totals, net amount, savings rate and entry count.
	GetSummary(ctx context.Context, session domain.Session) domain.Result[ledger.SummaryStats]

	// GetCategoryTotals returns expense totals per category, largest first.
	GetCategoryTotals(ctx context.Context, session domain.Session) domain.Result[[]ledger.CategoryTotal]

	// GetRecentTransactions returns entries from the trailing window of days.
	GetRecentTransactions(ctx context.Context, session domain.Session, days int) domain.Result[[]domain.Transaction]

	// GetMonthlyTransactions returns the entries and totals of one calendar month.
	GetMonthlyTransactions(ctx context.Context, session domain.Session, year int, month time.Month) domain.Result[ledger.MonthView]

	// GetSpentByCategory returns per-category expense totals of one calendar month.
	GetSpentByCategory(ctx context.Context, session domain.Session, year int, month time.Month) domain.Result[map[string]decimal.Decimal]
}

// TransactionWriterSvc defines write operations over a user's ledger
type TransactionWriterSvc interface {
	// CreateTransaction validates and records a new entry.
	CreateTransaction(ctx context.Context, session domain.Session, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction merges a partial update into an entry owned by the session.
	UpdateTransaction(ctx context.Context, session domain.Session, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes an entry owned by the session.
	DeleteTransaction(ctx context.Context, session domain.Session, transactionID string) error
}

// TransactionSvcFacade combines all ledger service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
