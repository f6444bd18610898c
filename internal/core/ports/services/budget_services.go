package services

import (
	"context"

	"github.com/svarno/svarno_backend/internal/core/domain"
	"github.com/svarno/svarno_backend/internal/core/ledger"
	"github.com/svarno/svarno_backend/internal/dto"
)

// BudgetReaderSvc defines read operations for budgets
type BudgetReaderSvc interface {
	// GetBudgets returns the user's budgets, or placeholder budgets when the store is unavailable.
	GetBudgets(ctx context.Context, session domain.Session) domain.Result[[]domain.Budget]

	// GetBudgetOverview tracks every budget against its limit and the current month's ledger.
	GetBudgetOverview(ctx context.Context, session domain.Session) domain.Result[ledger.BudgetOverview]
}

// BudgetWriterSvc defines write operations for budgets
type BudgetWriterSvc interface {
	CreateBudget(ctx context.Context, session domain.Session, req dto.CreateBudgetRequest) (*domain.Budget, error)
	UpdateBudget(ctx context.Context, session domain.Session, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, session domain.Session, budgetID string) error
}

// BudgetSvcFacade combines all budget service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}
