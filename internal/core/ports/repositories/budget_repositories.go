package repositories

import (
	"context"
	"time"

	"github.com/svarno/svarno_backend/internal/core/domain"
)

// BudgetReader defines read operations for budgets
type BudgetReader interface {
	// ListBudgetsByUser retrieves all budgets of userID ordered by category.
	ListBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budgets
type BudgetWriter interface {
	// SaveBudget persists a new budget. A second budget for the same category returns apperrors.ErrDuplicate.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// UpdateBudget applies patch to the budget scoped to (budgetID, userID) and returns the stored row.
	UpdateBudget(ctx context.Context, userID, budgetID string, patch domain.BudgetPatch, updatedAt time.Time) (*domain.Budget, error)

	// DeleteBudget removes the budget scoped to (budgetID, userID).
	DeleteBudget(ctx context.Context, userID, budgetID string) error
}

// BudgetRepositoryFacade combines all budget repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
