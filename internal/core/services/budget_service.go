package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/svarno/svarno_backend/internal/apperrors"
	"github.com/svarno/svarno_backend/internal/core/domain"
	"github.com/svarno/svarno_backend/internal/core/ledger"
	portsrepo "github.com/svarno/svarno_backend/internal/core/ports/repositories"
	portssvc "github.com/svarno/svarno_backend/internal/core/ports/services"
	"github.com/svarno/svarno_backend/internal/dto"
)

// budgetService implements the BudgetSvcFacade interface
type budgetService struct {
	BaseService
	budgetRepo  portsrepo.BudgetRepositoryFacade
	ledger      portssvc.TransactionReaderSvc
	readTimeout time.Duration
	now         func() time.Time
}

// BudgetServiceOption is a functional option for configuring the budget service
type BudgetServiceOption func(*budgetService)

// WithLedgerReader reports the current month's ledger spend next to each budget.
func WithLedgerReader(reader portssvc.TransactionReaderSvc) BudgetServiceOption {
	return func(s *budgetService) {
		s.ledger = reader
	}
}

// WithBudgetReadTimeout bounds the budget list read.
func WithBudgetReadTimeout(d time.Duration) BudgetServiceOption {
	return func(s *budgetService) {
		if d > 0 {
			s.readTimeout = d
		}
	}
}

// WithBudgetClock overrides time.Now.
func WithBudgetClock(now func() time.Time) BudgetServiceOption {
	return func(s *budgetService) {
		s.now = now
	}
}

// NewBudgetService creates a new budget service with the provided options
func NewBudgetService(repo portsrepo.BudgetRepositoryFacade, options ...BudgetServiceOption) portssvc.BudgetSvcFacade {
	svc := &budgetService{
		budgetRepo:  repo,
		readTimeout: DefaultRemoteReadTimeout,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure budgetService implements the BudgetSvcFacade interface
var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) GetBudgets(ctx context.Context, session domain.Session) domain.Result[[]domain.Budget] {
	readCtx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	budgets, err := s.budgetRepo.ListBudgetsByUser(readCtx, session.UserID)
	if err != nil {
		cause := apperrors.Unavailable("list budgets", err)
		s.LogWarn(ctx, cause, "Serving placeholder budgets", slog.String("user_id", session.UserID))
		return domain.Degraded(ledger.PlaceholderBudgets(session.UserID), domain.SourcePlaceholder, cause)
	}
	if budgets == nil {
		budgets = []domain.Budget{}
	}
	return domain.Live(budgets)
}

func (s *budgetService) GetBudgetOverview(ctx context.Context, session domain.Session) domain.Result[ledger.BudgetOverview] {
	budgets := s.GetBudgets(ctx, session)

	var spent domain.Result[map[string]decimal.Decimal]
	if s.ledger != nil && !budgets.IsDegraded() {
		now := s.now()
		spent = s.ledger.GetSpentByCategory(ctx, session, now.Year(), now.Month())
		if spent.IsDegraded() {
			// ledgerSpent is only reported from a live ledger.
			spent.Data = nil
		}
	}

	return domain.MapResult(budgets, func(b []domain.Budget) ledger.BudgetOverview {
		return ledger.Overview(b, spent.Data)
	})
}

func (s *budgetService) CreateBudget(ctx context.Context, session domain.Session, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	budget := req.ToDomain(session.UserID, s.now())
	if err := budget.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	budget.BudgetID = uuid.NewString()

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget",
			slog.String("user_id", session.UserID),
			slog.String("category", budget.Category))
		return nil, apperrors.WriteFailed("create budget", err)
	}

	s.LogInfo(ctx, "Budget created",
		slog.String("user_id", session.UserID),
		slog.String("budget_id", budget.BudgetID))
	return &budget, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, session domain.Session, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	patch := req.ToPatch()
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	updated, err := s.budgetRepo.UpdateBudget(ctx, session.UserID, budgetID, patch, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to update budget",
			slog.String("user_id", session.UserID),
			slog.String("budget_id", budgetID))
		return nil, apperrors.WriteFailed("update budget", err)
	}
	return updated, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, session domain.Session, budgetID string) error {
	if err := s.budgetRepo.DeleteBudget(ctx, session.UserID, budgetID); err != nil {
		s.LogError(ctx, err, "Failed to delete budget",
			slog.String("user_id", session.UserID),
			slog.String("budget_id", budgetID))
		return apperrors.WriteFailed("delete budget", err)
	}
	return nil
}
