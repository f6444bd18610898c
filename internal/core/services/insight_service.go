package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/svarno/svarno_backend/internal/apperrors"
	"github.com/svarno/svarno_backend/internal/core/domain"
	"github.com/svarno/svarno_backend/internal/core/ledger"
	portsrepo "github.com/svarno/svarno_backend/internal/core/ports/repositories"
	portssvc "github.com/svarno/svarno_backend/internal/core/ports/services"
)

const budgetInsightKeyPrefix = "budget:"

// insightService regenerates budget alerts from the ledger and the budgets.
type insightService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	budgetRepo      portsrepo.BudgetReader
	insightRepo     portsrepo.InsightRepository
	now             func() time.Time
}

// NewInsightService creates a new insight service.
func NewInsightService(transactionRepo portsrepo.TransactionReader, budgetRepo portsrepo.BudgetReader, insightRepo portsrepo.InsightRepository) portssvc.InsightSvc {
	return &insightService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		insightRepo:     insightRepo,
		now:             time.Now,
	}
}

// Ensure insightService implements the InsightSvc interface
var _ portssvc.InsightSvc = (*insightService)(nil)

func (s *insightService) RefreshBudgetInsights(ctx context.Context, userID string) error {
	session, err := domain.NewSession(userID, "", "", time.Time{})
	if err != nil {
		return apperrors.Validation("refresh insights: %v", err)
	}

	budgets, err := s.budgetRepo.ListBudgetsByUser(ctx, userID)
	if err != nil {
		return apperrors.Unavailable("list budgets", err)
	}
	entries, err := s.transactionRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return apperrors.Unavailable("list transactions", err)
	}

	now := s.now()
	spent := ledger.NewAggregator(session, entries).SpentByCategory(now.Year(), now.Month())

	var raised, cleared int
	for _, report := range ledger.Track(budgets, spent) {
		key := budgetInsightKeyPrefix + report.Budget.Category
		insight, ok := budgetAlert(report, now)
		if !ok {
			if err := s.insightRepo.DeleteInsightByKey(ctx, userID, key); err != nil {
				return apperrors.WriteFailed("delete budget insight", err)
			}
			cleared++
			continue
		}
		insight.UserID = userID
		insight.DedupeKey = key
		if err := s.insightRepo.UpsertInsight(ctx, insight); err != nil {
			return apperrors.WriteFailed("upsert budget insight", err)
		}
		raised++
	}

	s.LogInfo(ctx, "Budget insights refreshed",
		slog.String("user_id", userID),
		slog.Int("raised", raised),
		slog.Int("cleared", cleared))
	return nil
}

// budgetAlert builds the alert card for a budget in the warning or over band.
// The higher of the stored spend and the current month's ledger spend is used.
func budgetAlert(report ledger.BudgetReport, now time.Time) (domain.Insight, bool) {
	spent := report.Budget.Spent
	if report.LedgerSpent.GreaterThan(spent) {
		spent = report.LedgerSpent
	}
	usage := ledger.Usage(spent, report.Budget.Limit)
	status := ledger.Classify(usage)

	action := "Review Spending"
	insight := domain.Insight{
		InsightID:  uuid.NewString(),
		Type:       domain.InsightAlert,
		Title:      "Budget Alert",
		ActionText: &action,
		Category:   "budget",
		CreatedAt:  now,
	}
	switch status {
	case domain.BudgetOver:
		insight.Priority = domain.PriorityHigh
		insight.Description = fmt.Sprintf("You're over your %s budget (%s%% used)", report.Budget.Category, usage.StringFixed(0))
	case domain.BudgetWarning:
		insight.Priority = domain.PriorityMedium
		insight.Description = fmt.Sprintf("You're approaching your %s budget limit (%s%% used)", report.Budget.Category, usage.Floor().StringFixed(0))
	default:
		return domain.Insight{}, false
	}
	return insight, true
}
