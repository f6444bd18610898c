package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/svarno/svarno_backend/internal/apperrors"
	"github.com/svarno/svarno_backend/internal/core/domain"
	"github.com/svarno/svarno_backend/internal/core/ledger"
	portsrepo "github.com/svarno/svarno_backend/internal/core/ports/repositories"
	portssvc "github.com/svarno/svarno_backend/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// Number of rows shown by the list cards of the dashboard.
const (
	dashboardRecentTransactions = 10
	dashboardTopHoldings        = 5
	dashboardInsights           = 5
)

// dashboardService assembles the home page from independent sections.
type dashboardService struct {
	BaseService
	repo         portsrepo.DashboardRepositoryFacade
	transactions portssvc.TransactionReaderSvc
	budgets      portssvc.BudgetReaderSvc
	readTimeout  time.Duration
	now          func() time.Time
}

// DashboardServiceOption is a functional option for configuring the dashboard service
type DashboardServiceOption func(*dashboardService)

// WithDashboardReadTimeout bounds each section read.
func WithDashboardReadTimeout(d time.Duration) DashboardServiceOption {
	return func(s *dashboardService) {
		if d > 0 {
			s.readTimeout = d
		}
	}
}

// WithDashboardClock overrides time.Now.
func WithDashboardClock(now func() time.Time) DashboardServiceOption {
	return func(s *dashboardService) {
		s.now = now
	}
}

// NewDashboardService creates a new dashboard service with the provided options
func NewDashboardService(repo portsrepo.DashboardRepositoryFacade, transactions portssvc.TransactionReaderSvc, budgets portssvc.BudgetReaderSvc, options ...DashboardServiceOption) portssvc.DashboardSvc {
	svc := &dashboardService{
		repo:         repo,
		transactions: transactions,
		budgets:      budgets,
		readTimeout:  DefaultRemoteReadTimeout,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure dashboardService implements the DashboardSvc interface
var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) GetDashboard(ctx context.Context, session domain.Session) (*domain.Dashboard, error) {
	var (
		d     domain.Dashboard
		month domain.Result[ledger.MonthView]
		now   = s.now()
	)

	// Sections never return errors; a failing section degrades on its own.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d.Portfolio = s.portfolio(gctx, session)
		return nil
	})
	g.Go(func() error {
		d.Transactions = s.transactions.ListTransactions(gctx, session, ledger.QueryOptions{})
		if len(d.Transactions.Data) > dashboardRecentTransactions {
			d.Transactions.Data = d.Transactions.Data[:dashboardRecentTransactions]
		}
		month = s.transactions.GetMonthlyTransactions(gctx, session, now.Year(), now.Month())
		return nil
	})
	g.Go(func() error {
		d.Budgets = s.budgets.GetBudgets(gctx, session)
		return nil
	})
	g.Go(func() error {
		d.LearningProgress = s.learningProgress(gctx, session)
		return nil
	})
	g.Go(func() error {
		d.Insights = s.insights(gctx, session)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.QuickStats = quickStats(month.Data, d.Budgets.Data, d.Portfolio.Data, d.LearningProgress.Data)
	return &d, nil
}

// quickStats reads from whatever each section resolved to, placeholders included.
func quickStats(month ledger.MonthView, budgets []domain.Budget, portfolio domain.Portfolio, learning domain.LearningProgress) domain.QuickStats {
	return domain.QuickStats{
		MonthlySpending: month.Spending,
		MonthlyIncome:   month.Income,
		NetAmount:       month.Income.Sub(month.Expenses),
		SavingsRate:     ledger.SavingsRate(month.Income, month.Expenses),
		BudgetUsage:     ledger.Overall(budgets).UsagePercent,
		PortfolioValue:  portfolio.TotalValue,
		Level:           learning.Level,
	}
}

func (s *dashboardService) portfolio(ctx context.Context, session domain.Session) domain.Result[domain.Portfolio] {
	readCtx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	holdings, err := s.repo.ListHoldingsByUser(readCtx, session.UserID)
	if err != nil {
		cause := apperrors.Unavailable("list holdings", err)
		s.LogWarn(ctx, cause, "Serving placeholder portfolio", slog.String("user_id", session.UserID))
		return domain.Degraded(placeholderPortfolio(session.UserID), domain.SourcePlaceholder, cause)
	}
	return domain.Live(summarizeHoldings(holdings))
}

// summarizeHoldings totals every holding and keeps the largest few for display.
// Holdings are expected ordered by value, largest first.
func summarizeHoldings(holdings []domain.Holding) domain.Portfolio {
	total := decimal.Zero
	change := decimal.Zero
	for _, h := range holdings {
		total = total.Add(h.Value)
		change = change.Add(h.DayChange)
	}
	percent := decimal.Zero
	if total.IsPositive() {
		percent = change.Div(total).Mul(decimal.NewFromInt(100)).Round(2)
	}
	top := holdings
	if len(top) > dashboardTopHoldings {
		top = top[:dashboardTopHoldings]
	}
	if top == nil {
		top = []domain.Holding{}
	}
	return domain.Portfolio{
		TotalValue:       total,
		DayChange:        change,
		DayChangePercent: percent,
		Holdings:         top,
	}
}

func (s *dashboardService) learningProgress(ctx context.Context, session domain.Session) domain.Result[domain.LearningProgress] {
	readCtx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	progress, err := s.repo.FindLearningProgress(readCtx, session.UserID)
	if err != nil {
		cause := apperrors.Unavailable("find learning progress", err)
		s.LogWarn(ctx, cause, "Serving placeholder learning progress", slog.String("user_id", session.UserID))
		return domain.Degraded(placeholderLearningProgress(session.UserID, s.now()), domain.SourcePlaceholder, cause)
	}
	if progress.Achievements == nil {
		progress.Achievements = []domain.Achievement{}
	}
	return domain.Live(*progress)
}

func (s *dashboardService) insights(ctx context.Context, session domain.Session) domain.Result[[]domain.Insight] {
	readCtx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	insights, err := s.repo.ListInsightsByUser(readCtx, session.UserID)
	if err != nil {
		cause := apperrors.Unavailable("list insights", err)
		s.LogWarn(ctx, cause, "Serving placeholder insights", slog.String("user_id", session.UserID))
		return domain.Degraded(placeholderInsights(session.UserID, s.now()), domain.SourcePlaceholder, cause)
	}
	if len(insights) > dashboardInsights {
		insights = insights[:dashboardInsights]
	}
	if insights == nil {
		insights = []domain.Insight{}
	}
	return domain.Live(insights)
}
