package dto

import (
	"github.com/svarno/svarno_backend/internal/core/domain"
	"github.com/svarno/svarno_backend/internal/core/ledger"
)

// PortfolioSection is the portfolio card of the dashboard.
type PortfolioSection struct {
	domain.Portfolio
	Provenance
}

// TransactionsSection is the recent transactions card of the dashboard.
type TransactionsSection struct {
	Transactions []TransactionResponse `json:"transactions"`
	Provenance
}

// BudgetsSection is the budget progress card of the dashboard.
type BudgetsSection struct {
	Budgets []BudgetResponse    `json:"budgets"`
	Overall ledger.OverallUsage `json:"overall"`
	Provenance
}

// LearningSection is the learning progress card of the dashboard.
type LearningSection struct {
	domain.LearningProgress
	Provenance
}

// InsightsSection is the insights card of the dashboard.
type InsightsSection struct {
	Insights []domain.Insight `json:"insights"`
	Provenance
}

// DashboardResponse is the full authenticated home page payload.
type DashboardResponse struct {
	Portfolio        PortfolioSection    `json:"portfolio"`
	Transactions     TransactionsSection `json:"transactions"`
	Budgets          BudgetsSection      `json:"budgets"`
	LearningProgress LearningSection     `json:"learningProgress"`
	Insights         InsightsSection     `json:"insights"`
	QuickStats       domain.QuickStats   `json:"quickStats"`
}

// ToDashboardResponse converts the dashboard read model into its DTO.
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	overview := ledger.Overview(d.Budgets.Data, nil)
	return DashboardResponse{
		Portfolio:        PortfolioSection{Portfolio: d.Portfolio.Data, Provenance: ToProvenance(d.Portfolio)},
		Transactions:     TransactionsSection{Transactions: ToTransactionResponses(d.Transactions.Data), Provenance: ToProvenance(d.Transactions)},
		Budgets:          BudgetsSection{Budgets: ToBudgetResponses(overview.Budgets), Overall: overview.Overall, Provenance: ToProvenance(d.Budgets)},
		LearningProgress: LearningSection{LearningProgress: d.LearningProgress.Data, Provenance: ToProvenance(d.LearningProgress)},
		Insights:         InsightsSection{Insights: d.Insights.Data, Provenance: ToProvenance(d.Insights)},
		QuickStats:       d.QuickStats,
	}
}
