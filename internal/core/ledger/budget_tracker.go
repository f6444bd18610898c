package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/svarno/svarno_backend/internal/core/domain"
)

// Usage bands, in percent.
var (
	WarningThreshold = decimal.NewFromInt(80)
	OverThreshold    = decimal.NewFromInt(100)
)

// BudgetReport is one budget with its derived health.
type BudgetReport struct {
	Budget       domain.Budget       `json:"budget"`
	UsagePercent decimal.Decimal     `json:"usagePercent"`
	Status       domain.BudgetStatus `json:"status"`
	OverBy       decimal.Decimal     `json:"overBy"`
	// LedgerSpent is the live ledger spend for the category, reported next to
	// the stored Spent and never written back.
	LedgerSpent decimal.Decimal `json:"ledgerSpent"`
}

// OverallUsage is the aggregate health across all budgets.
type OverallUsage struct {
	TotalLimit   decimal.Decimal     `json:"totalLimit"`
	TotalSpent   decimal.Decimal     `json:"totalSpent"`
	UsagePercent decimal.Decimal     `json:"usagePercent"`
	Status       domain.BudgetStatus `json:"status"`
}

// Usage returns spent / limit * 100, unrounded. A non-positive limit reads
// as 0 when nothing is spent and as 100 otherwise. Classify this value and
// round only what is reported.
func Usage(spent, limit decimal.Decimal) decimal.Decimal {
	if !limit.IsPositive() {
		if spent.IsPositive() {
			return OverThreshold
		}
		return decimal.Zero
	}
	return spent.Div(limit).Mul(hundred)
}

// ReportedUsage rounds a usage percentage to one place for display.
func ReportedUsage(usage decimal.Decimal) decimal.Decimal {
	return usage.Round(1)
}

// Classify maps a usage percentage onto its band.
func Classify(usage decimal.Decimal) domain.BudgetStatus {
	switch {
	case usage.GreaterThanOrEqual(OverThreshold):
		return domain.BudgetOver
	case usage.GreaterThanOrEqual(WarningThreshold):
		return domain.BudgetWarning
	default:
		return domain.BudgetGood
	}
}

// Track builds a report per budget. ledgerSpent may be nil.
func Track(budgets []domain.Budget, ledgerSpent map[string]decimal.Decimal) []BudgetReport {
	reports := make([]BudgetReport, 0, len(budgets))
	for _, b := range budgets {
		usage := Usage(b.Spent, b.Limit)
		overBy := decimal.Zero
		if b.Spent.GreaterThan(b.Limit) {
			overBy = b.Spent.Sub(b.Limit)
		}
		live, ok := ledgerSpent[b.Category]
		if !ok {
			live = decimal.Zero
		}
		reports = append(reports, BudgetReport{
			Budget:       b,
			UsagePercent: ReportedUsage(usage),
			Status:       Classify(usage),
			OverBy:       overBy,
			LedgerSpent:  live,
		})
	}
	return reports
}

// Overall computes sum(spent) / sum(limit) * 100, or 0 when no limit is set.
func Overall(budgets []domain.Budget) OverallUsage {
	totalLimit := decimal.Zero
	totalSpent := decimal.Zero
	for _, b := range budgets {
		totalLimit = totalLimit.Add(b.Limit)
		totalSpent = totalSpent.Add(b.Spent)
	}

	usage := decimal.Zero
	if totalLimit.IsPositive() {
		usage = totalSpent.Div(totalLimit).Mul(hundred)
	}
	return OverallUsage{
		TotalLimit:   totalLimit,
		TotalSpent:   totalSpent,
		UsagePercent: ReportedUsage(usage),
		Status:       Classify(usage),
	}
}

// BudgetOverview pairs per-budget reports with the overall usage.
type BudgetOverview struct {
	Budgets []BudgetReport `json:"budgets"`
	Overall OverallUsage   `json:"overall"`
}

// Overview tracks every budget and computes the overall usage.
func Overview(budgets []domain.Budget, ledgerSpent map[string]decimal.Decimal) BudgetOverview {
	return BudgetOverview{
		Budgets: Track(budgets, ledgerSpent),
		Overall: Overall(budgets),
	}
}
