package services

import (
	"context"

	"github.com/svarno/svarno_backend/internal/core/domain"
)

// DashboardSvc assembles the authenticated home page.
type DashboardSvc interface {
	// GetDashboard fetches every section concurrently. A failing section is
	// replaced by its default and flagged as degraded; it never fails the whole call.
	GetDashboard(ctx context.Context, session domain.Session) (*domain.Dashboard, error)
}

// InsightSvc regenerates the insight cards derived from the ledger.
type InsightSvc interface {
	// RefreshBudgetInsights writes a budget alert for every budget in the
	// warning or over band and removes alerts that no longer apply.
	RefreshBudgetInsights(ctx context.Context, userID string) error
}
