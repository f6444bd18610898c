package services

import (
	portsrepo "github.com/svarno/svarno_backend/internal/core/ports/repositories"
	portssvc "github.com/svarno/svarno_backend/internal/core/ports/services"
	"github.com/svarno/svarno_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	storeOptions := []StoreOption{WithReadTimeout(cfg.RemoteReadTimeout)}
	if repos.SnapshotCache != nil {
		storeOptions = append(storeOptions, WithSnapshotCache(repos.SnapshotCache))
	}
	if repos.EventPublisher != nil {
		storeOptions = append(storeOptions, WithEventPublisher(repos.EventPublisher))
	}

	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		WithStoreCache(cfg.StoreCacheSize, cfg.StoreCacheTTL),
		WithStoreOptions(storeOptions...),
	)

	container.Budget = NewBudgetService(
		repos.BudgetRepo,
		WithLedgerReader(container.Transaction),
		WithBudgetReadTimeout(cfg.RemoteReadTimeout),
	)

	container.Dashboard = NewDashboardService(
		repos.DashboardRepo,
		container.Transaction,
		container.Budget,
		WithDashboardReadTimeout(cfg.RemoteReadTimeout),
	)

	container.Insight = NewInsightService(repos.TransactionRepo, repos.BudgetRepo, repos.DashboardRepo)

	container.User = NewUserService(repos.UserRepo)
	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
