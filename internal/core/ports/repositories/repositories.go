package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo        UserRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	BudgetRepo      BudgetRepositoryFacade
	DashboardRepo   DashboardRepositoryFacade

	// Optional; nil disables the stale-read tier and event publishing.
	SnapshotCache  SnapshotCache
	EventPublisher LedgerEventPublisher
}
