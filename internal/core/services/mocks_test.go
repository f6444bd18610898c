package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/svarno/svarno_backend/internal/core/domain"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	var entries []domain.Transaction
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.Transaction)
	}
	return entries, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	var tx *domain.Transaction
	if args.Get(0) != nil {
		tx = args.Get(0).(*domain.Transaction)
	}
	return tx, args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, tx domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, userID, transactionID string, patch domain.TransactionPatch, updatedAt time.Time) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID, patch, updatedAt)
	var tx *domain.Transaction
	if args.Get(0) != nil {
		tx = args.Get(0).(*domain.Transaction)
	}
	return tx, args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

// --- Mock SnapshotCache ---
type MockSnapshotCache struct {
	mock.Mock
}

func (m *MockSnapshotCache) SaveSnapshot(ctx context.Context, userID string, entries []domain.Transaction) error {
	args := m.Called(ctx, userID, entries)
	return args.Error(0)
}

func (m *MockSnapshotCache) LoadSnapshot(ctx context.Context, userID string) ([]domain.Transaction, bool, error) {
	args := m.Called(ctx, userID)
	var entries []domain.Transaction
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.Transaction)
	}
	return entries, args.Bool(1), args.Error(2)
}

// --- Mock LedgerEventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishLedgerEvent(ctx context.Context, event domain.LedgerEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) ListBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error) {
	args := m.Called(ctx, userID)
	var budgets []domain.Budget
	if args.Get(0) != nil {
		budgets = args.Get(0).([]domain.Budget)
	}
	return budgets, args.Error(1)
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, userID, budgetID string, patch domain.BudgetPatch, updatedAt time.Time) (*domain.Budget, error) {
	args := m.Called(ctx, userID, budgetID, patch, updatedAt)
	var budget *domain.Budget
	if args.Get(0) != nil {
		budget = args.Get(0).(*domain.Budget)
	}
	return budget, args.Error(1)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	args := m.Called(ctx, userID, budgetID)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, authProvider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock DashboardRepository ---
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) ListHoldingsByUser(ctx context.Context, userID string) ([]domain.Holding, error) {
	args := m.Called(ctx, userID)
	var holdings []domain.Holding
	if args.Get(0) != nil {
		holdings = args.Get(0).([]domain.Holding)
	}
	return holdings, args.Error(1)
}

func (m *MockDashboardRepository) FindLearningProgress(ctx context.Context, userID string) (*domain.LearningProgress, error) {
	args := m.Called(ctx, userID)
	var progress *domain.LearningProgress
	if args.Get(0) != nil {
		progress = args.Get(0).(*domain.LearningProgress)
	}
	return progress, args.Error(1)
}

func (m *MockDashboardRepository) ListInsightsByUser(ctx context.Context, userID string) ([]domain.Insight, error) {
	args := m.Called(ctx, userID)
	var insights []domain.Insight
	if args.Get(0) != nil {
		insights = args.Get(0).([]domain.Insight)
	}
	return insights, args.Error(1)
}

func (m *MockDashboardRepository) UpsertInsight(ctx context.Context, insight domain.Insight) error {
	args := m.Called(ctx, insight)
	return args.Error(0)
}

func (m *MockDashboardRepository) DeleteInsightByKey(ctx context.Context, userID, dedupeKey string) error {
	args := m.Called(ctx, userID, dedupeKey)
	return args.Error(0)
}
