package services

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/shopspring/decimal"
	"github.com/svarno/svarno_backend/internal/core/domain"
	"github.com/svarno/svarno_backend/internal/core/ledger"
	portsrepo "github.com/svarno/svarno_backend/internal/core/ports/repositories"
	portssvc "github.com/svarno/svarno_backend/internal/core/ports/services"
	"github.com/svarno/svarno_backend/internal/dto"
)

// Defaults for the per-user store registry.
const (
	DefaultStoreCacheSize = 1024
	DefaultStoreCacheTTL  = 30 * time.Minute
)

// transactionService routes each session to its own TransactionStore. Stores
// are kept in an expirable LRU so idle users release their mirrors.
type transactionService struct {
	BaseService
	repo         portsrepo.TransactionRepositoryFacade
	storeOptions []StoreOption
	now          func() time.Time

	mu     sync.Mutex
	stores *expirable.LRU[string, *TransactionStore]
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionServiceConfig)

type transactionServiceConfig struct {
	size         int
	ttl          time.Duration
	now          func() time.Time
	storeOptions []StoreOption
}

// WithStoreCache sets the size and idle TTL of the per-user store registry.
func WithStoreCache(size int, ttl time.Duration) TransactionServiceOption {
	return func(c *transactionServiceConfig) {
		if size > 0 {
			c.size = size
		}
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithStoreOptions passes options to every store the service creates.
func WithStoreOptions(options ...StoreOption) TransactionServiceOption {
	return func(c *transactionServiceConfig) {
		c.storeOptions = append(c.storeOptions, options...)
	}
}

// WithServiceClock overrides time.Now for the service and its stores.
func WithServiceClock(now func() time.Time) TransactionServiceOption {
	return func(c *transactionServiceConfig) {
		c.now = now
		c.storeOptions = append(c.storeOptions, WithClock(now))
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	cfg := transactionServiceConfig{
		size: DefaultStoreCacheSize,
		ttl:  DefaultStoreCacheTTL,
		now:  time.Now,
	}
	for _, option := range options {
		option(&cfg)
	}
	return &transactionService{
		repo:         repo,
		storeOptions: cfg.storeOptions,
		now:          cfg.now,
		stores:       expirable.NewLRU[string, *TransactionStore](cfg.size, nil, cfg.ttl),
	}
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) storeFor(session domain.Session) *TransactionStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	if store, ok := s.stores.Get(session.UserID); ok {
		return store
	}
	store := NewTransactionStore(session, s.repo, s.storeOptions...)
	s.stores.Add(session.UserID, store)
	return store
}

func (s *transactionService) ListTransactions(ctx context.Context, session domain.Session, opts ledger.QueryOptions) domain.Result[[]domain.Transaction] {
	return domain.MapResult(s.storeFor(session).List(ctx), func(entries []domain.Transaction) []domain.Transaction {
		return ledger.Query(entries, opts)
	})
}

func (s *transactionService) GetSummary(ctx context.Context, session domain.Session) domain.Result[ledger.SummaryStats] {
	return s.storeFor(session).Summary(ctx)
}

func (s *transactionService) GetCategoryTotals(ctx context.Context, session domain.Session) domain.Result[[]ledger.CategoryTotal] {
	return s.storeFor(session).CategoryTotals(ctx)
}

func (s *transactionService) GetRecentTransactions(ctx context.Context, session domain.Session, days int) domain.Result[[]domain.Transaction] {
	return s.storeFor(session).Recent(ctx, days)
}

func (s *transactionService) GetMonthlyTransactions(ctx context.Context, session domain.Session, year int, month time.Month) domain.Result[ledger.MonthView] {
	return s.storeFor(session).Month(ctx, year, month)
}

func (s *transactionService) GetSpentByCategory(ctx context.Context, session domain.Session, year int, month time.Month) domain.Result[map[string]decimal.Decimal] {
	return s.storeFor(session).SpentByCategory(ctx, year, month)
}

func (s *transactionService) CreateTransaction(ctx context.Context, session domain.Session, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	return s.storeFor(session).Create(ctx, req.ToDomain(session.UserID, s.now()))
}

func (s *transactionService) UpdateTransaction(ctx context.Context, session domain.Session, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	return s.storeFor(session).Update(ctx, transactionID, req.ToPatch())
}

func (s *transactionService) DeleteTransaction(ctx context.Context, session domain.Session, transactionID string) error {
	return s.storeFor(session).Delete(ctx, transactionID)
}
