package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/svarno/svarno_backend/internal/apperrors"
	"github.com/svarno/svarno_backend/internal/core/domain"
	"github.com/svarno/svarno_backend/internal/core/ledger"
	portsrepo "github.com/svarno/svarno_backend/internal/core/ports/repositories"
)

// DefaultRemoteReadTimeout bounds a ledger read when no timeout is configured.
const DefaultRemoteReadTimeout = 3 * time.Second

// TransactionStore is the ledger of one session user. Writes go to the
// repository first and are mirrored locally only after they succeed; reads
// aggregate over the mirror.
type TransactionStore struct {
	BaseService
	session     domain.Session
	repo        portsrepo.TransactionRepositoryFacade
	snapshots   portsrepo.SnapshotCache
	publisher   portsrepo.LedgerEventPublisher
	readTimeout time.Duration
	now         func() time.Time

	mu      sync.RWMutex
	entries []domain.Transaction
	source  domain.DataSource
	loaded  bool
}

// StoreOption is a functional option for configuring a TransactionStore
type StoreOption func(*TransactionStore)

// WithSnapshotCache enables the last-known-good tier for degraded reads.
func WithSnapshotCache(cache portsrepo.SnapshotCache) StoreOption {
	return func(s *TransactionStore) {
		s.snapshots = cache
	}
}

// WithEventPublisher announces successful writes.
func WithEventPublisher(publisher portsrepo.LedgerEventPublisher) StoreOption {
	return func(s *TransactionStore) {
		s.publisher = publisher
	}
}

// WithReadTimeout bounds every remote read.
func WithReadTimeout(d time.Duration) StoreOption {
	return func(s *TransactionStore) {
		if d > 0 {
			s.readTimeout = d
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) StoreOption {
	return func(s *TransactionStore) {
		s.now = now
	}
}

// NewTransactionStore creates an empty store for session. Nothing is fetched
// until the first read.
func NewTransactionStore(session domain.Session, repo portsrepo.TransactionRepositoryFacade, options ...StoreOption) *TransactionStore {
	s := &TransactionStore{
		session:     session,
		repo:        repo,
		readTimeout: DefaultRemoteReadTimeout,
		now:         time.Now,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Session returns the session the store is scoped to.
func (s *TransactionStore) Session() domain.Session {
	return s.session
}

// List fetches the user's ledger, newest first, and refreshes the mirror.
// When the repository fails the result is degraded: the last snapshot if one
// exists, otherwise the placeholder ledger.
func (s *TransactionStore) List(ctx context.Context) domain.Result[[]domain.Transaction] {
	readCtx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	entries, err := s.repo.ListTransactionsByUser(readCtx, s.session.UserID)
	if err == nil {
		entries = ledger.NewAggregator(s.session, entries).Entries()
		ledger.SortByDateDesc(entries)
		s.replace(entries, domain.SourceLive)
		s.saveSnapshot(ctx, entries)
		return domain.Live(cloneEntries(entries))
	}

	cause := apperrors.Unavailable("list transactions", err)
	fallback, source := s.fallback(ctx)
	s.LogWarn(ctx, cause, "Serving degraded ledger",
		slog.String("user_id", s.session.UserID),
		slog.String("source", string(source)))
	s.replace(fallback, source)
	return domain.Degraded(cloneEntries(fallback), source, cause)
}

// Create validates entry, assigns its identity and records it remotely.
// The mirror is only touched after the remote write succeeds.
func (s *TransactionStore) Create(ctx context.Context, entry domain.Transaction) (*domain.Transaction, error) {
	entry.UserID = s.session.UserID
	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	now := s.now()
	entry.TransactionID = uuid.NewString()
	entry.AuditFields = domain.NewAuditFields(s.session.UserID, now)
	if entry.Date.IsZero() {
		entry.Date = now
	}

	if err := s.repo.SaveTransaction(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("user_id", s.session.UserID))
		return nil, apperrors.WriteFailed("create transaction", err)
	}

	s.mu.Lock()
	s.entries = append([]domain.Transaction{entry}, s.entries...)
	s.mu.Unlock()

	s.publish(ctx, domain.EventTransactionCreated, entry.TransactionID, entry.Category)
	created := entry
	return &created, nil
}

// Update merges patch into the entry identified by transactionID. The row
// returned by the repository replaces the mirrored copy.
func (s *TransactionStore) Update(ctx context.Context, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error) {
	patch = patch.Normalize()
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	updated, err := s.repo.UpdateTransaction(ctx, s.session.UserID, transactionID, patch, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to update transaction",
			slog.String("user_id", s.session.UserID),
			slog.String("transaction_id", transactionID))
		return nil, apperrors.WriteFailed("update transaction", err)
	}

	s.mu.Lock()
	replaced := false
	for i := range s.entries {
		if s.entries[i].TransactionID == updated.TransactionID {
			s.entries[i] = *updated
			replaced = true
			break
		}
	}
	if !replaced {
		s.entries = append([]domain.Transaction{*updated}, s.entries...)
	}
	s.mu.Unlock()

	s.publish(ctx, domain.EventTransactionUpdated, updated.TransactionID, updated.Category)
	return updated, nil
}

// Delete removes the entry identified by transactionID remotely, then from the mirror.
func (s *TransactionStore) Delete(ctx context.Context, transactionID string) error {
	if err := s.repo.DeleteTransaction(ctx, s.session.UserID, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction",
			slog.String("user_id", s.session.UserID),
			slog.String("transaction_id", transactionID))
		return apperrors.WriteFailed("delete transaction", err)
	}

	var category string
	s.mu.Lock()
	for i := range s.entries {
		if s.entries[i].TransactionID == transactionID {
			category = s.entries[i].Category
			s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.publish(ctx, domain.EventTransactionDeleted, transactionID, category)
	return nil
}

// Snapshot returns a copy of the mirror and where it came from.
func (s *TransactionStore) Snapshot() ([]domain.Transaction, domain.DataSource) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEntries(s.entries), s.source
}

// Summary returns the summary statistics of the mirror.
func (s *TransactionStore) Summary(ctx context.Context) domain.Result[ledger.SummaryStats] {
	return aggregate(ctx, s, (*ledger.Aggregator).Summary)
}

// CategoryTotals returns expense totals per category, largest first.
func (s *TransactionStore) CategoryTotals(ctx context.Context) domain.Result[[]ledger.CategoryTotal] {
	return aggregate(ctx, s, (*ledger.Aggregator).CategoryTotals)
}

// Month returns the entries and totals of one calendar month.
func (s *TransactionStore) Month(ctx context.Context, year int, month time.Month) domain.Result[ledger.MonthView] {
	return aggregate(ctx, s, func(a *ledger.Aggregator) ledger.MonthView {
		return a.Month(year, month)
	})
}

// SpentByCategory returns the expense total per category for one calendar month.
func (s *TransactionStore) SpentByCategory(ctx context.Context, year int, month time.Month) domain.Result[map[string]decimal.Decimal] {
	return aggregate(ctx, s, func(a *ledger.Aggregator) map[string]decimal.Decimal {
		return a.SpentByCategory(year, month)
	})
}

// ByType keeps mirrored entries of type t.
func (s *TransactionStore) ByType(ctx context.Context, t domain.TransactionType) domain.Result[[]domain.Transaction] {
	return aggregate(ctx, s, func(a *ledger.Aggregator) []domain.Transaction {
		return ledger.ByType(a.Entries(), t)
	})
}

// ByCategory keeps mirrored entries labelled category.
func (s *TransactionStore) ByCategory(ctx context.Context, category string) domain.Result[[]domain.Transaction] {
	return aggregate(ctx, s, func(a *ledger.Aggregator) []domain.Transaction {
		return ledger.ByCategory(a.Entries(), category)
	})
}

// Recent keeps mirrored entries from the trailing window of days.
func (s *TransactionStore) Recent(ctx context.Context, days int) domain.Result[[]domain.Transaction] {
	now := s.now()
	return aggregate(ctx, s, func(a *ledger.Aggregator) []domain.Transaction {
		return ledger.Recent(a.Entries(), days, now)
	})
}

// Query searches, filters and orders the mirror.
func (s *TransactionStore) Query(ctx context.Context, opts ledger.QueryOptions) domain.Result[[]domain.Transaction] {
	return aggregate(ctx, s, func(a *ledger.Aggregator) []domain.Transaction {
		return ledger.Query(a.Entries(), opts)
	})
}

// view returns the mirror, fetching it first when it is empty or degraded.
func (s *TransactionStore) view(ctx context.Context) ([]domain.Transaction, domain.DataSource, error) {
	s.mu.RLock()
	if s.loaded && s.source == domain.SourceLive {
		entries := cloneEntries(s.entries)
		s.mu.RUnlock()
		return entries, domain.SourceLive, nil
	}
	s.mu.RUnlock()

	r := s.List(ctx)
	return r.Data, r.Source, r.Err
}

func aggregate[T any](ctx context.Context, s *TransactionStore, fn func(*ledger.Aggregator) T) domain.Result[T] {
	entries, source, err := s.view(ctx)
	return domain.Result[T]{
		Data:   fn(ledger.NewAggregator(s.session, entries)),
		Source: source,
		Err:    err,
	}
}

func (s *TransactionStore) replace(entries []domain.Transaction, source domain.DataSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = cloneEntries(entries)
	s.source = source
	s.loaded = true
}

func (s *TransactionStore) fallback(ctx context.Context) ([]domain.Transaction, domain.DataSource) {
	if s.snapshots != nil {
		entries, found, err := s.snapshots.LoadSnapshot(ctx, s.session.UserID)
		switch {
		case err != nil:
			s.LogWarn(ctx, err, "Failed to load ledger snapshot", slog.String("user_id", s.session.UserID))
		case found:
			return ledger.NewAggregator(s.session, entries).Entries(), domain.SourceStale
		}
	}
	return ledger.PlaceholderTransactions(s.session.UserID, s.now()), domain.SourcePlaceholder
}

func (s *TransactionStore) saveSnapshot(ctx context.Context, entries []domain.Transaction) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.SaveSnapshot(ctx, s.session.UserID, entries); err != nil {
		s.LogWarn(ctx, err, "Failed to save ledger snapshot", slog.String("user_id", s.session.UserID))
	}
}

func (s *TransactionStore) publish(ctx context.Context, kind domain.LedgerEventType, transactionID, category string) {
	if s.publisher == nil {
		return
	}
	event := domain.LedgerEvent{
		Type:          kind,
		UserID:        s.session.UserID,
		TransactionID: transactionID,
		Category:      category,
		OccurredAt:    s.now(),
	}
	if err := s.publisher.PublishLedgerEvent(ctx, event); err != nil {
		s.LogWarn(ctx, err, "Failed to publish ledger event",
			slog.String("user_id", s.session.UserID),
			slog.String("event_type", string(kind)))
	}
}

func cloneEntries(entries []domain.Transaction) []domain.Transaction {
	if entries == nil {
		return []domain.Transaction{}
	}
	out := make([]domain.Transaction, len(entries))
	copy(out, entries)
	return out
}
