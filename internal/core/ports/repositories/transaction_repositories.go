package repositories

import (
	"context"
	"time"

	"github.com/svarno/svarno_backend/internal/core/domain"
)

// TransactionReader defines read operations for ledger entries
type TransactionReader interface {
	// ListTransactionsByUser retrieves every entry owned by userID, newest first.
	ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error)

	// FindTransactionByID retrieves one entry scoped to (transactionID, userID).
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger entries
type TransactionWriter interface {
	// SaveTransaction persists a new entry.
	SaveTransaction(ctx context.Context, tx domain.Transaction) error

	// UpdateTransaction merges patch into the row scoped to (transactionID, userID)
	// and returns the stored row.
	UpdateTransaction(ctx context.Context, userID, transactionID string, patch domain.TransactionPatch, updatedAt time.Time) (*domain.Transaction, error)

	// DeleteTransaction removes the row scoped to (transactionID, userID).
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// TransactionRepositoryFacade combines all ledger entry repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// SnapshotCache keeps the last-known-good ledger of each user for degraded reads.
type SnapshotCache interface {
	SaveSnapshot(ctx context.Context, userID string, entries []domain.Transaction) error
	// LoadSnapshot returns found=false when no snapshot exists.
	LoadSnapshot(ctx context.Context, userID string) (entries []domain.Transaction, found bool, err error)
}
