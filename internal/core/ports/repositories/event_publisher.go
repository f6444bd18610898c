package repositories

import (
	"context"

	"github.com/svarno/svarno_backend/internal/core/domain"
)

// LedgerEventPublisher announces ledger writes to downstream consumers.
type LedgerEventPublisher interface {
	PublishLedgerEvent(ctx context.Context, event domain.LedgerEvent) error
}
