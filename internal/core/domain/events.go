package domain

import "time"

// LedgerEventType names a ledger mutation.
type LedgerEventType string

const (
	EventTransactionCreated LedgerEventType = "transaction.created"
	EventTransactionUpdated LedgerEventType = "transaction.updated"
	EventTransactionDeleted LedgerEventType = "transaction.deleted"
)

// LedgerEvent is published after a successful ledger write.
type LedgerEvent struct {
	Type          LedgerEventType `json:"type"`
	UserID        string          `json:"userId"`
	TransactionID string          `json:"transactionId"`
	Category      string          `json:"category,omitempty"`
	OccurredAt    time.Time       `json:"occurredAt"`
}
