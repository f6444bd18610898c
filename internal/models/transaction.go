package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
	Type          string          `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	Category      sql.NullString  `db:"category"`
	Date          time.Time       `db:"date"`
	Symbol        sql.NullString  `db:"symbol"`
	Source        sql.NullString  `db:"source"`
	AuditFields
}
