package events

import (
	"encoding/json"
	"fmt"

	"github.com/svarno/svarno_backend/internal/core/domain"
)

// encodeEvent renders a ledger event as a message body.
func encodeEvent(event domain.LedgerEvent) ([]byte, error) {
	return json.Marshal(event)
}

// decodeEvent parses a message body. Events without a type or owner are rejected.
func decodeEvent(body []byte) (domain.LedgerEvent, error) {
	var event domain.LedgerEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return event, fmt.Errorf("unmarshal ledger event: %w", err)
	}
	if event.Type == "" || event.UserID == "" {
		return event, fmt.Errorf("ledger event missing type or user")
	}
	return event, nil
}
