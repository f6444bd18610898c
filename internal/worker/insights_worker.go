// Package worker recomputes derived read models from ledger events.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/svarno/svarno_backend/internal/core/domain"
	portssvc "github.com/svarno/svarno_backend/internal/core/ports/services"
	"github.com/svarno/svarno_backend/internal/events"
)

// EventConsumer delivers ledger events until ctx is done.
type EventConsumer interface {
	ConsumeLedgerEvents(ctx context.Context, handler events.Handler) error
}

// InsightsWorker refreshes a user's budget alerts whenever their ledger changes.
type InsightsWorker struct {
	insights portssvc.InsightSvc
	consumer EventConsumer
}

func NewInsightsWorker(insights portssvc.InsightSvc, consumer EventConsumer) *InsightsWorker {
	return &InsightsWorker{insights: insights, consumer: consumer}
}

// HandleLedgerEvent processes a single ledger event.
func (w *InsightsWorker) HandleLedgerEvent(ctx context.Context, event domain.LedgerEvent) error {
	slog.InfoContext(ctx, "Processing ledger event",
		"type", event.Type,
		"user_id", event.UserID,
		"transaction_id", event.TransactionID)

	if err := w.insights.RefreshBudgetInsights(ctx, event.UserID); err != nil {
		return fmt.Errorf("refresh budget insights for %s: %w", event.UserID, err)
	}
	return nil
}

// Run consumes events until ctx is cancelled.
func (w *InsightsWorker) Run(ctx context.Context) error {
	return w.consumer.ConsumeLedgerEvents(ctx, w.HandleLedgerEvent)
}
