package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/svarno/svarno_backend/internal/core/domain"
	"github.com/svarno/svarno_backend/internal/events"
	"github.com/svarno/svarno_backend/internal/worker"
)

type MockInsightSvc struct {
	mock.Mock
}

func (m *MockInsightSvc) RefreshBudgetInsights(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// stubConsumer feeds a fixed list of events to the handler.
type stubConsumer struct {
	events []domain.LedgerEvent
	errs   []error
}

func (c *stubConsumer) ConsumeLedgerEvents(ctx context.Context, handler events.Handler) error {
	for _, e := range c.events {
		c.errs = append(c.errs, handler(ctx, e))
	}
	return ctx.Err()
}

func TestInsightsWorker_HandleLedgerEvent(t *testing.T) {
	svc := new(MockInsightSvc)
	svc.On("RefreshBudgetInsights", mock.Anything, "user-1").Return(nil).Once()

	w := worker.NewInsightsWorker(svc, nil)
	err := w.HandleLedgerEvent(context.Background(), domain.LedgerEvent{
		Type:   domain.EventTransactionCreated,
		UserID: "user-1",
	})

	require.NoError(t, err)
	svc.AssertExpectations(t)
}

func TestInsightsWorker_HandleLedgerEventFailure(t *testing.T) {
	svc := new(MockInsightSvc)
	svc.On("RefreshBudgetInsights", mock.Anything, "user-1").Return(errors.New("budgets unavailable")).Once()

	w := worker.NewInsightsWorker(svc, nil)
	err := w.HandleLedgerEvent(context.Background(), domain.LedgerEvent{Type: domain.EventTransactionDeleted, UserID: "user-1"})

	assert.ErrorContains(t, err, "budgets unavailable")
}

func TestInsightsWorker_Run(t *testing.T) {
	svc := new(MockInsightSvc)
	svc.On("RefreshBudgetInsights", mock.Anything, "user-1").Return(nil).Once()
	svc.On("RefreshBudgetInsights", mock.Anything, "user-2").Return(errors.New("boom")).Once()

	consumer := &stubConsumer{events: []domain.LedgerEvent{
		{Type: domain.EventTransactionCreated, UserID: "user-1"},
		{Type: domain.EventTransactionUpdated, UserID: "user-2"},
	}}

	require.NoError(t, worker.NewInsightsWorker(svc, consumer).Run(context.Background()))
	require.Len(t, consumer.errs, 2)
	assert.NoError(t, consumer.errs[0])
	assert.Error(t, consumer.errs[1])
	svc.AssertExpectations(t)
}
