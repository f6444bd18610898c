package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svarno/svarno_backend/internal/core/domain"
)

// recordingAcker captures the acknowledgement given to a delivery.
type recordingAcker struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (a *recordingAcker) Ack(tag uint64, multiple bool) error {
	a.acked = true
	return nil
}

func (a *recordingAcker) Nack(tag uint64, multiple, requeue bool) error {
	a.nacked = true
	a.requeue = requeue
	return nil
}

func (a *recordingAcker) Reject(tag uint64, requeue bool) error {
	a.nacked = true
	a.requeue = requeue
	return nil
}

func sampleEvent() domain.LedgerEvent {
	return domain.LedgerEvent{
		Type:          domain.EventTransactionCreated,
		UserID:        "user-1",
		TransactionID: "tx-1",
		Category:      "Food",
		OccurredAt:    time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestDecodeEvent(t *testing.T) {
	body, err := encodeEvent(sampleEvent())
	require.NoError(t, err)

	got, err := decodeEvent(body)
	require.NoError(t, err)
	assert.Equal(t, sampleEvent(), got)

	_, err = decodeEvent([]byte(`{"type":"transaction.created"}`))
	assert.Error(t, err)

	_, err = decodeEvent([]byte(`not json`))
	assert.Error(t, err)
}

func TestHandleDelivery(t *testing.T) {
	body, err := encodeEvent(sampleEvent())
	require.NoError(t, err)

	tests := []struct {
		name        string
		body        []byte
		handlerErr  error
		wantAck     bool
		wantRequeue bool
	}{
		{name: "handled", body: body, wantAck: true},
		{name: "handler failure requeues", body: body, handlerErr: errors.New("db down"), wantRequeue: true},
		{name: "bad payload dropped", body: []byte("{"), wantRequeue: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acker := &recordingAcker{}
			called := false
			handleDelivery(context.Background(), amqp091.Delivery{Acknowledger: acker, Body: tt.body},
				func(ctx context.Context, event domain.LedgerEvent) error {
					called = true
					assert.Equal(t, "user-1", event.UserID)
					return tt.handlerErr
				})

			assert.Equal(t, tt.wantAck, acker.acked)
			assert.Equal(t, !tt.wantAck, acker.nacked)
			assert.Equal(t, tt.wantRequeue, acker.requeue)
			if string(tt.body) == "{" {
				assert.False(t, called)
			}
		})
	}
}
