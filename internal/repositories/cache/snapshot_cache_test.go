package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svarno/svarno_backend/internal/core/domain"
	"github.com/svarno/svarno_backend/internal/repositories/cache"
)

// setupTestClient connects to a local Redis on DB 15, skipping when none is running.
func setupTestClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skip("Skipping test: Redis not available")
	}
	require.NoError(t, client.FlushDB(ctx).Err())
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestSnapshotCache_SaveAndLoad(t *testing.T) {
	client := setupTestClient(t)
	c := cache.NewRedisSnapshotCache(client)
	ctx := context.Background()

	entries := []domain.Transaction{{
		TransactionID: "tx-1",
		UserID:        "user-1",
		Type:          domain.TransactionExpense,
		Amount:        decimal.RequireFromString("12.50"),
		Description:   "Lunch",
		Category:      "Food",
		Date:          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}}

	require.NoError(t, c.SaveSnapshot(ctx, "user-1", entries))

	got, found, err := c.LoadSnapshot(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got, 1)
	assert.Equal(t, "tx-1", got[0].TransactionID)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("12.5")))

	ttl, err := client.TTL(ctx, cache.KeyPrefix+"user-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestSnapshotCache_Miss(t *testing.T) {
	c := cache.NewRedisSnapshotCache(setupTestClient(t))

	got, found, err := c.LoadSnapshot(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestSnapshotCache_EmptyLedgerIsFound(t *testing.T) {
	c := cache.NewRedisSnapshotCache(setupTestClient(t))
	ctx := context.Background()

	require.NoError(t, c.SaveSnapshot(ctx, "user-2", nil))

	got, found, err := c.LoadSnapshot(ctx, "user-2")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
