// Package cache keeps the last known good ledger of each user in Redis so a
// failed remote read can still serve stale data.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/svarno/svarno_backend/internal/core/domain"
	portsrepo "github.com/svarno/svarno_backend/internal/core/ports/repositories"
)

const (
	// DefaultSnapshotTTL bounds how stale a fallback ledger can be.
	DefaultSnapshotTTL = 24 * time.Hour

	// KeyPrefix is the prefix for snapshot keys.
	KeyPrefix = "ledger:snapshot:"
)

// cachedSnapshot is the stored payload.
type cachedSnapshot struct {
	UserID    string               `json:"user_id"`
	Entries   []domain.Transaction `json:"entries"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// RedisSnapshotCache implements portsrepo.SnapshotCache on Redis.
type RedisSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

var _ portsrepo.SnapshotCache = (*RedisSnapshotCache)(nil)

// NewRedisSnapshotCache creates a snapshot cache with DefaultSnapshotTTL.
func NewRedisSnapshotCache(client *redis.Client) *RedisSnapshotCache {
	return NewRedisSnapshotCacheWithTTL(client, DefaultSnapshotTTL)
}

// NewRedisSnapshotCacheWithTTL creates a snapshot cache with a custom TTL.
func NewRedisSnapshotCacheWithTTL(client *redis.Client, ttl time.Duration) *RedisSnapshotCache {
	return &RedisSnapshotCache{client: client, ttl: ttl, now: time.Now}
}

func snapshotKey(userID string) string {
	return KeyPrefix + userID
}

// SaveSnapshot overwrites the user's snapshot and resets its TTL.
func (c *RedisSnapshotCache) SaveSnapshot(ctx context.Context, userID string, entries []domain.Transaction) error {
	if entries == nil {
		entries = []domain.Transaction{}
	}
	data, err := json.Marshal(cachedSnapshot{UserID: userID, Entries: entries, UpdatedAt: c.now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := c.client.Set(ctx, snapshotKey(userID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot returns found=false on a cache miss.
func (c *RedisSnapshotCache) LoadSnapshot(ctx context.Context, userID string) ([]domain.Transaction, bool, error) {
	val, err := c.client.Get(ctx, snapshotKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var cached cachedSnapshot
	if err := json.Unmarshal(val, &cached); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	// A snapshot filed under another key is never served.
	if cached.UserID != userID {
		return nil, false, nil
	}
	if cached.Entries == nil {
		cached.Entries = []domain.Transaction{}
	}
	return cached.Entries, true, nil
}
