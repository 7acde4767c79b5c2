package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/driverdash/backend/internal/application/adapter"
)

// summaryCacheTTL bounds staleness for entries that escape explicit
// invalidation, such as a cached summary crossing midnight.
const summaryCacheTTL = 15 * time.Minute

// redisSummaryCache implements the adapter.SummaryCache interface.
type redisSummaryCache struct {
	client *redis.Client
}

// NewSummaryCache creates a Redis-backed dashboard summary cache.
func NewSummaryCache(client *redis.Client) adapter.SummaryCache {
	return &redisSummaryCache{
		client: client,
	}
}

// Get retrieves a cached summary. A miss returns (nil, nil).
func (c *redisSummaryCache) Get(ctx context.Context, userID uuid.UUID, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, cacheKey(userID, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read summary cache: %w", err)
	}
	return payload, nil
}

// Set stores a computed summary with a bounded TTL.
func (c *redisSummaryCache) Set(ctx context.Context, userID uuid.UUID, key string, payload []byte) error {
	if err := c.client.Set(ctx, cacheKey(userID, key), payload, summaryCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to write summary cache: %w", err)
	}
	return nil
}

// InvalidateUser removes every cached summary for the user. Trip writes call
// this so the dashboard never serves totals that predate the change.
func (c *redisSummaryCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	pattern := cacheKey(userID, "*")

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan summary cache keys: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete summary cache keys: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// cacheKey namespaces cache entries per user so invalidation can target a
// single driver's summaries.
func cacheKey(userID uuid.UUID, key string) string {
	return fmt.Sprintf("dashboard:%s:%s", userID, key)
}
