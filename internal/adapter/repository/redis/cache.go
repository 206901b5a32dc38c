package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/splitpot/splitpot/internal/infrastructure/metrics"
)

// Cache implements usecase.Cache using Redis. It memoizes derived views
// such as the balance snapshot; storage stays the source of truth, so a
// cold or unreachable cache only costs a recompute.
type Cache struct {
	client  *redis.Client
	prefix  string
	metrics *metrics.Metrics
}

// NewCache creates a new Cache. Metrics may be nil.
func NewCache(client *redis.Client, m *metrics.Metrics) *Cache {
	return &Cache{
		client:  client,
		prefix:  "splitpot:",
		metrics: m,
	}
}

// Get retrieves a value by key.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if c.metrics != nil {
		switch {
		case err == nil:
			c.metrics.SnapshotCacheHits.Inc()
		case errors.Is(err, redis.Nil):
			c.metrics.SnapshotCacheMisses.Inc()
		default:
			c.metrics.CacheErrors.WithLabelValues("get").Inc()
		}
	}

	return val, err
}

// Set stores a value with TTL.
func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+key, value, ttl).Err()
	if err != nil && c.metrics != nil {
		c.metrics.CacheErrors.WithLabelValues("set").Inc()
	}

	return err
}

// Delete removes a key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	err := c.client.Del(ctx, c.prefix+key).Err()
	if err != nil && c.metrics != nil {
		c.metrics.CacheErrors.WithLabelValues("delete").Inc()
	}

	return err
}
