// Package cache is an optional redis read-through cache for parse results.
// Parsing is deterministic for a fixed configuration, so identical inputs can
// be answered from the cache without re-running the pipeline.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"payment-intent-parser/internal/common/config"
	"payment-intent-parser/internal/common/metrics"
	"payment-intent-parser/internal/models"
)

// keyPrefix namespaces parse-result keys.
const keyPrefix = "intent:parse:"

// ParseCache caches serialized intents keyed by a hash of the input.
type ParseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a redis-backed parse cache.
func New(cfg config.CacheConfig) *ParseCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})
	return &ParseCache{
		client: rdb,
		ttl:    time.Duration(cfg.TTL) * time.Second,
	}
}

// NewWithClient wraps an existing client. Test hook.
func NewWithClient(client *redis.Client, ttl time.Duration) *ParseCache {
	return &ParseCache{client: client, ttl: ttl}
}

// Ping tests the connection.
func (c *ParseCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the connection.
func (c *ParseCache) Close() error {
	return c.client.Close()
}

// Get returns the cached intent for input, or nil on a miss. Redis errors
// are reported as misses; the caller just parses again.
func (c *ParseCache) Get(ctx context.Context, input string) (models.Intent, error) {
	data, err := c.client.Get(ctx, cacheKey(input)).Bytes()
	if err != nil {
		metrics.CacheMisses.Inc()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	intent, err := models.UnmarshalIntent(data)
	if err != nil {
		// Stale or corrupt entry, drop it
		metrics.CacheMisses.Inc()
		_ = c.client.Del(ctx, cacheKey(input)).Err()
		return nil, nil
	}
	metrics.CacheHits.Inc()
	return intent, nil
}

// Set stores the intent for input.
func (c *ParseCache) Set(ctx context.Context, input string, intent models.Intent) error {
	data, err := models.MarshalIntent(intent)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(input), data, c.ttl).Err()
}

func cacheKey(input string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(input)))
	return keyPrefix + hex.EncodeToString(sum[:])
}
