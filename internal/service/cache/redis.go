package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/metrics"
)

const scanBatch = 100

// RedisCache stores settings as JSON in Redis so that several service
// instances share cached values and invalidations.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache wraps an existing client. Keys are stored as "<prefix>:<key>".
func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	if prefix == "" {
		prefix = "storefront"
	}
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *RedisCache) key(k string) string {
	return c.prefix + ":" + k
}

// Get returns the cached value for key. Redis errors are logged and reported as a miss.
func (c *RedisCache) Get(ctx context.Context, key string) (model.StoreSettings, bool) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordCacheOperation("get", "miss")
		return model.StoreSettings{}, false
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache get failed")
		metrics.RecordCacheOperation("get", "error")
		return model.StoreSettings{}, false
	}

	var value model.StoreSettings
	if err := json.Unmarshal(data, &value); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache entry is corrupt, dropping it")
		c.client.Del(ctx, c.key(key))
		metrics.RecordCacheOperation("get", "error")
		return model.StoreSettings{}, false
	}

	metrics.RecordCacheOperation("get", "hit")
	return value, true
}

// Set stores value under key with the cache TTL.
func (c *RedisCache) Set(ctx context.Context, key string, value model.StoreSettings) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache marshal failed")
		metrics.RecordCacheOperation("set", "error")
		return
	}
	if err := c.client.Set(ctx, c.key(key), data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache set failed")
		metrics.RecordCacheOperation("set", "error")
		return
	}
	metrics.RecordCacheOperation("set", "success")
}

// Invalidate deletes key.
func (c *RedisCache) Invalidate(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache invalidate failed")
		metrics.RecordCacheOperation("invalidate", "error")
		return
	}
	metrics.RecordCacheOperation("invalidate", "success")
}

// Clear deletes every key under the cache prefix.
func (c *RedisCache) Clear(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, c.prefix+":*", scanBatch).Iterator()
	keys := make([]string, 0, scanBatch)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) == scanBatch {
			c.client.Del(ctx, keys...)
			keys = keys[:0]
		}
	}
	if len(keys) > 0 {
		c.client.Del(ctx, keys...)
	}
	if err := iter.Err(); err != nil {
		log.Warn().Err(err).Msg("redis cache clear failed")
		metrics.RecordCacheOperation("clear", "error")
		return
	}
	metrics.RecordCacheOperation("clear", "success")
}

// Ping checks connectivity; used by the readiness probe.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Stop closes the underlying client.
func (c *RedisCache) Stop() {
	if err := c.client.Close(); err != nil {
		log.Warn().Err(err).Msg("redis client close failed")
	}
}
