package app

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/service/cache"
)

const (
	redisConnectTimeout = 3 * time.Second
	// Memory caches at least this large are split into shards.
	shardedCacheThreshold = 1024
)

// CacheComponents holds the settings cache and, for the redis backend, its client.
type CacheComponents struct {
	Settings cache.Cache
	Redis    *redis.Client
	// Backend is the backend actually in use; redis falls back to memory when unreachable.
	Backend string
}

// Stop releases the cache and closes the Redis client if any.
func (c *CacheComponents) Stop() {
	if c == nil || c.Settings == nil {
		return
	}
	c.Settings.Stop()
}

// InitializeCache creates the settings cache. A non-positive size disables caching.
func InitializeCache(cfg config.CacheConfig, redisCfg config.RedisConfig) *CacheComponents {
	if cfg.Size <= 0 {
		log.Info().Msg("Settings cache disabled")
		return &CacheComponents{}
	}

	if cfg.Backend == config.CacheBackendRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
		err := client.Ping(ctx).Err()
		cancel()
		if err == nil {
			log.Info().Str("addr", redisCfg.Addr).Msg("Connected to Redis")
			return &CacheComponents{
				Settings: cache.NewRedisCache(client, redisCfg.KeyPrefix, cfg.TTL),
				Redis:    client,
				Backend:  config.CacheBackendRedis,
			}
		}

		log.Error().Err(err).Str("addr", redisCfg.Addr).Msg("Failed to connect to Redis - falling back to memory cache")
		_ = client.Close()
	}

	var settings cache.Cache
	if cfg.Size >= shardedCacheThreshold {
		settings = cache.NewShardedCache(cfg.Size, cfg.TTL, 0)
	} else {
		settings = cache.NewMemoryCache(cfg.Size, cfg.TTL)
	}
	return &CacheComponents{Settings: settings, Backend: config.CacheBackendMemory}
}
