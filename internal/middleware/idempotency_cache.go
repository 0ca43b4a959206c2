package middleware

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// idempotencyCache is the in-process IdempotencyStore.
type idempotencyCache struct {
	mu    sync.RWMutex
	items map[string]*CachedResponse
	ttl   time.Duration
}

func newIdempotencyCache(ttl time.Duration) *idempotencyCache {
	c := &idempotencyCache{
		items: make(map[string]*CachedResponse),
		ttl:   ttl,
	}
	go c.startCleanup()
	return c
}

// Get retrieves a cached response that has not expired.
func (c *idempotencyCache) Get(_ context.Context, key string) (*CachedResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resp, ok := c.items[key]
	if !ok || time.Since(resp.Timestamp) > c.ttl {
		return nil, false
	}
	return resp, true
}

// Set stores a response stamped with the current time.
func (c *idempotencyCache) Set(_ context.Context, key string, resp *CachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp.Timestamp = time.Now()
	c.items[key] = resp
}

func (c *idempotencyCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

func (c *idempotencyCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, resp := range c.items {
		if now.Sub(resp.Timestamp) > c.ttl {
			delete(c.items, key)
		}
	}
}

// RedisIdempotencyStore shares idempotency responses between instances through Redis.
type RedisIdempotencyStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisIdempotencyStore creates a Redis backed store. Keys are "<prefix>:idempotency:<hash>".
func NewRedisIdempotencyStore(client *redis.Client, prefix string, ttl time.Duration) *RedisIdempotencyStore {
	if ttl <= 0 {
		ttl = IdempotencyKeyTTL
	}
	return &RedisIdempotencyStore{client: client, prefix: prefix + ":idempotency:", ttl: ttl}
}

// Get retrieves a stored response.
func (s *RedisIdempotencyStore) Get(ctx context.Context, key string) (*CachedResponse, bool) {
	raw, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("idempotency store get failed")
		}
		return nil, false
	}

	var resp CachedResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		log.Warn().Err(err).Msg("idempotency store entry corrupt")
		return nil, false
	}
	return &resp, true
}

// Set stores a response with the store TTL.
func (s *RedisIdempotencyStore) Set(ctx context.Context, key string, resp *CachedResponse) {
	resp.Timestamp = time.Now()
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, s.prefix+key, raw, s.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("idempotency store set failed")
	}
}
