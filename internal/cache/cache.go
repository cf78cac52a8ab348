package cache

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/covelane/ltc-data-api/internal/pkg/log"
	"github.com/covelane/ltc-data-api/internal/platform/config"
)

// Cache stores serialized analytics responses. List and fetch-by-id
// results are never cached; only the fixed aggregation payloads flow
// through here.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// New builds the configured cache backend. Returns nil when caching is
// disabled; callers treat a nil cache as a no-op.
func New(cfg *config.CacheConfig) Cache {
	if cfg == nil || !cfg.Enabled {
		return nil
	}
	switch cfg.Backend {
	case "redis":
		return newRedisCache(&cfg.Redis)
	default:
		return newMemoryCache()
	}
}

type memoryItem struct {
	value      []byte
	expiration time.Time
}

type memoryCache struct {
	mu    sync.RWMutex
	items map[string]memoryItem
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[string]memoryItem)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(item.expiration) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil, false
	}
	return item.value, true
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	c.mu.Lock()
	c.items[key] = memoryItem{value: value, expiration: time.Now().Add(ttl)}
	c.mu.Unlock()
}

type redisCache struct {
	client *redis.Client
}

func newRedisCache(cfg *config.RedisConfig) *redisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn("cache get failed for %s: %v", key, err)
		}
		return nil, false
	}
	return value, true
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Warn("cache set failed for %s: %v", key, err)
	}
}
