package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/itemvault/inventory-api/internal/api/metrics"
	"github.com/itemvault/inventory-api/internal/core/domain"
)

const defaultCacheTTL = 5 * time.Minute

// ItemCache is a read-through cache for single-item reads, backed by Redis.
// Key format: item:<id>. Cache failures degrade to a repository read and are
// never surfaced to the caller.
type ItemCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewItemCache(client *redis.Client, ttl time.Duration) *ItemCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ItemCache{client: client, ttl: ttl}
}

func (c *ItemCache) Get(ctx context.Context, id string) (*domain.Item, bool) {
	raw, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		metrics.ItemCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var item domain.Item
	if err := json.Unmarshal(raw, &item); err != nil {
		// Stale or corrupt entry: drop it and fall through to the repository.
		_ = c.client.Del(ctx, cacheKey(id)).Err()
		metrics.ItemCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.ItemCacheTotal.WithLabelValues("hit").Inc()
	return &item, true
}

func (c *ItemCache) Set(ctx context.Context, item *domain.Item) {
	raw, err := json.Marshal(item)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, cacheKey(item.ID), raw, c.ttl).Err()
}

func (c *ItemCache) Invalidate(ctx context.Context, id string) {
	_ = c.client.Del(ctx, cacheKey(id)).Err()
}

func cacheKey(id string) string {
	return "item:" + id
}
