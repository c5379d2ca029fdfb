// Package redis caches restaurant menus for the read endpoint. The order
// workflow never reads through this cache; reconciliation always uses the
// live menu.
package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"food-delivery-service/internal/domain/entities"
	"food-delivery-service/internal/infrastructure/metrics"
)

type MenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{client: client, ttl: ttl}
}

func menuKey(restaurantID string) string {
	return "menu:" + restaurantID
}

// Get returns the cached menu and whether it was present. Cache errors
// are treated as misses; the caller falls through to the store.
func (c *MenuCache) Get(ctx context.Context, restaurantID string) ([]entities.MenuItem, bool) {
	data, err := c.client.Get(ctx, menuKey(restaurantID)).Bytes()
	if err != nil {
		metrics.CacheMisses.Inc()
		return nil, false
	}

	var items []entities.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		metrics.CacheMisses.Inc()
		return nil, false
	}

	metrics.CacheHits.Inc()
	return items, true
}

func (c *MenuCache) Set(ctx context.Context, restaurantID string, items []entities.MenuItem) {
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, menuKey(restaurantID), data, c.ttl).Err()
}

func (c *MenuCache) Invalidate(ctx context.Context, restaurantID string) {
	_ = c.client.Del(ctx, menuKey(restaurantID)).Err()
}
