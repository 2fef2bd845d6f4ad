// File: services/feed/cache.go
package feed

import (
	"context"
	"encoding/json"
	"time"

	"urbanease/models"
	"urbanease/utils"

	"github.com/go-redis/redis/v8"
)

// ListingCache keeps a short-lived snapshot of the upstream listing set so
// filter, sort and page changes don't refetch on every interaction.
type ListingCache interface {
	Set(ctx context.Context, listings []models.Listing) error
	Get(ctx context.Context) ([]models.Listing, bool)
	Invalidate(ctx context.Context) error
}

type RedisListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisListingCache(client *redis.Client, ttl time.Duration) ListingCache {
	if ttl <= 0 {
		ttl = utils.FeedCacheTTL
	}
	return &RedisListingCache{client: client, ttl: ttl}
}

const snapshotKey = utils.FeedCachePrefix + "snapshot"

func (c *RedisListingCache) Set(ctx context.Context, listings []models.Listing) error {
	data, err := json.Marshal(listings)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, snapshotKey, data, c.ttl).Err()
}

func (c *RedisListingCache) Get(ctx context.Context) ([]models.Listing, bool) {
	val, err := c.client.Get(ctx, snapshotKey).Result()
	if err != nil {
		return nil, false
	}
	var listings []models.Listing
	if err := json.Unmarshal([]byte(val), &listings); err != nil {
		return nil, false
	}
	return listings, true
}

func (c *RedisListingCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, snapshotKey).Err()
}
