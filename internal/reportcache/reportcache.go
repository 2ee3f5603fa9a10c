// Package reportcache caches rendered report payloads in Redis so
// repeated dashboard polls do not re-run the aggregation queries. Entries
// are invalidated whenever the owner's sales change.
package reportcache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

func key(ownerID int, period string) string {
	return fmt.Sprintf("report:%d:%s", ownerID, period)
}

// Get returns the cached payload for the owner's report, if present.
// A nil receiver means caching is disabled and always misses.
func (c *Cache) Get(ctx context.Context, ownerID int, period string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, key(ownerID, period)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *Cache) Set(ctx context.Context, ownerID int, period string, payload []byte) {
	if c == nil {
		return
	}
	c.rdb.Set(ctx, key(ownerID, period), payload, c.ttl)
}

// Invalidate drops all cached report periods for the owner.
func (c *Cache) Invalidate(ctx context.Context, ownerID int) {
	if c == nil {
		return
	}
	keys := []string{
		key(ownerID, "day"),
		key(ownerID, "week"),
		key(ownerID, "month"),
		key(ownerID, "year"),
	}
	c.rdb.Del(ctx, keys...)
}
