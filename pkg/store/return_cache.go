// Package store holds the redis-backed response cache for hot list
// endpoints. The cache is best-effort: every method degrades to a miss or
// a no-op when redis is unavailable.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	listKeyPrefix = "returns:list:"
	defaultTTL    = 60 * time.Second
)

// ReturnCache caches serialized return list responses keyed by their
// filter combination. Lifecycle transitions invalidate the whole keyspace
// since any of them can change which filter buckets a return belongs to.
type ReturnCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewReturnCache(rdb *redis.Client) *ReturnCache {
	return &ReturnCache{
		rdb: rdb,
		ttl: defaultTTL,
	}
}

// ListKey builds the cache key for a status/merchant filter pair. Empty
// segments stand in for absent filters so the unfiltered listing gets a
// stable key too.
func ListKey(status, merchant string) string {
	return listKeyPrefix + status + ":" + merchant
}

// Get unmarshals a cached listing into dest. The boolean is false on a
// miss or any redis failure.
func (c *ReturnCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c.rdb == nil {
		return false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// Set stores a listing under key. Failures are swallowed.
func (c *ReturnCache) Set(ctx context.Context, key string, value interface{}) {
	if c.rdb == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, data, c.ttl)
}

// Invalidate drops every cached listing. The keyspace is tiny (one entry
// per filter combination actually requested) so KEYS is acceptable here.
func (c *ReturnCache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	keys, err := c.rdb.Keys(ctx, listKeyPrefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	c.rdb.Del(ctx, keys...)
}
