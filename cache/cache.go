// Package cache provides a small Redis-backed cache for dashboard rollups.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/azazahmad08/kayesbackend/store"
	"github.com/redis/go-redis/v9"
)

const statsKey = "dashboard:stats"

// StatsCache caches dashboard aggregates with a TTL. A nil *StatsCache is a
// valid no-op cache, so callers never need to branch on whether Redis is
// configured.
type StatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStatsCache(rdb *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{rdb: rdb, ttl: ttl}
}

func (c *StatsCache) Get(ctx context.Context) (*store.DashboardStats, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, statsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var stats store.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (c *StatsCache) Set(ctx context.Context, stats *store.DashboardStats) {
	if c == nil || c.rdb == nil {
		return
	}
	b, err := json.Marshal(stats)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, statsKey, b, c.ttl).Err()
}

// Invalidate drops the cached rollup, forcing the next read to recompute.
func (c *StatsCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, statsKey).Err()
}
