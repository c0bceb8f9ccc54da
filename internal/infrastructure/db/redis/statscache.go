package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/salesflow/crm-api/internal/core/ports"
)

const statsTTL = 30 * time.Second

// StatsCache caches dashboard summary counts in Redis for a short window.
// Key format: stats:<scope> where scope is an owner id or "all".
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached stats for scope, or (nil, nil) on a miss.
func (c *StatsCache) Get(ctx context.Context, scope string) (*ports.DashboardStats, error) {
	raw, err := c.client.Get(ctx, c.key(scope)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats ports.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	return &stats, nil
}

// Set stores stats for scope (expires after statsTTL).
func (c *StatsCache) Set(ctx context.Context, scope string, stats *ports.DashboardStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(scope), raw, statsTTL).Err()
}

func (c *StatsCache) key(scope string) string {
	return fmt.Sprintf("stats:%s", scope)
}
