package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/shopwise/shopping-assistant/internal/core/ports"
)

const (
	statsKey        = "admin:stats"
	defaultStatsTTL = 30 * time.Second
)

// StatsCache is a short-TTL cache for the admin stats aggregate. Every failure
// degrades to a miss; the directory service always has the store to fall back
// on.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewStatsCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *StatsCache {
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}
	return &StatsCache{client: client, ttl: ttl, log: log}
}

func (c *StatsCache) Get(ctx context.Context) (*ports.StatsResult, bool) {
	payload, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Debug().Err(err).Msg("stats cache read failed")
		}
		return nil, false
	}

	var result ports.StatsResult
	if err := json.Unmarshal(payload, &result); err != nil {
		c.log.Debug().Err(err).Msg("stats cache payload corrupt")
		return nil, false
	}
	return &result, true
}

func (c *StatsCache) Set(ctx context.Context, result *ports.StatsResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		c.log.Debug().Err(err).Msg("stats cache encode failed")
		return
	}
	if err := c.client.Set(ctx, statsKey, payload, c.ttl).Err(); err != nil {
		c.log.Debug().Err(err).Msg("stats cache write failed")
	}
}
