package redis

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/saleehq/agent-dashboard/internal/platform/logger"
	"github.com/saleehq/agent-dashboard/internal/warehouse"
)

// queryCache backs the warehouse result cache with Redis so multiple
// dashboard replicas share one TTL window per parameter set.
type queryCache struct {
	log *logger.Logger
	rdb *goredis.Client
}

// NewQueryCache connects using REDIS_ADDR. Callers fall back to the
// in-process cache when the variable is unset.
func NewQueryCache(log *logger.Logger) (warehouse.Cache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &queryCache{
		log: log.With("client", "RedisQueryCache"),
		rdb: rdb,
	}, nil
}

func (c *queryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("cache read failed", "key", key, "error", err)
		return nil, false
	}
	return raw, true
}

func (c *queryCache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	if err := c.rdb.Set(ctx, key, val, ttl).Err(); err != nil {
		c.log.Warn("cache write failed", "key", key, "error", err)
	}
}
