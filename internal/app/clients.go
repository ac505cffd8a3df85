package app

import (
	"context"
	"os"

	bqclient "github.com/saleehq/agent-dashboard/internal/clients/bigquery"
	redisclient "github.com/saleehq/agent-dashboard/internal/clients/redis"
	"github.com/saleehq/agent-dashboard/internal/platform/logger"
	"github.com/saleehq/agent-dashboard/internal/warehouse"
)

type Clients struct {
	BigQuery bqclient.Client
	Cache    warehouse.Cache
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	bq, err := bqclient.New(ctx, log, cfg.Tables.Project)
	if err != nil {
		return Clients{}, err
	}

	// Redis is shared-cache mode for multi-replica deploys; the in-process
	// cache covers the single-instance default.
	var cache warehouse.Cache
	if os.Getenv("REDIS_ADDR") != "" {
		cache, err = redisclient.NewQueryCache(log)
		if err != nil {
			log.Warn("redis cache unavailable, using in-process cache", "error", err)
			cache = warehouse.NewMemoryCache()
		}
	} else {
		cache = warehouse.NewMemoryCache()
	}

	return Clients{BigQuery: bq, Cache: cache}, nil
}
