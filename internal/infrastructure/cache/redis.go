// Package cache holds the optional redis client used by the catalog
// response cache. Catalogs change rarely and are read by every client
// on startup, so a short server-side cache takes the load off postgres.
package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"prestamos-api/config"
)

// New returns nil when no REDIS_ADDR is configured; callers treat a nil
// client as "caching disabled".
func New(ctx context.Context, logger *zap.Logger, cfg config.Redis) (*redis.Client, error) {
	if cfg.Addr == "" {
		logger.Info("redis not configured, catalog cache disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Info("redis connected successfully")

	return client, nil
}
