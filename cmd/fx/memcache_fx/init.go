package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"wayfarer/internal/config"
	mem "wayfarer/pkg/memcache"
)

var Module = fx.Provide(provideStore)

func provideStore(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (mem.Store, error) {
	if cfg.RedisURL == "" {
		logger.Info("REDIS_URL not set, using in-process cache")
		return mem.NewInMemoryStore(cfg.PlaceCacheTTL, 10*time.Minute), nil
	}

	store, err := mem.NewRedisStore(cfg.RedisURL, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := store.Ping(ctx); err != nil {
				logger.Warn("redis unreachable, cache lookups will miss", zap.Error(err))
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}
