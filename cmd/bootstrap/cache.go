package bootstrap

import (
	"context"
	"log/slog"

	"shareit/internal/infra/cache"
	"shareit/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// CacheModule provides a redis client only when REDIS_ADDR is set
func CacheModule(cfg config.CacheConfig) fx.Option {
	if !cfg.Enabled() {
		return fx.Module("cache")
	}
	return fx.Module("cache",
		fx.Provide(NewRedis),
	)
}

func NewRedis(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	rdb := cache.NewRedis(cfg.Cache)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// an unreachable redis degrades to uncached reads
			if err := rdb.Ping(ctx).Err(); err != nil {
				slog.Warn("redis ping failed, user cache will miss", "addr", cfg.Cache.RedisAddr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}
