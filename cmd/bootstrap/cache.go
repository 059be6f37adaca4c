package bootstrap

import (
	"context"
	"log/slog"

	"invoice-dashboard/internal/infra/viewcache"
	"invoice-dashboard/internal/pkg/clock"
	"invoice-dashboard/internal/pkg/config"
	"invoice-dashboard/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewViewStore,
		func(s viewcache.Store) shared.ViewInvalidator {
			return s
		},
	),
)

func NewViewStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (viewcache.Store, error) {
	if cfg.Cache.Driver != config.CacheDriverRedis {
		slog.Info("View cache initialized", "driver", config.CacheDriverMemory, "ttl", cfg.Cache.TTL)
		return viewcache.NewMemoryStore(cfg.Cache.TTL, clk), nil
	}

	client, err := viewcache.NewRedisClient(context.Background(), cfg.Cache)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	slog.Info("View cache initialized", "driver", config.CacheDriverRedis, "addr", cfg.Cache.RedisAddr, "ttl", cfg.Cache.TTL)
	return viewcache.NewRedisStore(client, cfg.Cache.TTL), nil
}
