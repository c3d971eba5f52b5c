package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vander-key-store/internal/infra/sessionstore"
	"vander-key-store/internal/pkg/config"
	"vander-key-store/internal/usecase"

	"go.uber.org/fx"
)

const storeConnectTimeout = 15 * time.Second

var StoreModule = fx.Module("store",
	fx.Provide(
		NewSessionKeyStore,
	),
)

func NewSessionKeyStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (usecase.SessionKeyStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeConnectTimeout)
	defer cancel()

	switch cfg.Store.Driver {
	case config.StoreMemory:
		logger.Info("session key store: memory (associations are lost on restart)")
		return sessionstore.NewMemoryStore(), nil

	case config.StoreRedis:
		client, err := sessionstore.Connect(ctx, cfg.Store.RedisURL)
		if err != nil {
			return nil, err
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		logger.Info("session key store: redis", "ttl", cfg.Store.TTL)
		return sessionstore.NewRedisStore(client, cfg.Store.TTL, logger), nil

	case config.StorePostgres:
		pool, err := NewDB(ctx, lc, cfg.DB, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("session key store: postgres")
		return sessionstore.NewPostgresStore(pool, logger), nil

	default:
		return nil, fmt.Errorf("unsupported SESSION_STORE %q", cfg.Store.Driver)
	}
}
