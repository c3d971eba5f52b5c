package bootstrap

import (
	"context"
	"log/slog"

	"vander-key-store/internal/infra/db"
	"vander-key-store/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// NewDB is only reached when SESSION_STORE=postgres; the default memory
// store never opens a database connection.
func NewDB(ctx context.Context, lc fx.Lifecycle, cfg config.DBConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := db.RunMigrations(ctx, pool); err != nil {
		cleanup()
		return nil, err
	}
	logger.Info("database ready", "host", cfg.Host, "database", cfg.DBName)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
