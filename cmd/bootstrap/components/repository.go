package components

import (
	"log/slog"

	"vander-key-store/internal/infra/registry"
	"vander-key-store/internal/pkg/config"
	"vander-key-store/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewKeyRegistry,
			fx.As(new(usecase.KeyRegistry)),
		),
	),
)

func NewKeyRegistry(cfg config.Config, logger *slog.Logger) *registry.FirebaseRegistry {
	logger.Info("key registry configured", "mode", cfg.Registry.WriteMode, "timeout", cfg.Registry.Timeout)
	return registry.NewFirebaseRegistry(cfg.Registry, logger)
}
