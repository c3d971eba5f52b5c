package components

import (
	"log/slog"

	"vander-key-store/internal/domain/key"
	"vander-key-store/internal/pkg/clock"
	"vander-key-store/internal/pkg/config"
	"vander-key-store/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseKeysModule,
	usecaseCheckoutModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewKeyGenerator,
		fx.As(new(key.Generator)),
	),
	NewCatalog,
	NewDefaults,
)

var usecaseKeysModule = fx.Module("usecase/keys",
	fx.Provide(
		fx.Annotate(
			usecase.NewKeyReconciler,
			fx.As(new(usecase.KeyUseCase)),
			fx.As(new(usecase.KeyIssuer)),
		),
		NewWebhookHandler,
	),
)

var usecaseCheckoutModule = fx.Module("usecase/checkout",
	fx.Provide(
		fx.Annotate(
			NewCheckoutService,
			fx.As(new(usecase.CheckoutUseCase)),
		),
	),
)

func NewKeyGenerator(cfg config.Config) *key.RandomGenerator {
	return key.NewRandomGenerator(cfg.Catalog.KeyPrefix)
}

func NewCatalog(cfg config.Config) *key.Catalog {
	return key.NewCatalog(cfg.Catalog.Currency, cfg.Catalog.LifetimePriceCents, cfg.Catalog.MonthlyPriceCents)
}

func NewDefaults(cfg config.Config, logger *slog.Logger) (key.Defaults, error) {
	defaults, err := key.NewDefaults(cfg.Issuance.DefaultPlan, cfg.Issuance.DefaultEmail)
	if err != nil {
		return key.Defaults{}, err
	}
	logger.Info("issuance defaults", "plan", defaults.Plan().String(), "email", defaults.Email())
	return defaults, nil
}

func NewWebhookHandler(verifier usecase.EventVerifier, issuer usecase.KeyIssuer, cfg config.Config, logger *slog.Logger) usecase.WebhookUseCase {
	return usecase.NewWebhookHandler(verifier, issuer, cfg.Issuance.Timeout, logger)
}

func NewCheckoutService(provider usecase.PaymentProvider, catalog *key.Catalog, cfg config.Config, logger *slog.Logger) *usecase.CheckoutService {
	return usecase.NewCheckoutService(provider, catalog, cfg.Server.Domain, logger)
}
