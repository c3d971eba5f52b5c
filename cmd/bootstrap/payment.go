package bootstrap

import (
	"log/slog"

	"vander-key-store/internal/infra/payment"
	"vander-key-store/internal/pkg/config"
	"vander-key-store/internal/usecase"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			NewStripeProvider,
			fx.As(new(usecase.PaymentProvider)),
		),
		fx.Annotate(
			NewWebhookVerifier,
			fx.As(new(usecase.EventVerifier)),
		),
	),
)

func NewStripeProvider(cfg config.Config, logger *slog.Logger) *payment.StripeProvider {
	if cfg.Stripe.IsLive() {
		logger.Info("Stripe mode: LIVE")
	} else {
		logger.Warn("Stripe mode: TEST (placeholder key)")
	}
	return payment.NewStripeProvider(cfg.Stripe, logger)
}

func NewWebhookVerifier(cfg config.Config, logger *slog.Logger) *payment.WebhookVerifier {
	return payment.NewWebhookVerifier(cfg.Stripe.WebhookSecret, logger)
}
