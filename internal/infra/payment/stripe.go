package payment

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"vander-key-store/internal/infra"
	"vander-key-store/internal/pkg/config"
	"vander-key-store/internal/usecase"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

const paymentMethodCard = "card"

// StripeProvider creates and looks up hosted checkout sessions.
type StripeProvider struct {
	sessions *session.Client
	logger   *slog.Logger
}

func NewStripeProvider(cfg config.StripeConfig, logger *slog.Logger) *StripeProvider {
	backendCfg := &stripe.BackendConfig{
		HTTPClient:    &http.Client{Timeout: cfg.Timeout},
		LeveledLogger: newLeveledLogger(logger),
	}
	if cfg.BackendURL != "" {
		backendCfg.URL = stripe.String(strings.TrimSuffix(cfg.BackendURL, "/"))
	}

	return &StripeProvider{
		sessions: &session.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg),
			Key: cfg.SecretKey,
		},
		logger: logger,
	}
}

func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, req usecase.CheckoutRequest) (*usecase.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{paymentMethodCard}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(req.Offer.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(req.Offer.Name),
						Description: stripe.String(req.Offer.Description),
					},
					UnitAmount: stripe.Int64(req.Offer.UnitAmount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	cs, err := p.sessions.New(params)
	if err != nil {
		return nil, infra.WrapErr(p.logger, infra.KindRemoteFailure, "stripe create checkout session", err)
	}
	return &usecase.CheckoutSession{ID: cs.ID, URL: cs.URL}, nil
}

func (p *StripeProvider) GetCheckoutSession(ctx context.Context, sessionID string) (*usecase.SessionSnapshot, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	cs, err := p.sessions.Get(sessionID, params)
	if err != nil {
		return nil, infra.WrapErr(p.logger, infra.KindRemoteFailure, "stripe retrieve checkout session", err)
	}
	snapshot := toSnapshot(cs)
	return &snapshot, nil
}

func toSnapshot(cs *stripe.CheckoutSession) usecase.SessionSnapshot {
	snapshot := usecase.SessionSnapshot{
		ID:            cs.ID,
		Paid:          cs.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		CustomerEmail: cs.CustomerEmail,
	}
	if cs.Metadata != nil {
		snapshot.Plan = cs.Metadata["plan"]
	}
	if cs.CustomerDetails != nil {
		snapshot.CustomerDetailsEmail = cs.CustomerDetails.Email
	}
	return snapshot
}
