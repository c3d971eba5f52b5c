package usecase

import (
	"context"
	"log/slog"
	"strings"

	"vander-key-store/internal/domain/key"
	"vander-key-store/internal/pkg/errs"
)

//go:generate mockgen -source=checkout.go -destination=../../tests/mock/usecase/checkout.go -package=usecasemock

// sessionPlaceholder is expanded by the provider into the real session id on redirect.
const sessionPlaceholder = "{CHECKOUT_SESSION_ID}"

type CheckoutResult struct {
	URL       string
	SessionID string
}

type CheckoutUseCase interface {
	CreateCheckout(ctx context.Context, plan string) (*CheckoutResult, error)
}

type CheckoutService struct {
	provider PaymentProvider
	catalog  *key.Catalog
	domain   string
	logger   *slog.Logger
}

func NewCheckoutService(provider PaymentProvider, catalog *key.Catalog, domain string, logger *slog.Logger) *CheckoutService {
	return &CheckoutService{
		provider: provider,
		catalog:  catalog,
		domain:   strings.TrimSuffix(domain, "/"),
		logger:   logger,
	}
}

func (s *CheckoutService) CreateCheckout(ctx context.Context, rawPlan string) (*CheckoutResult, error) {
	plan, err := key.ParsePlan(rawPlan)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPlan)
	}

	offer, err := s.catalog.Offer(plan)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPlan)
	}

	session, err := s.provider.CreateCheckoutSession(ctx, CheckoutRequest{
		Offer:      offer,
		SuccessURL: s.SuccessURL(),
		CancelURL:  s.CancelURL(),
		Metadata:   map[string]string{"plan": plan.String()},
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "create checkout session"), ErrProviderError)
	}

	s.logger.InfoContext(ctx, "checkout session created", "session_id", session.ID, "plan", plan.String())
	return &CheckoutResult{URL: session.URL, SessionID: session.ID}, nil
}

func (s *CheckoutService) SuccessURL() string {
	return s.domain + "/success?session_id=" + sessionPlaceholder
}

func (s *CheckoutService) CancelURL() string {
	return s.domain + "/#store"
}
