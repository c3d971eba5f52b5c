package payment

import (
	"encoding/json"
	"errors"
	"log/slog"

	"vander-key-store/internal/infra"
	"vander-key-store/internal/usecase"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// WebhookVerifier authenticates Stripe webhook deliveries. Without a secret
// every payload is trusted, which is only acceptable in local development.
type WebhookVerifier struct {
	secret string
	logger *slog.Logger
}

func NewWebhookVerifier(secret string, logger *slog.Logger) *WebhookVerifier {
	if secret == "" {
		logger.Warn("STRIPE_WEBHOOK_SECRET is not set: webhook signatures will NOT be verified")
	}
	return &WebhookVerifier{secret: secret, logger: logger}
}

func (v *WebhookVerifier) Verify(payload []byte, signature string) (*usecase.PaymentEvent, error) {
	var (
		event stripe.Event
		err   error
	)
	if v.secret != "" {
		event, err = webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
		if err != nil {
			if isSignatureError(err) {
				return nil, infra.NewErr(infra.KindInvalidSignature, "stripe signature check", err)
			}
			return nil, infra.NewErr(infra.KindMalformedPayload, "stripe event decode", err)
		}
	} else {
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, infra.NewErr(infra.KindMalformedPayload, "stripe event decode", err)
		}
		v.logger.Warn("accepting unverified webhook event", "event_id", event.ID, "type", string(event.Type))
	}

	return toPaymentEvent(event)
}

func toPaymentEvent(event stripe.Event) (*usecase.PaymentEvent, error) {
	if event.ID == "" || event.Type == "" {
		return nil, infra.NewErr(infra.KindMalformedPayload, "stripe event without id or type", nil)
	}

	out := &usecase.PaymentEvent{ID: event.ID, Type: string(event.Type)}
	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		return out, nil
	}

	if event.Data == nil || len(event.Data.Raw) == 0 {
		return nil, infra.NewErr(infra.KindMalformedPayload, "checkout event without session", nil)
	}
	var cs stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
		return nil, infra.NewErr(infra.KindMalformedPayload, "decode checkout session", err)
	}
	snapshot := toSnapshot(&cs)
	out.Session = &snapshot
	return out, nil
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrTooOld)
}
