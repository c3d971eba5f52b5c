package usecase

import (
	"context"
	"log/slog"
	"time"

	"vander-key-store/internal/infra"
	"vander-key-store/internal/pkg/errs"
)

//go:generate mockgen -source=webhook.go -destination=../../tests/mock/usecase/webhook.go -package=usecasemock

type WebhookResult struct {
	EventID string
	Type    string
	Handled bool
}

type WebhookUseCase interface {
	HandleWebhook(ctx context.Context, payload []byte, signature string) (*WebhookResult, error)
}

type WebhookHandler struct {
	verifier     EventVerifier
	issuer       KeyIssuer
	issueTimeout time.Duration
	logger       *slog.Logger
}

func NewWebhookHandler(verifier EventVerifier, issuer KeyIssuer, issueTimeout time.Duration, logger *slog.Logger) WebhookUseCase {
	return &WebhookHandler{
		verifier:     verifier,
		issuer:       issuer,
		issueTimeout: issueTimeout,
		logger:       logger,
	}
}

// HandleWebhook only fails when the event cannot be trusted or parsed.
// Issuance failures are logged and the event is still acknowledged, so the
// provider does not redeliver it and trigger another issuance.
func (h *WebhookHandler) HandleWebhook(ctx context.Context, payload []byte, signature string) (*WebhookResult, error) {
	event, err := h.verifier.Verify(payload, signature)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindInvalidSignature):
			return nil, errs.Mark(err, ErrSignatureInvalid)
		default:
			return nil, errs.Mark(err, ErrMalformedEvent)
		}
	}

	result := &WebhookResult{EventID: event.ID, Type: event.Type}

	if event.Type != EventCheckoutSessionCompleted {
		h.logger.DebugContext(ctx, "webhook event ignored", "event_id", event.ID, "type", event.Type)
		return result, nil
	}
	if event.Session == nil {
		return nil, errs.Mark(errs.New("completed event without session"), ErrMalformedEvent)
	}

	// a provider that hangs up mid-issuance must not cancel the store write
	// for a key that is already registered
	issueCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.issueTimeout)
	defer cancel()

	if _, issueErr := h.issuer.Issue(issueCtx, *event.Session); issueErr != nil {
		h.logger.ErrorContext(ctx, "key issuance from webhook failed",
			"event_id", event.ID,
			"session_id", event.Session.ID,
			"error", issueErr.Error(),
		)
		return result, nil
	}

	result.Handled = true
	return result, nil
}
