package usecase

import (
	"context"
	"log/slog"
	"strings"

	"vander-key-store/internal/domain/key"
	"vander-key-store/internal/infra"
	"vander-key-store/internal/pkg/clock"
	"vander-key-store/internal/pkg/errs"
)

//go:generate mockgen -source=reconciler.go -destination=../../tests/mock/usecase/reconciler.go -package=usecasemock

// KeyUseCase serves the success page lookup.
type KeyUseCase interface {
	GetKey(ctx context.Context, sessionID string) (*key.SessionKey, error)
}

// KeyIssuer issues a key for a session that is known to be paid.
type KeyIssuer interface {
	Issue(ctx context.Context, session SessionSnapshot) (*key.SessionKey, error)
}

// KeyReconciler ensures a paid checkout session ends up with a key, whether
// the webhook (push) or the success page poll (pull) gets there first.
//
// The two paths share no lock: a webhook arriving after a poll already issued
// a key generates a second key for the same session and overwrites the
// association. Registry consistency is traded for key delivery.
type KeyReconciler struct {
	generator key.Generator
	registry  KeyRegistry
	store     SessionKeyStore
	provider  PaymentProvider
	defaults  key.Defaults
	clock     clock.Clock
	logger    *slog.Logger
}

func NewKeyReconciler(
	generator key.Generator,
	registry KeyRegistry,
	store SessionKeyStore,
	provider PaymentProvider,
	defaults key.Defaults,
	clock clock.Clock,
	logger *slog.Logger,
) *KeyReconciler {
	return &KeyReconciler{
		generator: generator,
		registry:  registry,
		store:     store,
		provider:  provider,
		defaults:  defaults,
		clock:     clock,
		logger:    logger,
	}
}

func (r *KeyReconciler) GetKey(ctx context.Context, sessionID string) (*key.SessionKey, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrMissingSessionID
	}

	existing, err := r.store.Get(ctx, sessionID)
	switch {
	case err == nil:
		return existing, nil
	case infra.IsKind(err, infra.KindNotFound):
	default:
		// an unreadable store is treated like a cold cache; the provider stays authoritative
		r.logger.WarnContext(ctx, "session key store lookup failed",
			"session_id", sessionID,
			"error", err.Error(),
		)
	}

	session, err := r.provider.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "retrieve checkout session %s", sessionID), ErrVerificationFailed)
	}
	if !session.Paid {
		return nil, ErrPaymentNotCompleted
	}

	r.logger.InfoContext(ctx, "issuing key from success page lookup", "session_id", sessionID)
	return r.Issue(ctx, *session)
}

// Issue generates, registers and caches a key. Registry and store failures
// are logged and do not fail the issuance.
func (r *KeyReconciler) Issue(ctx context.Context, session SessionSnapshot) (*key.SessionKey, error) {
	if strings.TrimSpace(session.ID) == "" {
		return nil, ErrMissingSessionID
	}

	plan, defaulted := r.defaults.ResolvePlan(session.Plan)
	if defaulted {
		r.logger.InfoContext(ctx, "applying default plan",
			"session_id", session.ID,
			"raw_plan", session.Plan,
			"plan", plan.String(),
		)
	}
	email := r.defaults.ResolveEmail(session.CustomerEmail, session.CustomerDetailsEmail)

	record, err := key.NewRecord(r.generator.Generate(), plan, r.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "build key record")
	}

	if regErr := r.registry.Append(ctx, record); regErr != nil {
		regErr = errs.Mark(regErr, ErrRegistryWriteFailed)
		r.logger.ErrorContext(ctx, "failed to register key in registry",
			"session_id", session.ID,
			"key", record.ID(),
			"error", regErr.Error(),
		)
	} else {
		r.logger.InfoContext(ctx, "key registered", "key", record.ID(), "plan", plan.String())
	}

	sk := key.NewSessionKey(session.ID, record, email)
	if storeErr := r.store.Put(ctx, sk); storeErr != nil {
		r.logger.ErrorContext(ctx, "failed to cache session key",
			"session_id", session.ID,
			"key", record.ID(),
			"error", storeErr.Error(),
		)
	}

	r.logger.InfoContext(ctx, "key generated",
		"session_id", session.ID,
		"email", email,
		"key", record.ID(),
		"plan", plan.String(),
	)
	return sk, nil
}
