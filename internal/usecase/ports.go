package usecase

import (
	"context"

	"vander-key-store/internal/domain/key"
)

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports.go -package=usecasemock

// CheckoutRequest is a provider-agnostic description of a hosted payment page.
type CheckoutRequest struct {
	Offer      key.Offer
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

// CheckoutSession is the provider's answer to CheckoutRequest.
type CheckoutSession struct {
	ID  string
	URL string
}

// SessionSnapshot is the subset of a provider checkout session that issuance needs.
type SessionSnapshot struct {
	ID                   string
	Paid                 bool
	Plan                 string // raw metadata value, may be empty
	CustomerEmail        string
	CustomerDetailsEmail string
}

const EventCheckoutSessionCompleted = "checkout.session.completed"

// PaymentEvent is a verified provider notification. Session is set only for
// checkout.session.completed events.
type PaymentEvent struct {
	ID      string
	Type    string
	Session *SessionSnapshot
}

type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*SessionSnapshot, error)
}

type EventVerifier interface {
	Verify(payload []byte, signature string) (*PaymentEvent, error)
}

// KeyRegistry appends issued keys to the shared registry document.
type KeyRegistry interface {
	Append(ctx context.Context, record *key.Record) error
}

// SessionKeyStore holds session to key associations. Get reports a missing
// association with an infra.KindNotFound error.
type SessionKeyStore interface {
	Get(ctx context.Context, sessionID string) (*key.SessionKey, error)
	Put(ctx context.Context, sk *key.SessionKey) error
}
