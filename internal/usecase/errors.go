package usecase

import "vander-key-store/internal/pkg/errs"

var (
	ErrSignatureInvalid    = errs.New("webhook signature invalid")
	ErrMalformedEvent      = errs.New("malformed webhook event")
	ErrInvalidPlan         = errs.New("invalid plan")
	ErrProviderError       = errs.New("payment provider error")
	ErrMissingSessionID    = errs.New("missing session id")
	ErrPaymentNotCompleted = errs.New("payment not completed")
	ErrVerificationFailed  = errs.New("payment verification failed")
	ErrRegistryWriteFailed = errs.New("registry write failed")
)
