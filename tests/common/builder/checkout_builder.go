//go:build unit || e2e

package builder

import reqdto "vander-key-store/internal/handler/dto/request"

type CheckoutRequestBuilder struct {
	Plan string
}

func NewCheckoutRequestBuilder() *CheckoutRequestBuilder {
	return &CheckoutRequestBuilder{Plan: "lifetime"}
}

func (b *CheckoutRequestBuilder) With(mutate func(*CheckoutRequestBuilder)) *CheckoutRequestBuilder {
	mutate(b)
	return b
}

func (b *CheckoutRequestBuilder) BuildDTO() reqdto.CreateCheckoutRequest {
	return reqdto.CreateCheckoutRequest{Plan: b.Plan}
}
