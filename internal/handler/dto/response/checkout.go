package response

import "vander-key-store/internal/usecase"

type CheckoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
}

func FromCheckoutResult(r *usecase.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		URL:       r.URL,
		SessionID: r.SessionID,
	}
}
