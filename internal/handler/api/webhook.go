package api

import (
	"errors"
	"io"
	"net/http"

	resdto "vander-key-store/internal/handler/dto/response"
	"vander-key-store/internal/handler/httperr"
	"vander-key-store/internal/pkg/errs"
	"vander-key-store/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	HeaderStripeSignature = "Stripe-Signature"
	WebhookBodyLimit      = 1 << 20
)

type WebhookHandler struct {
	webhooks usecase.WebhookUseCase
}

func NewWebhookHandler(webhooks usecase.WebhookUseCase) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks}
}

// @Summary Payment provider webhook
// @Description Receives Stripe events. The raw body is needed for signature verification.
// @Tags webhook
// @Accept json
// @Produce json
// @Param Stripe-Signature header string false "Stripe signature header"
// @Success 200 {object} resdto.WebhookAck
// @Failure 400 {object} httperr.Response
// @Router /webhook [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Webhook Error: body too large")
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Webhook Error: unreadable body")
		return
	}

	if _, err := h.webhooks.HandleWebhook(c.Request.Context(), payload, c.GetHeader(HeaderStripeSignature)); err != nil {
		switch {
		case errs.Is(err, usecase.ErrSignatureInvalid):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Webhook Error: invalid signature")
		case errs.Is(err, usecase.ErrMalformedEvent):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Webhook Error: malformed event")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.WebhookAck{Received: true})
}
