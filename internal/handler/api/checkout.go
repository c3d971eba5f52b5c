package api

import (
	"net/http"

	reqdto "vander-key-store/internal/handler/dto/request"
	resdto "vander-key-store/internal/handler/dto/response"
	"vander-key-store/internal/handler/httperr"
	"vander-key-store/internal/pkg/errs"
	"vander-key-store/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkout usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkout usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// @Summary Create checkout session
// @Description Starts a hosted checkout for the lifetime or monthly plan
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCheckoutRequest true "Plan to buy"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/create-checkout [post]
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var req reqdto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid plan")
		return
	}

	result, err := h.checkout.CreateCheckout(c.Request.Context(), req.Plan)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrInvalidPlan):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid plan")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create checkout session")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}
