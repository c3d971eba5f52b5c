package api

import (
	"net/http"

	resdto "vander-key-store/internal/handler/dto/response"
	"vander-key-store/internal/handler/httperr"
	"vander-key-store/internal/pkg/errs"
	"vander-key-store/internal/usecase"

	"github.com/gin-gonic/gin"
)

type KeyHandler struct {
	keys usecase.KeyUseCase
}

func NewKeyHandler(keys usecase.KeyUseCase) *KeyHandler {
	return &KeyHandler{keys: keys}
}

// @Summary Get key for checkout session
// @Description Returns the key issued for a paid session, issuing it if the webhook has not arrived yet
// @Tags keys
// @Produce json
// @Param session_id query string true "Checkout session ID"
// @Success 200 {object} resdto.KeyResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/get-key [get]
func (h *KeyHandler) GetKey(c *gin.Context) {
	sk, err := h.keys.GetKey(c.Request.Context(), c.Query("session_id"))
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrMissingSessionID):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing session_id")
		case errs.Is(err, usecase.ErrPaymentNotCompleted):
			httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment not completed")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to verify payment")
		}
		return
	}

	resp, err := resdto.FromSessionKey(sk)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resp)
}
