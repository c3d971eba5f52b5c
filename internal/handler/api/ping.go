package api

import (
	"net/http"

	resdto "vander-key-store/internal/handler/dto/response"
	"vander-key-store/internal/pkg/clock"

	"github.com/gin-gonic/gin"
)

type PingHandler struct {
	clock clock.Clock
}

func NewPingHandler(clock clock.Clock) *PingHandler {
	return &PingHandler{clock: clock}
}

// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} resdto.PingResponse
// @Router /api/ping [get]
func (h *PingHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.PingResponse{
		Status:    "ALIVE",
		Timestamp: h.clock.Now(),
	})
}
