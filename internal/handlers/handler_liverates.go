package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/services"
)

// LiveRatesHandler serves the cached spot snapshot from the poller.
type LiveRatesHandler struct {
	liveRatesService portssvc.LiveRatesSvcFacade
}

// NewLiveRatesHandler creates a new LiveRatesHandler.
func NewLiveRatesHandler(ls portssvc.LiveRatesSvcFacade) *LiveRatesHandler {
	return &LiveRatesHandler{liveRatesService: ls}
}

func registerLiveRatesRoutes(rg *gin.RouterGroup, ls portssvc.LiveRatesSvcFacade) {
	h := NewLiveRatesHandler(ls)
	rg.GET("/live-rates", h.Latest)
}

// Latest returns the most recent successful poll. 503 before the first one.
func (h *LiveRatesHandler) Latest(c *gin.Context) {
	snapshot, ok := h.liveRatesService.Latest()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Live rates not available yet"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
