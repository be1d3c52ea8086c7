package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	portssvc "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/services"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/dto"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/middleware"
)

// ExchangeHandler serves the board's rates, ticker items and settings.
type ExchangeHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
	authService     portssvc.AuthSvcFacade
}

// NewExchangeHandler creates a new ExchangeHandler.
func NewExchangeHandler(es portssvc.ExchangeSvcFacade, as portssvc.AuthSvcFacade) *ExchangeHandler {
	return &ExchangeHandler{exchangeService: es, authService: as}
}

func registerExchangeRoutes(rg *gin.RouterGroup, es portssvc.ExchangeSvcFacade, as portssvc.AuthSvcFacade) {
	h := NewExchangeHandler(es, as)

	rg.GET("/rates", h.ListRates)
	rg.PUT("/rates", h.UpdateRates)
	rg.GET("/ticker", h.ListTickerItems)
	rg.PUT("/ticker", h.UpdateTickerItems)
	rg.GET("/settings", h.ListSettings)
	rg.PUT("/settings", h.SaveSetting)
}

func (h *ExchangeHandler) ListRates(c *gin.Context) {
	rates, err := h.exchangeService.ListRates(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list rates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rates": rates})
}

// UpdateRates is the panel's wholesale rate save. Rows missing from the
// payload are deleted; the rest are upserted in payload order. Errors are
// surfaced so the panel can raise its blocking alert.
func (h *ExchangeHandler) UpdateRates(c *gin.Context) {
	var req dto.UpdateRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	actor, ok := resolveMember(c, h.authService)
	if !ok {
		return
	}

	rates := make([]domain.Rate, 0, len(req.Rates))
	for i, row := range req.Rates {
		rates = append(rates, row.ToRate(i))
	}

	batchID, err := h.exchangeService.UpdateRates(c.Request.Context(), actor, rates, domain.SourceManual)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to save rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save rates"})
		return
	}

	c.JSON(http.StatusOK, dto.SaveBatchResponse{Success: true, BatchID: batchID})
}

func (h *ExchangeHandler) ListTickerItems(c *gin.Context) {
	items, err := h.exchangeService.ListTickerItems(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list ticker items", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list ticker items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *ExchangeHandler) UpdateTickerItems(c *gin.Context) {
	var req dto.UpdateTickerItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	actor, ok := resolveMember(c, h.authService)
	if !ok {
		return
	}

	items := make([]domain.TickerItem, 0, len(req.Items))
	for i, row := range req.Items {
		items = append(items, row.ToTickerItem(i))
	}

	batchID, err := h.exchangeService.UpdateTickerItems(c.Request.Context(), actor, items, domain.SourceManual)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to save ticker items", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save ticker items"})
		return
	}

	c.JSON(http.StatusOK, dto.SaveBatchResponse{Success: true, BatchID: batchID})
}

func (h *ExchangeHandler) ListSettings(c *gin.Context) {
	settings, err := h.exchangeService.ListSettings(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

type saveSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

func (h *ExchangeHandler) SaveSetting(c *gin.Context) {
	var req saveSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	actor, ok := resolveMember(c, h.authService)
	if !ok {
		return
	}

	if err := h.exchangeService.SaveSetting(c.Request.Context(), actor, req.Key, req.Value); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to save setting", slog.String("key", req.Key), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save setting"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
