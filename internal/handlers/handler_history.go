package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/apperrors"
	portssvc "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/services"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/dto"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/middleware"
)

// HistoryHandler serves the price history and the activity feed.
type HistoryHandler struct {
	historyService portssvc.HistorySvcFacade
	authService    portssvc.AuthSvcFacade
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(hs portssvc.HistorySvcFacade, as portssvc.AuthSvcFacade) *HistoryHandler {
	return &HistoryHandler{historyService: hs, authService: as}
}

func registerHistoryRoutes(rg *gin.RouterGroup, hs portssvc.HistorySvcFacade, as portssvc.AuthSvcFacade) {
	h := NewHistoryHandler(hs, as)

	rg.GET("/history", h.ListHistory)
	rg.DELETE("/history", h.ClearHistory)
	rg.GET("/activities", h.ListActivities)
}

func paginationParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}

func (h *HistoryHandler) ListHistory(c *gin.Context) {
	limit, offset := paginationParams(c)

	entries, err := h.historyService.ListHistory(c.Request.Context(), limit, offset)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list history"})
		return
	}

	resp := make([]dto.HistoryLogResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, dto.ToHistoryLogResponse(&entries[i]))
	}
	c.JSON(http.StatusOK, gin.H{"history": resp})
}

// ClearHistory wipes the price history. Admin only; failure is surfaced so
// the panel can alert.
func (h *HistoryHandler) ClearHistory(c *gin.Context) {
	actor, ok := resolveMember(c, h.authService)
	if !ok {
		return
	}

	if err := h.historyService.ClearHistory(c.Request.Context(), actor); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Admin role required"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to clear history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to clear history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *HistoryHandler) ListActivities(c *gin.Context) {
	limit, offset := paginationParams(c)

	activities, err := h.historyService.ListActivities(c.Request.Context(), limit, offset)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list activities", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list activities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}
