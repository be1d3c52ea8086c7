package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/apperrors"
	portssvc "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/services"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/dto"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/middleware"
)

// AnnouncementHandler serves viewer-scoped announcements and read state.
type AnnouncementHandler struct {
	announcementService portssvc.AnnouncementSvcFacade
	authService         portssvc.AuthSvcFacade
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(ans portssvc.AnnouncementSvcFacade, as portssvc.AuthSvcFacade) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: ans, authService: as}
}

func registerAnnouncementRoutes(rg *gin.RouterGroup, ans portssvc.AnnouncementSvcFacade, as portssvc.AuthSvcFacade) {
	h := NewAnnouncementHandler(ans, as)

	rg.GET("/announcements", h.ListAnnouncements)
	rg.GET("/announcements/:id", h.GetAnnouncement)
	rg.POST("/announcements", h.SendAnnouncement)
	rg.DELETE("/announcements/:id", h.DeleteAnnouncement)
	rg.POST("/announcements/:id/read", h.MarkAsRead)
	rg.POST("/announcements/read-all", h.MarkAllAsRead)
}

// ListAnnouncements returns the viewer's eligible announcements, newest
// first, with their read flags merged on.
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	viewer, ok := resolveMember(c, h.authService)
	if !ok {
		return
	}

	announcements, err := h.announcementService.FetchAnnouncements(c.Request.Context(), viewer)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to fetch announcements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch announcements"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAnnouncementsResponse(announcements))
}

// GetAnnouncement returns one announcement by id, used by the panel's
// announcement detail dialog.
func (h *AnnouncementHandler) GetAnnouncement(c *gin.Context) {
	announcement, err := h.announcementService.GetAnnouncement(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Announcement not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to fetch announcement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch announcement"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAnnouncementResponse(announcement))
}

// SendAnnouncement stores a new announcement. The caller's own view is NOT
// updated here; reconciliation happens through the change feed.
func (h *AnnouncementHandler) SendAnnouncement(c *gin.Context) {
	var req dto.SendAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	creator, ok := resolveMember(c, h.authService)
	if !ok {
		return
	}

	announcement, err := h.announcementService.SendAnnouncement(c.Request.Context(), creator, req)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to send announcement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to send announcement"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToAnnouncementResponse(announcement))
}

// DeleteAnnouncement removes an announcement. Deleting an id that is already
// gone succeeds; the panel's delete button may race the change feed.
func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	announcementID := c.Param("id")

	if err := h.announcementService.DeleteAnnouncement(c.Request.Context(), announcementID); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to delete announcement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete announcement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// MarkAsRead upserts the viewer's read receipt for one announcement.
// Persistence is best effort; the response is always success.
func (h *AnnouncementHandler) MarkAsRead(c *gin.Context) {
	viewer, ok := resolveMember(c, h.authService)
	if !ok {
		return
	}

	h.announcementService.MarkAsRead(c.Request.Context(), viewer, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// MarkAllAsRead upserts one receipt per id the viewer reported unread.
func (h *AnnouncementHandler) MarkAllAsRead(c *gin.Context) {
	var req dto.MarkAllReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	viewer, ok := resolveMember(c, h.authService)
	if !ok {
		return
	}

	marked := h.announcementService.MarkAllAsRead(c.Request.Context(), viewer, req.AnnouncementIDs)
	c.JSON(http.StatusOK, gin.H{"success": true, "marked": marked})
}
