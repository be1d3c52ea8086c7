package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/services"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/middleware"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/platform/config"
)

// PresenceHandler maintains the heartbeat-driven online flags.
type PresenceHandler struct {
	presenceService portssvc.PresenceSvcFacade
}

// NewPresenceHandler creates a new PresenceHandler.
func NewPresenceHandler(ps portssvc.PresenceSvcFacade) *PresenceHandler {
	return &PresenceHandler{presenceService: ps}
}

func registerPresenceRoutes(rg *gin.RouterGroup, ps portssvc.PresenceSvcFacade) {
	h := NewPresenceHandler(ps)

	rg.POST("/presence/heartbeat", h.Heartbeat)
	rg.GET("/presence", h.ListPresence)
}

// registerPresenceBeaconRoute installs the unload beacon outside the auth
// group. navigator.sendBeacon cannot set headers at page teardown, so the
// route is gated by the anon key in the query string instead of a JWT.
func registerPresenceBeaconRoute(r *gin.Engine, cfg *config.Config, ps portssvc.PresenceSvcFacade) {
	h := NewPresenceHandler(ps)
	anonKey := cfg.AnonKey

	r.POST("/api/v1/presence/offline", func(c *gin.Context) {
		key := c.Query("key")
		if anonKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(anonKey)) != 1 {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid key"})
			return
		}
		h.GoOffline(c)
	})
}

// Heartbeat flips the caller online and refreshes last_seen. The panel sends
// one every 30 seconds.
func (h *PresenceHandler) Heartbeat(c *gin.Context) {
	memberID, ok := middleware.GetMemberIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.presenceService.Heartbeat(c.Request.Context(), memberID); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Heartbeat failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Heartbeat failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GoOffline flips the named member offline. Reached from the unload beacon;
// the member id travels in the query because the page is tearing down.
func (h *PresenceHandler) GoOffline(c *gin.Context) {
	memberID := c.Query("memberID")
	if memberID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "memberID required"})
		return
	}

	if err := h.presenceService.GoOffline(c.Request.Context(), memberID); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to set member offline", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to set member offline"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *PresenceHandler) ListPresence(c *gin.Context) {
	presence, err := h.presenceService.ListPresence(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list presence", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list presence"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"presence": presence})
}
