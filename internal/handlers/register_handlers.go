package handlers

import (
	portssvc "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/services"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/middleware"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/platform/config"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/platform/realtime"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	feed *realtime.Listener,
	hub *realtime.Hub,
) {
	registerValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.Auth)

	// The unload beacon cannot carry an auth header; it is gated by the anon key.
	registerPresenceBeaconRoute(r, cfg, services.Presence)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, feed, hub)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	feed *realtime.Listener,
	hub *realtime.Hub,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Delegate route registration to specific handlers, passing required services
	registerExchangeRoutes(v1, services.Exchange, services.Auth)
	registerMemberRoutes(v1, services.Member, services.Auth)
	registerAnnouncementRoutes(v1, services.Announcement, services.Auth)
	registerHistoryRoutes(v1, services.History, services.Auth)
	registerSessionRoutes(v1, services.Auth)
	registerPresenceRoutes(v1, services.Presence)
	registerLiveRatesRoutes(v1, services.LiveRates)
	registerRealtimeRoutes(v1, services, feed, hub)
}
