package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/apperrors"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	portssvc "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/services"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/dto"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/middleware"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/platform/config"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvcFacade) *AuthHandler {
	return &AuthHandler{authService: as}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := NewAuthHandler(authService)

	// Rate limit credential guessing: 5 requests per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
	}

	authed := rg.Group("/api/v1/auth", middleware.AuthMiddleware(cfg.JWTSecret))
	{
		authed.POST("/logout", h.Logout)
		authed.GET("/me", h.Me)
	}
}

// registerSessionRoutes exposes the open-session list inside the authed group.
func registerSessionRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := NewAuthHandler(authService)
	rg.GET("/sessions", h.ListSessions)
}

// ListSessions returns the currently open login sessions, newest first, for
// the panel's session badges.
func (h *AuthHandler) ListSessions(c *gin.Context) {
	sessions, err := h.authService.ListActiveSessions(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list sessions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list sessions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// Login authenticates a member and returns a JWT token plus the member row.
// Failure responses carry the exact message the panel shows the user.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.LoginErrorResponse{Success: false, Error: "Geçersiz istek"})
		return
	}

	result, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password, req.Device)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound),
			errors.Is(err, apperrors.ErrWrongPassword):
			c.JSON(http.StatusUnauthorized, dto.LoginErrorResponse{Success: false, Error: err.Error()})
		case errors.Is(err, apperrors.ErrAccountDisabled):
			c.JSON(http.StatusForbidden, dto.LoginErrorResponse{Success: false, Error: err.Error()})
		default:
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Login failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.LoginErrorResponse{Success: false, Error: "Giriş yapılamadı"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(&result.Member, result.Token, result.SessionID))
}

// Logout closes the session named in the request and flips presence offline.
func (h *AuthHandler) Logout(c *gin.Context) {
	memberID, ok := middleware.GetMemberIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req struct {
		SessionID string `json:"sessionID"`
	}
	_ = c.ShouldBindJSON(&req)

	if err := h.authService.Logout(c.Request.Context(), memberID, req.SessionID); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Logout failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to logout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me returns the member row for the token subject, used by the panel to
// restore its session on reload.
func (h *AuthHandler) Me(c *gin.Context) {
	member, ok := resolveMember(c, h.authService)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// resolveMember loads the authenticated member for the request's token
// subject. It writes the error response itself when resolution fails.
func resolveMember(c *gin.Context, authService portssvc.AuthSvcFacade) (*domain.Member, bool) {
	memberID, ok := middleware.GetMemberIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	member, err := authService.GetMember(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unknown member"})
			return nil, false
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to resolve member", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return nil, false
	}
	if member == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unknown member"})
		return nil, false
	}
	return member, true
}
