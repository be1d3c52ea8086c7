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

// MemberHandler manages panel member accounts.
type MemberHandler struct {
	memberService portssvc.MemberSvcFacade
	authService   portssvc.AuthSvcFacade
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(ms portssvc.MemberSvcFacade, as portssvc.AuthSvcFacade) *MemberHandler {
	return &MemberHandler{memberService: ms, authService: as}
}

func registerMemberRoutes(rg *gin.RouterGroup, ms portssvc.MemberSvcFacade, as portssvc.AuthSvcFacade) {
	h := NewMemberHandler(ms, as)

	rg.GET("/members", h.ListMembers)
	rg.PUT("/members", h.UpdateMembers)
	rg.PUT("/members/:id/password", h.UpdatePassword)
	rg.PUT("/profile", h.UpdateProfile)
}

func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.memberService.ListMembers(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list members", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list members"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListMembersResponse(members))
}

// UpdateMembers is the panel's wholesale member save. Only admins may call
// it; members absent from the payload are deleted.
func (h *MemberHandler) UpdateMembers(c *gin.Context) {
	var req dto.UpdateMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	actor, ok := resolveMember(c, h.authService)
	if !ok {
		return
	}

	members, err := h.memberService.UpdateMembers(c.Request.Context(), actor, req.Members)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Admin role required"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Failed to save members", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save members"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListMembersResponse(members))
}

func (h *MemberHandler) UpdatePassword(c *gin.Context) {
	memberID := c.Param("id")

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.memberService.UpdatePassword(c.Request.Context(), memberID, req.NewPassword); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Member not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to update password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateProfile edits the signed-in member's own profile fields.
func (h *MemberHandler) UpdateProfile(c *gin.Context) {
	memberID, ok := middleware.GetMemberIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	member, err := h.memberService.UpdateProfile(c.Request.Context(), memberID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Member not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to update profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}
