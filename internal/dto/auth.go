package dto

import "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"

// LoginRequest carries the panel login form.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Device   string `json:"device"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Success   bool           `json:"success"`
	Token     string         `json:"token"`
	SessionID string         `json:"sessionID"`
	Member    MemberResponse `json:"member"`
}

// LoginErrorResponse mirrors the panel's {success:false, error:"..."} shape.
type LoginErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ToLoginResponse maps a successful login result.
func ToLoginResponse(member *domain.Member, token, sessionID string) LoginResponse {
	return LoginResponse{
		Success:   true,
		Token:     token,
		SessionID: sessionID,
		Member:    ToMemberResponse(member),
	}
}
