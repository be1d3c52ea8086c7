package services

import (
	"context"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
)

// LoginResult is what a successful authentication hands back to the handler.
type LoginResult struct {
	Member    domain.Member
	Token     string
	SessionID string
}

// AuthSvcFacade authenticates members and records the login/logout side
// effects (session row, activity line, presence flip).
type AuthSvcFacade interface {
	// Authenticate verifies credentials. Failures return the sentinel errors
	// from apperrors carrying the exact message the panel displays.
	Authenticate(ctx context.Context, username, password, device string) (*LoginResult, error)
	Logout(ctx context.Context, memberID, sessionID string) error
	// GetMember resolves the authenticated member for a request's token subject.
	GetMember(ctx context.Context, memberID string) (*domain.Member, error)
	// ListActiveSessions returns the currently open login sessions for the
	// panel's session badges.
	ListActiveSessions(ctx context.Context) ([]domain.Session, error)
}
