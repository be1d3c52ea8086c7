package repositories

import (
	"context"
	"time"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
)

// SessionRepositoryFacade defines persistence for login sessions.
type SessionRepositoryFacade interface {
	InsertSession(ctx context.Context, session domain.Session) error
	CloseSession(ctx context.Context, sessionID string, logoutAt time.Time) error
	ListActiveSessions(ctx context.Context) ([]domain.Session, error)
}

// PresenceRepositoryFacade defines persistence for the online/last-seen flags.
type PresenceRepositoryFacade interface {
	UpsertPresence(ctx context.Context, presence domain.Presence) error
	SetOffline(ctx context.Context, memberID string, at time.Time) error
	ListPresence(ctx context.Context) ([]domain.Presence, error)
}
