package services

import (
	"context"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
)

// PresenceSvcFacade maintains the heartbeat-driven online flags.
type PresenceSvcFacade interface {
	Heartbeat(ctx context.Context, memberID string) error
	GoOffline(ctx context.Context, memberID string) error
	ListPresence(ctx context.Context) ([]domain.Presence, error)
}
