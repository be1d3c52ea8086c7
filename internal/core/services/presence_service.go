package services

import (
	"context"
	"fmt"
	"time"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	portsrepo "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/repositories"
	portssvc "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/services"
)

type presenceService struct {
	BaseService
	presenceRepo portsrepo.PresenceRepositoryFacade
}

// NewPresenceService creates the presence service.
func NewPresenceService(presenceRepo portsrepo.PresenceRepositoryFacade) portssvc.PresenceSvcFacade {
	return &presenceService{presenceRepo: presenceRepo}
}

var _ portssvc.PresenceSvcFacade = (*presenceService)(nil)

// Heartbeat refreshes the member's online/last-seen row. The client sends one
// every 30 seconds while authenticated; the websocket ping handler also calls
// this so an open realtime connection keeps the member visible.
func (s *presenceService) Heartbeat(ctx context.Context, memberID string) error {
	err := s.presenceRepo.UpsertPresence(ctx, domain.Presence{
		MemberID: memberID,
		Online:   true,
		LastSeen: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to upsert presence: %w", err)
	}
	return nil
}

// GoOffline flips the member offline. Called on explicit logout and by the
// unload beacon; silence alone never flips anyone offline.
func (s *presenceService) GoOffline(ctx context.Context, memberID string) error {
	if err := s.presenceRepo.SetOffline(ctx, memberID, time.Now()); err != nil {
		return fmt.Errorf("failed to set presence offline: %w", err)
	}
	return nil
}

func (s *presenceService) ListPresence(ctx context.Context) ([]domain.Presence, error) {
	presence, err := s.presenceRepo.ListPresence(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list presence: %w", err)
	}
	return presence, nil
}
