package services

import (
	"context"
	"fmt"
	"time"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/apperrors"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	portsrepo "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/repositories"
	portssvc "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/services"
	"github.com/google/uuid"
)

type historyService struct {
	BaseService
	historyRepo  portsrepo.HistoryRepositoryFacade
	activityRepo portsrepo.ActivityRepositoryFacade
}

// NewHistoryService creates the history/activity read service.
func NewHistoryService(historyRepo portsrepo.HistoryRepositoryFacade, activityRepo portsrepo.ActivityRepositoryFacade) portssvc.HistorySvcFacade {
	return &historyService{historyRepo: historyRepo, activityRepo: activityRepo}
}

var _ portssvc.HistorySvcFacade = (*historyService)(nil)

func (s *historyService) ListHistory(ctx context.Context, limit, offset int) ([]domain.HistoryLog, error) {
	entries, err := s.historyRepo.ListHistory(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return entries, nil
}

// ClearHistory wipes the price history. Admin only; the wipe itself gets an
// activity line so the feed shows who cleared it.
func (s *historyService) ClearHistory(ctx context.Context, actor *domain.Member) error {
	if actor == nil || actor.Role != domain.RoleAdmin {
		return apperrors.ErrForbidden
	}
	if err := s.historyRepo.ClearHistory(ctx); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	if err := s.activityRepo.InsertActivity(ctx, domain.Activity{
		ActivityID: uuid.NewString(),
		MemberID:   actor.MemberID,
		ActorName:  actor.Name,
		ActorRole:  string(actor.Role),
		Action:     "gecmis_temizleme",
		Detail:     fmt.Sprintf("%s fiyat geçmişini temizledi", actor.Name),
		CreatedAt:  time.Now(),
	}); err != nil {
		s.LogError(ctx, err, "Failed to record history clear activity", "member_id", actor.MemberID)
	}
	return nil
}

func (s *historyService) ListActivities(ctx context.Context, limit, offset int) ([]domain.Activity, error) {
	activities, err := s.activityRepo.ListActivities(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}
