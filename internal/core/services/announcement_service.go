package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/apperrors"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	portsrepo "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/repositories"
	portssvc "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/services"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/dto"
	"github.com/google/uuid"
)

type announcementService struct {
	BaseService
	announcementRepo portsrepo.AnnouncementRepositoryFacade
	receiptRepo      portsrepo.ReadReceiptRepositoryFacade
}

// NewAnnouncementService creates the announcement service.
func NewAnnouncementService(
	announcementRepo portsrepo.AnnouncementRepositoryFacade,
	receiptRepo portsrepo.ReadReceiptRepositoryFacade,
) portssvc.AnnouncementSvcFacade {
	return &announcementService{
		announcementRepo: announcementRepo,
		receiptRepo:      receiptRepo,
	}
}

var _ portssvc.AnnouncementSvcFacade = (*announcementService)(nil)

// FetchAnnouncements returns the viewer's eligible announcements newest first
// with their read flags merged on. The announcement query failing is an error;
// the receipt query failing only degrades the merge to all-unread, because a
// stale read flag is recoverable and an empty board is not.
func (s *announcementService) FetchAnnouncements(ctx context.Context, viewer *domain.Member) ([]domain.Announcement, error) {
	if viewer == nil {
		return []domain.Announcement{}, nil
	}

	announcements, err := s.announcementRepo.ListAnnouncementsByGroups(ctx, domain.EligibleGroups(viewer))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch announcements: %w", err)
	}

	readByID := make(map[string]bool)
	receipts, err := s.receiptRepo.ListReceiptsForMember(ctx, viewer.MemberID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch read receipts, merging as unread", "member_id", viewer.MemberID)
	} else {
		for _, r := range receipts {
			readByID[r.AnnouncementID] = r.IsRead
		}
	}

	for i := range announcements {
		announcements[i].IsRead = readByID[announcements[i].AnnouncementID]
	}
	return announcements, nil
}

// MarkAsRead upserts the viewer's receipt for one announcement. Persistence
// is best effort: the caller has already flipped its local flag and a lost
// receipt only resurfaces the announcement as unread later.
func (s *announcementService) MarkAsRead(ctx context.Context, viewer *domain.Member, announcementID string) {
	if viewer == nil {
		return
	}
	err := s.receiptRepo.UpsertReceipt(ctx, domain.ReadReceipt{
		MemberID:       viewer.MemberID,
		AnnouncementID: announcementID,
		IsRead:         true,
		ReadAt:         time.Now(),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to persist read receipt",
			"member_id", viewer.MemberID, "announcement_id", announcementID)
	}
}

// MarkAllAsRead upserts one receipt per unread id and returns how many were
// written. Failures are logged, not surfaced.
func (s *announcementService) MarkAllAsRead(ctx context.Context, viewer *domain.Member, unreadIDs []string) int {
	if viewer == nil || len(unreadIDs) == 0 {
		return 0
	}
	now := time.Now()
	receipts := make([]domain.ReadReceipt, 0, len(unreadIDs))
	for _, id := range unreadIDs {
		receipts = append(receipts, domain.ReadReceipt{
			MemberID:       viewer.MemberID,
			AnnouncementID: id,
			IsRead:         true,
			ReadAt:         now,
		})
	}
	if err := s.receiptRepo.UpsertReceipts(ctx, receipts); err != nil {
		s.LogError(ctx, err, "Failed to persist read receipts", "member_id", viewer.MemberID, "count", len(receipts))
	}
	return len(receipts)
}

// GetAnnouncement returns one announcement by id.
func (s *announcementService) GetAnnouncement(ctx context.Context, announcementID string) (*domain.Announcement, error) {
	announcement, err := s.announcementRepo.FindAnnouncementByID(ctx, announcementID)
	if err != nil {
		return nil, fmt.Errorf("failed to find announcement: %w", err)
	}
	if announcement == nil {
		return nil, apperrors.ErrNotFound
	}
	return announcement, nil
}

// SendAnnouncement writes the new announcement. Local viewer state is not
// touched here; delivery happens when the change feed echoes the insert back.
func (s *announcementService) SendAnnouncement(ctx context.Context, creator *domain.Member, req dto.SendAnnouncementRequest) (*domain.Announcement, error) {
	if creator == nil {
		return nil, apperrors.ErrForbidden
	}
	announcement := domain.Announcement{
		AnnouncementID: uuid.NewString(),
		Title:          req.Title,
		Message:        req.Message,
		Type:           domain.AnnouncementType(req.Type),
		TargetGroup:    domain.TargetGroup(req.TargetGroup),
		Options: domain.DeliveryOptions{
			Flash: req.Flash,
			Toast: req.Toast,
			Bell:  req.Bell,
		},
		CreatedAt: time.Now(),
		CreatedBy: creator.MemberID,
	}
	if err := s.announcementRepo.InsertAnnouncement(ctx, announcement); err != nil {
		return nil, fmt.Errorf("failed to insert announcement: %w", err)
	}
	s.LogInfo(ctx, "Announcement sent", "announcement_id", announcement.AnnouncementID, "target_group", req.TargetGroup)
	return &announcement, nil
}

// DeleteAnnouncement removes the row. Deleting an id that is already gone is
// a no-op so repeated deletes from a stale panel do not error.
func (s *announcementService) DeleteAnnouncement(ctx context.Context, announcementID string) error {
	err := s.announcementRepo.DeleteAnnouncement(ctx, announcementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Delete of missing announcement ignored", "announcement_id", announcementID)
			return nil
		}
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	return nil
}
