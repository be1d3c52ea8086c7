package services

import (
	"context"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/dto"
)

// AnnouncementSvcFacade serves announcements scoped to a viewer and the
// per-viewer read state merged onto them.
type AnnouncementSvcFacade interface {
	// FetchAnnouncements returns the viewer's eligible announcements newest
	// first, with IsRead merged from their receipts. A nil viewer yields an
	// empty set. A receipt-fetch failure degrades to all-unread.
	FetchAnnouncements(ctx context.Context, viewer *domain.Member) ([]domain.Announcement, error)
	MarkAsRead(ctx context.Context, viewer *domain.Member, announcementID string)
	// MarkAllAsRead returns how many receipts were upserted.
	MarkAllAsRead(ctx context.Context, viewer *domain.Member, unreadIDs []string) int
	// GetAnnouncement returns one announcement by id, ErrNotFound when absent.
	GetAnnouncement(ctx context.Context, announcementID string) (*domain.Announcement, error)
	SendAnnouncement(ctx context.Context, creator *domain.Member, req dto.SendAnnouncementRequest) (*domain.Announcement, error)
	DeleteAnnouncement(ctx context.Context, announcementID string) error
}
