package repositories

import (
	"context"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
)

// AnnouncementRepositoryFacade defines persistence operations for announcements.
// Announcements are created and deleted, never updated in place.
type AnnouncementRepositoryFacade interface {
	// ListAnnouncementsByGroups returns rows whose target group is in groups,
	// newest first.
	ListAnnouncementsByGroups(ctx context.Context, groups []domain.TargetGroup) ([]domain.Announcement, error)
	FindAnnouncementByID(ctx context.Context, announcementID string) (*domain.Announcement, error)
	InsertAnnouncement(ctx context.Context, a domain.Announcement) error
	DeleteAnnouncement(ctx context.Context, announcementID string) error
}

// ReadReceiptRepositoryFacade defines persistence for per-member read state.
type ReadReceiptRepositoryFacade interface {
	ListReceiptsForMember(ctx context.Context, memberID string) ([]domain.ReadReceipt, error)
	UpsertReceipt(ctx context.Context, receipt domain.ReadReceipt) error
	UpsertReceipts(ctx context.Context, receipts []domain.ReadReceipt) error
}
