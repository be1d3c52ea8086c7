package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/services"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAnnouncementSvc fakes the announcement service behind a ViewerStore.
type mockAnnouncementSvc struct {
	FetchAnnouncementsFn func(ctx context.Context, viewer *domain.Member) ([]domain.Announcement, error)
	MarkAsReadFn         func(ctx context.Context, viewer *domain.Member, announcementID string)
	MarkAllAsReadFn      func(ctx context.Context, viewer *domain.Member, unreadIDs []string) int
}

func (m *mockAnnouncementSvc) FetchAnnouncements(ctx context.Context, viewer *domain.Member) ([]domain.Announcement, error) {
	if m.FetchAnnouncementsFn != nil {
		return m.FetchAnnouncementsFn(ctx, viewer)
	}
	return []domain.Announcement{}, nil
}

func (m *mockAnnouncementSvc) MarkAsRead(ctx context.Context, viewer *domain.Member, announcementID string) {
	if m.MarkAsReadFn != nil {
		m.MarkAsReadFn(ctx, viewer, announcementID)
	}
}

func (m *mockAnnouncementSvc) MarkAllAsRead(ctx context.Context, viewer *domain.Member, unreadIDs []string) int {
	if m.MarkAllAsReadFn != nil {
		return m.MarkAllAsReadFn(ctx, viewer, unreadIDs)
	}
	return len(unreadIDs)
}

func (m *mockAnnouncementSvc) GetAnnouncement(ctx context.Context, announcementID string) (*domain.Announcement, error) {
	return nil, nil
}

func (m *mockAnnouncementSvc) SendAnnouncement(ctx context.Context, creator *domain.Member, req dto.SendAnnouncementRequest) (*domain.Announcement, error) {
	return nil, nil
}

func (m *mockAnnouncementSvc) DeleteAnnouncement(ctx context.Context, announcementID string) error {
	return nil
}

func standardViewer() domain.Member {
	return domain.Member{MemberID: "m1", Role: domain.RoleMember}
}

func TestViewerStore_RefreshKeepsStateOnError(t *testing.T) {
	calls := 0
	svc := &mockAnnouncementSvc{
		FetchAnnouncementsFn: func(ctx context.Context, viewer *domain.Member) ([]domain.Announcement, error) {
			calls++
			if calls > 1 {
				return nil, errors.New("unreachable")
			}
			return []domain.Announcement{{AnnouncementID: "a1"}}, nil
		},
	}
	store := services.NewViewerStore(standardViewer(), svc, nil)

	require.NoError(t, store.Refresh(context.Background()))
	require.Len(t, store.Announcements(), 1)

	err := store.Refresh(context.Background())
	assert.Error(t, err)
	assert.Len(t, store.Announcements(), 1, "failed refresh must not wipe prior state")
}

func TestViewerStore_OnInsertChecksEligibility(t *testing.T) {
	store := services.NewViewerStore(standardViewer(), &mockAnnouncementSvc{}, nil)

	store.OnInsert(domain.Announcement{AnnouncementID: "mgr", TargetGroup: domain.TargetManagers})
	assert.Empty(t, store.Announcements(), "manager-only announcement must not reach a standard member")

	store.OnInsert(domain.Announcement{AnnouncementID: "all", TargetGroup: domain.TargetAllMembers})
	require.Len(t, store.Announcements(), 1)
}

func TestViewerStore_OnInsertPrependsUnreadAndDelivers(t *testing.T) {
	notifier := services.NewNotifier(services.WithFlashDuration(time.Hour))
	store := services.NewViewerStore(standardViewer(), &mockAnnouncementSvc{
		FetchAnnouncementsFn: func(ctx context.Context, viewer *domain.Member) ([]domain.Announcement, error) {
			return []domain.Announcement{{AnnouncementID: "old", TargetGroup: domain.TargetAllMembers, IsRead: true}}, nil
		},
	}, notifier)
	require.NoError(t, store.Refresh(context.Background()))

	store.OnInsert(domain.Announcement{
		AnnouncementID: "new",
		TargetGroup:    domain.TargetAllMembers,
		Options:        domain.DeliveryOptions{Flash: true},
		IsRead:         true, // must be forced unread on arrival
	})

	list := store.Announcements()
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].AnnouncementID)
	assert.False(t, list[0].IsRead)
	assert.Equal(t, 1, store.UnreadCount())

	snap := notifier.Snapshot()
	require.NotNil(t, snap.Flash)
	assert.Equal(t, "new", snap.Flash.AnnouncementID)
}

func TestViewerStore_OnDeleteIsIdempotent(t *testing.T) {
	store := services.NewViewerStore(standardViewer(), &mockAnnouncementSvc{}, nil)
	store.OnInsert(domain.Announcement{AnnouncementID: "a1", TargetGroup: domain.TargetAllMembers})

	store.OnDelete("a1")
	assert.Empty(t, store.Announcements())

	// A second delete for the same id must be harmless.
	store.OnDelete("a1")
	store.OnDelete("never-existed")
	assert.Empty(t, store.Announcements())
}

func TestViewerStore_MarkAsReadFlipsLocallyBeforePersisting(t *testing.T) {
	persisted := ""
	svc := &mockAnnouncementSvc{
		MarkAsReadFn: func(ctx context.Context, viewer *domain.Member, announcementID string) {
			persisted = announcementID
		},
	}
	store := services.NewViewerStore(standardViewer(), svc, nil)
	store.OnInsert(domain.Announcement{AnnouncementID: "a1", TargetGroup: domain.TargetAllMembers})

	store.MarkAsRead(context.Background(), "a1")

	require.Len(t, store.Announcements(), 1)
	assert.True(t, store.Announcements()[0].IsRead)
	assert.Equal(t, "a1", persisted)
	assert.Zero(t, store.UnreadCount())
}

func TestViewerStore_MarkAllAsReadReportsFlippedCount(t *testing.T) {
	var persistedIDs []string
	svc := &mockAnnouncementSvc{
		MarkAllAsReadFn: func(ctx context.Context, viewer *domain.Member, unreadIDs []string) int {
			persistedIDs = unreadIDs
			return len(unreadIDs)
		},
	}
	store := services.NewViewerStore(standardViewer(), svc, nil)
	store.OnInsert(domain.Announcement{AnnouncementID: "a1", TargetGroup: domain.TargetAllMembers})
	store.OnInsert(domain.Announcement{AnnouncementID: "a2", TargetGroup: domain.TargetAllMembers})
	store.MarkAsRead(context.Background(), "a1")

	marked := store.MarkAllAsRead(context.Background())

	assert.Equal(t, 1, marked)
	assert.Equal(t, []string{"a2"}, persistedIDs)
	assert.Zero(t, store.UnreadCount())
}
