package services

import (
	"context"
	"sync"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	portssvc "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/services"
)

// ViewerStore is the per-viewer announcement cache behind one realtime
// connection. It mirrors the viewer's eligible announcements with their read
// flags and feeds the viewer's Notifier when the change feed delivers a new
// row. Mutations on read state are optimistic: the local flag flips first and
// persistence is best effort.
type ViewerStore struct {
	mu            sync.Mutex
	viewer        domain.Member
	svc           portssvc.AnnouncementSvcFacade
	notifier      *Notifier
	announcements []domain.Announcement
}

// NewViewerStore creates a store for one authenticated viewer.
func NewViewerStore(viewer domain.Member, svc portssvc.AnnouncementSvcFacade, notifier *Notifier) *ViewerStore {
	return &ViewerStore{viewer: viewer, svc: svc, notifier: notifier}
}

// Notifier returns the viewer's presentation-state notifier.
func (vs *ViewerStore) Notifier() *Notifier {
	return vs.notifier
}

// Refresh reloads the full announcement set. On failure the prior state is
// left untouched and the error is returned for the caller to log.
func (vs *ViewerStore) Refresh(ctx context.Context) error {
	announcements, err := vs.svc.FetchAnnouncements(ctx, &vs.viewer)
	if err != nil {
		return err
	}
	vs.mu.Lock()
	vs.announcements = announcements
	vs.mu.Unlock()
	return nil
}

// OnInsert handles a change-feed insert. The feed is unfiltered, so group
// eligibility is re-checked here with the same predicate the fetch path uses.
// An eligible announcement is prepended unread and delivered on every enabled
// presentation channel.
func (vs *ViewerStore) OnInsert(a domain.Announcement) {
	if !domain.IsEligible(&vs.viewer, a.TargetGroup) {
		return
	}
	a.IsRead = false

	vs.mu.Lock()
	vs.announcements = append([]domain.Announcement{a}, vs.announcements...)
	vs.mu.Unlock()

	if vs.notifier != nil {
		vs.notifier.Deliver(a)
	}
}

// OnDelete handles a change-feed delete by dropping the row locally. Already
// running flash/toast timers for that id are deliberately left alone; an
// active banner for a deleted announcement lives out its own expiry.
// Unknown ids are ignored, which makes repeated deletes harmless.
func (vs *ViewerStore) OnDelete(announcementID string) {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	kept := vs.announcements[:0]
	for _, a := range vs.announcements {
		if a.AnnouncementID != announcementID {
			kept = append(kept, a)
		}
	}
	vs.announcements = kept
}

// MarkAsRead flips the local flag first, then persists the receipt best effort.
func (vs *ViewerStore) MarkAsRead(ctx context.Context, announcementID string) {
	vs.mu.Lock()
	for i := range vs.announcements {
		if vs.announcements[i].AnnouncementID == announcementID {
			vs.announcements[i].IsRead = true
			break
		}
	}
	vs.mu.Unlock()

	vs.svc.MarkAsRead(ctx, &vs.viewer, announcementID)
}

// MarkAllAsRead flips every unread flag and upserts one receipt per flipped
// announcement. Returns the number of receipts written.
func (vs *ViewerStore) MarkAllAsRead(ctx context.Context) int {
	vs.mu.Lock()
	var unreadIDs []string
	for i := range vs.announcements {
		if !vs.announcements[i].IsRead {
			vs.announcements[i].IsRead = true
			unreadIDs = append(unreadIDs, vs.announcements[i].AnnouncementID)
		}
	}
	vs.mu.Unlock()

	return vs.svc.MarkAllAsRead(ctx, &vs.viewer, unreadIDs)
}

// Announcements returns a copy of the current list.
func (vs *ViewerStore) Announcements() []domain.Announcement {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	out := make([]domain.Announcement, len(vs.announcements))
	copy(out, vs.announcements)
	return out
}

// UnreadCount returns how many announcements the viewer has not read.
func (vs *ViewerStore) UnreadCount() int {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	count := 0
	for _, a := range vs.announcements {
		if !a.IsRead {
			count++
		}
	}
	return count
}
