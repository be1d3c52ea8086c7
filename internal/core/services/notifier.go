package services

import (
	"sync"
	"time"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
)

const (
	defaultFlashDuration = 7 * time.Second
	defaultToastDuration = 4500 * time.Millisecond
)

// NotifierSnapshot is the current presentation state pushed to one viewer:
// the single-slot flash banner, the stacked toasts and the bell pulse flag.
type NotifierSnapshot struct {
	Flash  *domain.Announcement  `json:"flash,omitempty"`
	Toasts []domain.Announcement `json:"toasts"`
	Bell   bool                  `json:"bell"`
}

// NotifierOption configures a Notifier.
type NotifierOption func(*Notifier)

// WithFlashDuration overrides the flash banner auto-expiry.
func WithFlashDuration(d time.Duration) NotifierOption {
	return func(n *Notifier) { n.flashDuration = d }
}

// WithToastDuration overrides the per-toast auto-expiry.
func WithToastDuration(d time.Duration) NotifierOption {
	return func(n *Notifier) { n.toastDuration = d }
}

// WithOnChange registers a callback invoked with a fresh snapshot after every
// state change, including timer-driven expiries.
func WithOnChange(fn func(NotifierSnapshot)) NotifierOption {
	return func(n *Notifier) { n.onChange = fn }
}

// Notifier holds the transient presentation queues for one viewer.
//
// The flash banner is a single slot: the last flash-enabled announcement wins.
// Every flash schedules its own expiry timer and the timer clears the slot
// only if its announcement still occupies it, so a superseded banner's late
// timer never wipes out its successor. Toast timers are independent per id.
// The bell is an edge: the flag toggles on each bell-enabled arrival and the
// UI replays its shake animation on every transition; no count is kept.
type Notifier struct {
	mu     sync.Mutex
	flash  *domain.Announcement
	toasts []domain.Announcement
	bell   bool

	flashDuration time.Duration
	toastDuration time.Duration
	onChange      func(NotifierSnapshot)
}

// NewNotifier creates a notifier with the panel's standard expiry timings.
func NewNotifier(opts ...NotifierOption) *Notifier {
	n := &Notifier{
		flashDuration: defaultFlashDuration,
		toastDuration: defaultToastDuration,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Deliver fires every enabled channel of the announcement. The three options
// are independent; an announcement may occupy the flash slot, add a toast and
// pulse the bell all at once.
func (n *Notifier) Deliver(a domain.Announcement) {
	n.mu.Lock()
	if a.Options.Flash {
		flash := a
		n.flash = &flash
		id := a.AnnouncementID
		time.AfterFunc(n.flashDuration, func() { n.expireFlash(id) })
	}
	if a.Options.Toast {
		n.toasts = append(n.toasts, a)
		id := a.AnnouncementID
		time.AfterFunc(n.toastDuration, func() { n.expireToast(id) })
	}
	if a.Options.Bell {
		n.bell = !n.bell
	}
	n.mu.Unlock()

	if a.Options.Flash || a.Options.Toast || a.Options.Bell {
		n.emit()
	}
}

// DismissFlash clears the flash banner if the given announcement still owns it.
func (n *Notifier) DismissFlash(announcementID string) {
	n.expireFlash(announcementID)
}

// Snapshot returns a copy of the current presentation state.
func (n *Notifier) Snapshot() NotifierSnapshot {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.snapshotLocked()
}

func (n *Notifier) snapshotLocked() NotifierSnapshot {
	snap := NotifierSnapshot{Bell: n.bell, Toasts: make([]domain.Announcement, len(n.toasts))}
	copy(snap.Toasts, n.toasts)
	if n.flash != nil {
		flash := *n.flash
		snap.Flash = &flash
	}
	return snap
}

func (n *Notifier) expireFlash(announcementID string) {
	n.mu.Lock()
	if n.flash == nil || n.flash.AnnouncementID != announcementID {
		n.mu.Unlock()
		return
	}
	n.flash = nil
	n.mu.Unlock()
	n.emit()
}

func (n *Notifier) expireToast(announcementID string) {
	n.mu.Lock()
	kept := n.toasts[:0]
	removed := false
	for _, t := range n.toasts {
		if t.AnnouncementID == announcementID && !removed {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	n.toasts = kept
	n.mu.Unlock()
	if removed {
		n.emit()
	}
}

func (n *Notifier) emit() {
	if n.onChange == nil {
		return
	}
	n.mu.Lock()
	snap := n.snapshotLocked()
	n.mu.Unlock()
	n.onChange(snap)
}
