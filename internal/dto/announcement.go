package dto

import (
	"time"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
)

// SendAnnouncementRequest is the panel's announcement form. The three
// delivery flags are independently combinable; there is no exclusivity rule.
// Title and message are capped so the change-feed NOTIFY payload stays under
// the 8000-byte pg_notify limit even with 4-byte runes.
type SendAnnouncementRequest struct {
	Title       string `json:"title" binding:"required,max=120"`
	Message     string `json:"message" binding:"max=1200"`
	Type        string `json:"type" binding:"required,oneof=onemli uyari bilgi basari duyuru"`
	TargetGroup string `json:"targetGroup" binding:"required,targetgroup"`
	Flash       bool   `json:"flash"`
	Toast       bool   `json:"toast"`
	Bell        bool   `json:"bell"`
}

// AnnouncementResponse is the wire shape of one announcement for a viewer.
type AnnouncementResponse struct {
	AnnouncementID string                 `json:"announcementID"`
	Title          string                 `json:"title"`
	Message        string                 `json:"message,omitempty"`
	Type           string                 `json:"type"`
	TargetGroup    string                 `json:"targetGroup"`
	Options        domain.DeliveryOptions `json:"options"`
	CreatedAt      time.Time              `json:"createdAt"`
	CreatedBy      string                 `json:"createdBy"`
	IsRead         bool                   `json:"isRead"`
}

// ListAnnouncementsResponse wraps a viewer's announcement list.
type ListAnnouncementsResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
	UnreadCount   int                    `json:"unreadCount"`
}

// MarkAllReadRequest lists the ids the viewer currently sees as unread.
type MarkAllReadRequest struct {
	AnnouncementIDs []string `json:"announcementIDs" binding:"required"`
}

// ToAnnouncementResponse maps one announcement.
func ToAnnouncementResponse(a *domain.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		AnnouncementID: a.AnnouncementID,
		Title:          a.Title,
		Message:        a.Message,
		Type:           string(a.Type),
		TargetGroup:    string(a.TargetGroup),
		Options:        a.Options,
		CreatedAt:      a.CreatedAt,
		CreatedBy:      a.CreatedBy,
		IsRead:         a.IsRead,
	}
}

// ToListAnnouncementsResponse maps a list and counts the unread entries.
func ToListAnnouncementsResponse(list []domain.Announcement) ListAnnouncementsResponse {
	resp := ListAnnouncementsResponse{Announcements: make([]AnnouncementResponse, 0, len(list))}
	for i := range list {
		resp.Announcements = append(resp.Announcements, ToAnnouncementResponse(&list[i]))
		if !list[i].IsRead {
			resp.UnreadCount++
		}
	}
	return resp
}
