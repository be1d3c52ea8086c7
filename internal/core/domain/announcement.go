package domain

import "time"

// AnnouncementType is the severity/category label shown on the notification card.
type AnnouncementType string

const (
	AnnouncementImportant AnnouncementType = "onemli"
	AnnouncementWarning   AnnouncementType = "uyari"
	AnnouncementInfo      AnnouncementType = "bilgi"
	AnnouncementSuccess   AnnouncementType = "basari"
	AnnouncementGeneral   AnnouncementType = "duyuru"
)

// TargetGroup is one of the four fixed audience labels gating announcement visibility.
type TargetGroup string

const (
	TargetAllMembers      TargetGroup = "Tüm Üyeler"
	TargetManagers        TargetGroup = "Yöneticiler"
	TargetStandardMembers TargetGroup = "Standart Üyeler"
	TargetJewelers        TargetGroup = "Kuyumcular"
)

// DeliveryOptions selects which presentation channels fire when an
// announcement arrives. The flags are independent; all three may be set.
type DeliveryOptions struct {
	Flash bool `json:"flash"`
	Toast bool `json:"toast"`
	Bell  bool `json:"bell"`
}

// Announcement is a message pushed to panel viewers. IsRead is derived per
// viewer from their read receipt, never stored on the row itself.
type Announcement struct {
	AnnouncementID string           `json:"announcementID"`
	Title          string           `json:"title"`
	Message        string           `json:"message,omitempty"`
	Type           AnnouncementType `json:"type"`
	TargetGroup    TargetGroup      `json:"targetGroup"`
	Options        DeliveryOptions  `json:"options"`
	CreatedAt      time.Time        `json:"createdAt"`
	CreatedBy      string           `json:"createdBy"`
	IsRead         bool             `json:"isRead"`
}

// ReadReceipt records that a member has read an announcement.
// Keyed by (member, announcement); upserted, never deleted.
type ReadReceipt struct {
	MemberID       string    `json:"memberID"`
	AnnouncementID string    `json:"announcementID"`
	IsRead         bool      `json:"isRead"`
	ReadAt         time.Time `json:"readAt"`
}

// EligibleGroups returns the target groups whose announcements the member may
// see. Every member sees the universal group; Admin and Yönetici additionally
// see the manager group; Üye additionally sees the standard-member group; a
// member with a shop on file additionally sees the jeweler group.
//
// This is the single predicate for both the fetch path and the change-feed
// event path, so the two filters cannot drift apart.
func EligibleGroups(m *Member) []TargetGroup {
	if m == nil {
		return nil
	}
	groups := []TargetGroup{TargetAllMembers}
	switch m.Role {
	case RoleAdmin, RoleManager:
		groups = append(groups, TargetManagers)
	case RoleMember:
		groups = append(groups, TargetStandardMembers)
	}
	if m.ShopName != "" {
		groups = append(groups, TargetJewelers)
	}
	return groups
}

// IsEligible reports whether the member may see an announcement with the
// given target group.
func IsEligible(m *Member, group TargetGroup) bool {
	for _, g := range EligibleGroups(m) {
		if g == group {
			return true
		}
	}
	return false
}
