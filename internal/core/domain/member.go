package domain

import "time"

// MemberRole is the panel role assigned to a member. The labels are the
// Turkish strings the panel displays and stores verbatim.
type MemberRole string

const (
	RoleAdmin   MemberRole = "Admin"
	RoleManager MemberRole = "Yönetici"
	RoleMember  MemberRole = "Üye"
)

// MemberStatus gates login. A Pasif member keeps their row but cannot sign in.
type MemberStatus string

const (
	StatusActive   MemberStatus = "Aktif"
	StatusInactive MemberStatus = "Pasif"
)

// Member is an account that can sign in to the admin panel.
type Member struct {
	MemberID     string       `json:"memberID"`
	Name         string       `json:"name"`
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"`
	Role         MemberRole   `json:"role"`
	Status       MemberStatus `json:"status"`
	ShopName     string       `json:"shopName,omitempty"`
	Email        string       `json:"email,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// IsActive reports whether the member may sign in.
func (m *Member) IsActive() bool {
	return m.Status == StatusActive
}
