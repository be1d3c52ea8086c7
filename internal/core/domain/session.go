package domain

import "time"

// Session is one login of a member, kept for the panel's session list.
// Sessions are observability records, not authorization state.
type Session struct {
	SessionID string     `json:"sessionID"`
	MemberID  string     `json:"memberID"`
	Device    string     `json:"device"`
	LoginAt   time.Time  `json:"loginAt"`
	LogoutAt  *time.Time `json:"logoutAt,omitempty"`
	Active    bool       `json:"active"`
}

// Presence is the heartbeat-maintained online flag for one member.
// There is no server-side inference from heartbeat silence; a member goes
// offline only on explicit logout or an unload beacon.
type Presence struct {
	MemberID string    `json:"memberID"`
	Online   bool      `json:"online"`
	LastSeen time.Time `json:"lastSeen"`
}
