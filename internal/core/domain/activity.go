package domain

import "time"

// Activity is a human-readable audit line shown on the panel's activity feed.
type Activity struct {
	ActivityID string    `json:"activityID"`
	MemberID   string    `json:"memberID,omitempty"`
	ActorName  string    `json:"actorName"`
	ActorRole  string    `json:"actorRole"`
	Action     string    `json:"action"`
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"createdAt"`
}
