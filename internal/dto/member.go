package dto

import (
	"time"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
)

// SaveMemberRequest is one entry of the panel's bulk member save. Password is
// optional: empty keeps the stored hash, non-empty re-hashes. A missing
// MemberID means a new account.
type SaveMemberRequest struct {
	MemberID string `json:"memberID"`
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password"`
	Role     string `json:"role" binding:"required,oneof=Admin Yönetici Üye"`
	Status   string `json:"status" binding:"required,oneof=Aktif Pasif"`
	ShopName string `json:"shopName"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// UpdateMembersRequest is the wholesale member save payload.
type UpdateMembersRequest struct {
	Members []SaveMemberRequest `json:"members" binding:"required,dive"`
}

// UpdatePasswordRequest changes one member's password.
type UpdatePasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=4"`
}

// UpdateProfileRequest edits the signed-in member's own profile fields.
type UpdateProfileRequest struct {
	Name     string `json:"name" binding:"required"`
	ShopName string `json:"shopName"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// MemberResponse is the wire shape of a member; the password hash never leaves.
type MemberResponse struct {
	MemberID  string    `json:"memberID"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	ShopName  string    `json:"shopName,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListMembersResponse wraps the member list.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// ToMemberResponse maps a domain member to its wire shape.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:  m.MemberID,
		Name:      m.Name,
		Username:  m.Username,
		Role:      string(m.Role),
		Status:    string(m.Status),
		ShopName:  m.ShopName,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}
}

// ToListMembersResponse maps a member slice.
func ToListMembersResponse(members []domain.Member) ListMembersResponse {
	resp := ListMembersResponse{Members: make([]MemberResponse, 0, len(members))}
	for i := range members {
		resp.Members = append(resp.Members, ToMemberResponse(&members[i]))
	}
	return resp
}
