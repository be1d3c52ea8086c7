package repositories

import (
	"context"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
)

// MemberRepositoryFacade defines persistence operations for panel members.
type MemberRepositoryFacade interface {
	ListMembers(ctx context.Context) ([]domain.Member, error)
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)
	FindMemberByUsername(ctx context.Context, username string) (*domain.Member, error)
	UpsertMembers(ctx context.Context, members []domain.Member) error
	DeleteMembersNotIn(ctx context.Context, keepIDs []string) error
	UpdatePasswordHash(ctx context.Context, memberID string, passwordHash string) error
	UpdateProfile(ctx context.Context, memberID string, name, shopName, email string) error
}

// IdentityMirrorFacade is the secondary identity store a password change is
// mirrored into. The mirror is best effort: callers log failures and move on.
type IdentityMirrorFacade interface {
	MirrorPassword(ctx context.Context, memberID string, passwordHash string) error
}
