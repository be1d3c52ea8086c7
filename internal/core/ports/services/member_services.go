package services

import (
	"context"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/dto"
)

// MemberSvcFacade manages panel member accounts.
type MemberSvcFacade interface {
	ListMembers(ctx context.Context) ([]domain.Member, error)
	// UpdateMembers is the panel's wholesale save: the submitted set replaces
	// the stored set, absent members are reconciled away.
	UpdateMembers(ctx context.Context, actor *domain.Member, reqs []dto.SaveMemberRequest) ([]domain.Member, error)
	// UpdatePassword re-hashes and stores the password, then mirrors it into
	// the secondary identity store best effort.
	UpdatePassword(ctx context.Context, memberID, newPassword string) error
	UpdateProfile(ctx context.Context, memberID string, req dto.UpdateProfileRequest) (*domain.Member, error)
}
