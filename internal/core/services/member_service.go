package services

import (
	"context"
	"fmt"
	"time"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/apperrors"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	portsrepo "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/repositories"
	portssvc "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/services"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/dto"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/utils"
	"github.com/google/uuid"
)

type memberService struct {
	BaseService
	memberRepo portsrepo.MemberRepositoryFacade
	mirror     portsrepo.IdentityMirrorFacade
}

// NewMemberService creates the member management service. mirror may be nil
// when no secondary identity store is configured.
func NewMemberService(memberRepo portsrepo.MemberRepositoryFacade, mirror portsrepo.IdentityMirrorFacade) portssvc.MemberSvcFacade {
	return &memberService{memberRepo: memberRepo, mirror: mirror}
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

func (s *memberService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	members, err := s.memberRepo.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// UpdateMembers is the panel's wholesale save. Rows without an id become new
// accounts; rows with an empty password keep their stored hash; members
// missing from the submitted set are deleted.
func (s *memberService) UpdateMembers(ctx context.Context, actor *domain.Member, reqs []dto.SaveMemberRequest) ([]domain.Member, error) {
	if actor == nil || actor.Role != domain.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}

	existing, err := s.memberRepo.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load members for save: %w", err)
	}
	hashByID := make(map[string]string, len(existing))
	createdAtByID := make(map[string]time.Time, len(existing))
	for _, m := range existing {
		hashByID[m.MemberID] = m.PasswordHash
		createdAtByID[m.MemberID] = m.CreatedAt
	}

	now := time.Now()
	members := make([]domain.Member, 0, len(reqs))
	keepIDs := make([]string, 0, len(reqs))
	for _, req := range reqs {
		member := domain.Member{
			MemberID:  req.MemberID,
			Name:      req.Name,
			Username:  req.Username,
			Role:      domain.MemberRole(req.Role),
			Status:    domain.MemberStatus(req.Status),
			ShopName:  req.ShopName,
			Email:     req.Email,
			CreatedAt: now,
		}
		if member.MemberID == "" {
			member.MemberID = uuid.NewString()
		} else if createdAt, ok := createdAtByID[member.MemberID]; ok {
			member.CreatedAt = createdAt
		}

		switch {
		case req.Password != "":
			hash, err := utils.HashPassword(req.Password)
			if err != nil {
				return nil, fmt.Errorf("failed to hash password for %q: %w", req.Username, err)
			}
			member.PasswordHash = hash
		case hashByID[member.MemberID] != "":
			member.PasswordHash = hashByID[member.MemberID]
		default:
			return nil, fmt.Errorf("new member %q requires a password: %w", req.Username, apperrors.ErrValidation)
		}

		members = append(members, member)
		keepIDs = append(keepIDs, member.MemberID)
	}

	if err := s.memberRepo.DeleteMembersNotIn(ctx, keepIDs); err != nil {
		return nil, fmt.Errorf("failed to reconcile removed members: %w", err)
	}
	if err := s.memberRepo.UpsertMembers(ctx, members); err != nil {
		return nil, fmt.Errorf("failed to upsert members: %w", err)
	}

	s.LogInfo(ctx, "Members saved", "count", len(members))
	return members, nil
}

// UpdatePassword re-hashes and stores the password, then mirrors the change
// into the secondary identity store. The mirror write is fire and forget: a
// failure is logged and does not fail the operation.
func (s *memberService) UpdatePassword(ctx context.Context, memberID, newPassword string) error {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return fmt.Errorf("failed to find member for password change: %w", err)
	}
	if member == nil {
		return apperrors.ErrNotFound
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	if err := s.memberRepo.UpdatePasswordHash(ctx, memberID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if s.mirror != nil {
		if err := s.mirror.MirrorPassword(ctx, memberID, hash); err != nil {
			s.LogError(ctx, err, "Failed to mirror password to identity store", "member_id", memberID)
		}
	}
	return nil
}

func (s *memberService) UpdateProfile(ctx context.Context, memberID string, req dto.UpdateProfileRequest) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to find member for profile update: %w", err)
	}
	if member == nil {
		return nil, apperrors.ErrNotFound
	}

	if err := s.memberRepo.UpdateProfile(ctx, memberID, req.Name, req.ShopName, req.Email); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	member.Name = req.Name
	member.ShopName = req.ShopName
	member.Email = req.Email
	return member, nil
}
