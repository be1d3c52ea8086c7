package services

import (
	"context"
	"fmt"
	"time"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/apperrors"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	portsrepo "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/repositories"
	portssvc "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/services"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/platform/config"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/utils"
	"github.com/google/uuid"
)

type authService struct {
	BaseService
	cfg          *config.Config
	memberRepo   portsrepo.MemberRepositoryFacade
	sessionRepo  portsrepo.SessionRepositoryFacade
	presenceRepo portsrepo.PresenceRepositoryFacade
	activityRepo portsrepo.ActivityRepositoryFacade
}

// NewAuthService creates the authentication service.
func NewAuthService(
	cfg *config.Config,
	memberRepo portsrepo.MemberRepositoryFacade,
	sessionRepo portsrepo.SessionRepositoryFacade,
	presenceRepo portsrepo.PresenceRepositoryFacade,
	activityRepo portsrepo.ActivityRepositoryFacade,
) portssvc.AuthSvcFacade {
	return &authService{
		cfg:          cfg,
		memberRepo:   memberRepo,
		sessionRepo:  sessionRepo,
		presenceRepo: presenceRepo,
		activityRepo: activityRepo,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Authenticate verifies credentials against the stored bcrypt hash and, on
// success, records the login side effects. The three failure modes return
// distinct sentinel errors carrying the exact panel-facing messages.
func (s *authService) Authenticate(ctx context.Context, username, password, device string) (*portssvc.LoginResult, error) {
	member, err := s.memberRepo.FindMemberByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up member by username: %w", err)
	}
	if member == nil {
		return nil, apperrors.ErrUserNotFound
	}
	if !utils.CheckPasswordHash(password, member.PasswordHash) {
		return nil, apperrors.ErrWrongPassword
	}
	if !member.IsActive() {
		return nil, apperrors.ErrAccountDisabled
	}

	token, err := utils.GenerateJWT(member.MemberID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	now := time.Now()
	session := domain.Session{
		SessionID: uuid.NewString(),
		MemberID:  member.MemberID,
		Device:    device,
		LoginAt:   now,
		Active:    true,
	}

	// Session, activity and presence rows are observability records; their
	// failures are logged and never block the login.
	if err := s.sessionRepo.InsertSession(ctx, session); err != nil {
		s.LogError(ctx, err, "Failed to record login session", "member_id", member.MemberID)
	}
	if err := s.activityRepo.InsertActivity(ctx, domain.Activity{
		ActivityID: uuid.NewString(),
		MemberID:   member.MemberID,
		ActorName:  member.Name,
		ActorRole:  string(member.Role),
		Action:     "giris",
		Detail:     fmt.Sprintf("%s giriş yaptı", member.Name),
		CreatedAt:  now,
	}); err != nil {
		s.LogError(ctx, err, "Failed to record login activity", "member_id", member.MemberID)
	}
	if err := s.presenceRepo.UpsertPresence(ctx, domain.Presence{
		MemberID: member.MemberID,
		Online:   true,
		LastSeen: now,
	}); err != nil {
		s.LogError(ctx, err, "Failed to flip presence online", "member_id", member.MemberID)
	}

	return &portssvc.LoginResult{Member: *member, Token: token, SessionID: session.SessionID}, nil
}

// Logout closes the session and flips presence offline. All steps are best
// effort; the caller always gets a successful logout.
func (s *authService) Logout(ctx context.Context, memberID, sessionID string) error {
	now := time.Now()
	if sessionID != "" {
		if err := s.sessionRepo.CloseSession(ctx, sessionID, now); err != nil {
			s.LogError(ctx, err, "Failed to close session", "session_id", sessionID)
		}
	}
	if err := s.presenceRepo.SetOffline(ctx, memberID, now); err != nil {
		s.LogError(ctx, err, "Failed to flip presence offline", "member_id", memberID)
	}

	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil || member == nil {
		return nil
	}
	if err := s.activityRepo.InsertActivity(ctx, domain.Activity{
		ActivityID: uuid.NewString(),
		MemberID:   memberID,
		ActorName:  member.Name,
		ActorRole:  string(member.Role),
		Action:     "cikis",
		Detail:     fmt.Sprintf("%s çıkış yaptı", member.Name),
		CreatedAt:  now,
	}); err != nil {
		s.LogError(ctx, err, "Failed to record logout activity", "member_id", memberID)
	}
	return nil
}

// ListActiveSessions returns sessions that have not been closed yet.
func (s *authService) ListActiveSessions(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.sessionRepo.ListActiveSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}
	return sessions, nil
}

// GetMember resolves a token subject to its member row.
func (s *authService) GetMember(ctx context.Context, memberID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to find member: %w", err)
	}
	if member == nil {
		return nil, apperrors.ErrNotFound
	}
	return member, nil
}
