package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/apperrors"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/services"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/platform/config"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test-issuer",
	}
}

func activeMember(t *testing.T, password string) *domain.Member {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &domain.Member{
		MemberID:     "m1",
		Name:         "Ayşe",
		Username:     "ayse",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Status:       domain.StatusActive,
	}
}

func TestAuthenticate_UnknownUsername(t *testing.T) {
	memberRepo := &mockMemberRepo{
		FindMemberByUsernameFn: func(ctx context.Context, username string) (*domain.Member, error) {
			return nil, nil
		},
	}
	svc := services.NewAuthService(testAuthConfig(), memberRepo, &mockSessionRepo{}, &mockPresenceRepo{}, &mockActivityRepo{})

	_, err := svc.Authenticate(context.Background(), "yok", "pw", "web")

	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Equal(t, "Kullanıcı bulunamadı!", err.Error())
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	member := activeMember(t, "dogru-sifre")
	memberRepo := &mockMemberRepo{
		FindMemberByUsernameFn: func(ctx context.Context, username string) (*domain.Member, error) {
			return member, nil
		},
	}
	svc := services.NewAuthService(testAuthConfig(), memberRepo, &mockSessionRepo{}, &mockPresenceRepo{}, &mockActivityRepo{})

	_, err := svc.Authenticate(context.Background(), "ayse", "yanlis-sifre", "web")

	require.ErrorIs(t, err, apperrors.ErrWrongPassword)
	assert.Equal(t, "Hatalı şifre!", err.Error())
}

func TestAuthenticate_DisabledAccount(t *testing.T) {
	member := activeMember(t, "sifre")
	member.Status = domain.StatusInactive
	memberRepo := &mockMemberRepo{
		FindMemberByUsernameFn: func(ctx context.Context, username string) (*domain.Member, error) {
			return member, nil
		},
	}
	svc := services.NewAuthService(testAuthConfig(), memberRepo, &mockSessionRepo{}, &mockPresenceRepo{}, &mockActivityRepo{})

	_, err := svc.Authenticate(context.Background(), "ayse", "sifre", "web")

	require.ErrorIs(t, err, apperrors.ErrAccountDisabled)
	assert.Equal(t, "Hesabınız pasif durumda. Yönetici ile iletişime geçin.", err.Error())
}

func TestAuthenticate_SuccessRecordsSideEffects(t *testing.T) {
	member := activeMember(t, "sifre")

	var session domain.Session
	var activity domain.Activity
	var presence domain.Presence

	memberRepo := &mockMemberRepo{
		FindMemberByUsernameFn: func(ctx context.Context, username string) (*domain.Member, error) {
			return member, nil
		},
	}
	sessionRepo := &mockSessionRepo{
		InsertSessionFn: func(ctx context.Context, s domain.Session) error {
			session = s
			return nil
		},
	}
	activityRepo := &mockActivityRepo{
		InsertActivityFn: func(ctx context.Context, a domain.Activity) error {
			activity = a
			return nil
		},
	}
	presenceRepo := &mockPresenceRepo{
		UpsertPresenceFn: func(ctx context.Context, p domain.Presence) error {
			presence = p
			return nil
		},
	}
	svc := services.NewAuthService(testAuthConfig(), memberRepo, sessionRepo, presenceRepo, activityRepo)

	result, err := svc.Authenticate(context.Background(), "ayse", "sifre", "Chrome / macOS")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, session.SessionID, result.SessionID)
	assert.Equal(t, "m1", result.Member.MemberID)

	// The token subject must round-trip to the member id.
	claims, err := utils.ParseAndValidateJWT(result.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "m1", claims.Subject)
	assert.Equal(t, "test-issuer", claims.Issuer)

	assert.Equal(t, "m1", session.MemberID)
	assert.Equal(t, "Chrome / macOS", session.Device)
	assert.True(t, session.Active)

	assert.Equal(t, "giris", activity.Action)
	assert.Equal(t, "Ayşe", activity.ActorName)

	assert.Equal(t, "m1", presence.MemberID)
	assert.True(t, presence.Online)
}

func TestAuthenticate_SideEffectFailuresDoNotBlockLogin(t *testing.T) {
	member := activeMember(t, "sifre")
	memberRepo := &mockMemberRepo{
		FindMemberByUsernameFn: func(ctx context.Context, username string) (*domain.Member, error) {
			return member, nil
		},
	}
	sessionRepo := &mockSessionRepo{
		InsertSessionFn: func(ctx context.Context, s domain.Session) error {
			return assert.AnError
		},
	}
	presenceRepo := &mockPresenceRepo{
		UpsertPresenceFn: func(ctx context.Context, p domain.Presence) error {
			return assert.AnError
		},
	}
	svc := services.NewAuthService(testAuthConfig(), memberRepo, sessionRepo, presenceRepo, &mockActivityRepo{})

	result, err := svc.Authenticate(context.Background(), "ayse", "sifre", "web")

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestLogout_ClosesSessionAndFlipsPresence(t *testing.T) {
	member := activeMember(t, "sifre")
	var closedSession string
	var offlineMember string
	var activity domain.Activity

	memberRepo := &mockMemberRepo{
		FindMemberByIDFn: func(ctx context.Context, memberID string) (*domain.Member, error) {
			return member, nil
		},
	}
	sessionRepo := &mockSessionRepo{
		CloseSessionFn: func(ctx context.Context, sessionID string, logoutAt time.Time) error {
			closedSession = sessionID
			return nil
		},
	}
	presenceRepo := &mockPresenceRepo{
		SetOfflineFn: func(ctx context.Context, memberID string, at time.Time) error {
			offlineMember = memberID
			return nil
		},
	}
	activityRepo := &mockActivityRepo{
		InsertActivityFn: func(ctx context.Context, a domain.Activity) error {
			activity = a
			return nil
		},
	}
	svc := services.NewAuthService(testAuthConfig(), memberRepo, sessionRepo, presenceRepo, activityRepo)

	err := svc.Logout(context.Background(), "m1", "s1")

	require.NoError(t, err)
	assert.Equal(t, "s1", closedSession)
	assert.Equal(t, "m1", offlineMember)
	assert.Equal(t, "cikis", activity.Action)
}

func TestGetMember_UnknownIDIsNotFound(t *testing.T) {
	svc := services.NewAuthService(testAuthConfig(), &mockMemberRepo{}, &mockSessionRepo{}, &mockPresenceRepo{}, &mockActivityRepo{})

	_, err := svc.GetMember(context.Background(), "ghost")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListActiveSessions_ReturnsOpenSessions(t *testing.T) {
	sessionRepo := &mockSessionRepo{
		ListActiveSessionsFn: func(ctx context.Context) ([]domain.Session, error) {
			return []domain.Session{{SessionID: "s1", MemberID: "m1", Active: true}}, nil
		},
	}
	svc := services.NewAuthService(testAuthConfig(), &mockMemberRepo{}, sessionRepo, &mockPresenceRepo{}, &mockActivityRepo{})

	sessions, err := svc.ListActiveSessions(context.Background())

	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "s1", sessions[0].SessionID)
	assert.True(t, sessions[0].Active)
}

func TestListActiveSessions_RepoErrorSurfaces(t *testing.T) {
	sessionRepo := &mockSessionRepo{
		ListActiveSessionsFn: func(ctx context.Context) ([]domain.Session, error) {
			return nil, assert.AnError
		},
	}
	svc := services.NewAuthService(testAuthConfig(), &mockMemberRepo{}, sessionRepo, &mockPresenceRepo{}, &mockActivityRepo{})

	_, err := svc.ListActiveSessions(context.Background())

	assert.Error(t, err)
}
