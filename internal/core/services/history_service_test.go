package services_test

import (
	"context"
	"testing"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/apperrors"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearHistory_RequiresAdmin(t *testing.T) {
	svc := services.NewHistoryService(&mockHistoryRepo{}, &mockActivityRepo{})

	assert.ErrorIs(t, svc.ClearHistory(context.Background(), nil), apperrors.ErrForbidden)
	assert.ErrorIs(t, svc.ClearHistory(context.Background(), &domain.Member{Role: domain.RoleManager}), apperrors.ErrForbidden)
}

func TestClearHistory_WritesActivityLine(t *testing.T) {
	cleared := false
	historyRepo := &mockHistoryRepo{
		ClearHistoryFn: func(ctx context.Context) error {
			cleared = true
			return nil
		},
	}
	var activity domain.Activity
	activityRepo := &mockActivityRepo{
		InsertActivityFn: func(ctx context.Context, a domain.Activity) error {
			activity = a
			return nil
		},
	}
	svc := services.NewHistoryService(historyRepo, activityRepo)
	actor := &domain.Member{MemberID: "m1", Name: "Admin", Role: domain.RoleAdmin}

	err := svc.ClearHistory(context.Background(), actor)

	require.NoError(t, err)
	assert.True(t, cleared)
	assert.Equal(t, "gecmis_temizleme", activity.Action)
	assert.Equal(t, "m1", activity.MemberID)
}

func TestClearHistory_RepoErrorSurfaces(t *testing.T) {
	historyRepo := &mockHistoryRepo{
		ClearHistoryFn: func(ctx context.Context) error {
			return assert.AnError
		},
	}
	svc := services.NewHistoryService(historyRepo, &mockActivityRepo{})
	actor := &domain.Member{MemberID: "m1", Role: domain.RoleAdmin}

	assert.Error(t, svc.ClearHistory(context.Background(), actor))
}
