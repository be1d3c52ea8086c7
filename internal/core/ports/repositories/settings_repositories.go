package repositories

import (
	"context"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
)

// SettingsRepositoryFacade defines persistence for board-wide settings rows.
type SettingsRepositoryFacade interface {
	ListSettings(ctx context.Context) ([]domain.Setting, error)
	UpsertSetting(ctx context.Context, setting domain.Setting) error
}
