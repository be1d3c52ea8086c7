package services

import (
	"context"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
)

// HistorySvcFacade reads and clears the price history and activity feeds.
type HistorySvcFacade interface {
	ListHistory(ctx context.Context, limit, offset int) ([]domain.HistoryLog, error)
	ClearHistory(ctx context.Context, actor *domain.Member) error
	ListActivities(ctx context.Context, limit, offset int) ([]domain.Activity, error)
}
