package repositories

import (
	"context"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
)

// HistoryRepositoryFacade defines persistence for the append-only price history.
type HistoryRepositoryFacade interface {
	InsertHistoryBatch(ctx context.Context, entries []domain.HistoryLog) error
	ListHistory(ctx context.Context, limit, offset int) ([]domain.HistoryLog, error)
	ClearHistory(ctx context.Context) error
}

// ActivityRepositoryFacade defines persistence for the audit activity feed.
type ActivityRepositoryFacade interface {
	InsertActivity(ctx context.Context, activity domain.Activity) error
	InsertActivityBatch(ctx context.Context, activities []domain.Activity) error
	ListActivities(ctx context.Context, limit, offset int) ([]domain.Activity, error)
}
