package repositories

import (
	"context"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
)

// RateRepositoryFacade defines persistence operations for board rates.
// Saves are wholesale: the panel submits the full rate set, rows missing from
// the submitted set are reconciled away with DeleteRatesNotIn.
type RateRepositoryFacade interface {
	ListRates(ctx context.Context) ([]domain.Rate, error)
	UpsertRates(ctx context.Context, rates []domain.Rate) error
	DeleteRatesNotIn(ctx context.Context, keepIDs []string) error
}

// TickerRepositoryFacade defines persistence operations for ticker items.
type TickerRepositoryFacade interface {
	ListTickerItems(ctx context.Context) ([]domain.TickerItem, error)
	UpsertTickerItems(ctx context.Context, items []domain.TickerItem) error
	DeleteTickerItemsNotIn(ctx context.Context, keepIDs []string) error
}
