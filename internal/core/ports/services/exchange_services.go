package services

import (
	"context"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
)

// ExchangeSvcFacade caches and writes through the board's rates, ticker items
// and settings, deriving history/activity records from each save's delta.
type ExchangeSvcFacade interface {
	ListRates(ctx context.Context) ([]domain.Rate, error)
	// UpdateRates replaces the full rate set: rows missing from newRates are
	// deleted, the rest upserted with fresh positions. Every detected buy/sell
	// change yields one history entry (and one activity entry when actor is
	// non-nil), all sharing a single batch id, which is returned.
	UpdateRates(ctx context.Context, actor *domain.Member, newRates []domain.Rate, source domain.ChangeSource) (string, error)

	ListTickerItems(ctx context.Context) ([]domain.TickerItem, error)
	UpdateTickerItems(ctx context.Context, actor *domain.Member, newItems []domain.TickerItem, source domain.ChangeSource) (string, error)

	ListSettings(ctx context.Context) ([]domain.Setting, error)
	SaveSetting(ctx context.Context, actor *domain.Member, key, value string) error
}
