package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LiveRates is the latest spot snapshot pulled from the external finance feed:
// gram gold and ounce, each with a percent change.
type LiveRates struct {
	Gold         decimal.Decimal `json:"gold"`
	GoldChange   decimal.Decimal `json:"goldChange"`
	Ounce        decimal.Decimal `json:"ounce"`
	OunceChange  decimal.Decimal `json:"ounceChange"`
	FetchedAt    time.Time       `json:"fetchedAt"`
	FromFallback bool            `json:"fromFallback"`
}
