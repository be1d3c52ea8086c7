package domain

import "time"

// HistoryItemType tells which board entity a history entry belongs to.
type HistoryItemType string

const (
	HistoryItemRate   HistoryItemType = "rate"
	HistoryItemTicker HistoryItemType = "ticker"
)

// ChangeSource records who moved the price.
type ChangeSource string

const (
	SourceManual ChangeSource = "manuel"
	SourceAPI    ChangeSource = "api_otomatik"
)

// HistoryLog is one immutable record of a price change. Rate entries carry
// the buy/sell split; ticker entries carry OldValue/NewValue only. BatchID
// links every entry written from the same save action.
type HistoryLog struct {
	HistoryID string          `json:"historyID"`
	ItemType  HistoryItemType `json:"itemType"`
	ItemName  string          `json:"itemName"`
	OldBuy    string          `json:"oldBuy,omitempty"`
	NewBuy    string          `json:"newBuy,omitempty"`
	OldSell   string          `json:"oldSell,omitempty"`
	NewSell   string          `json:"newSell,omitempty"`
	OldValue  string          `json:"oldValue,omitempty"`
	NewValue  string          `json:"newValue,omitempty"`
	ActorName string          `json:"actorName"`
	ActorRole string          `json:"actorRole"`
	GroupTag  string          `json:"groupTag"`
	Source    ChangeSource    `json:"source"`
	BatchID   string          `json:"batchID"`
	CreatedAt time.Time       `json:"createdAt"`
}
