package dto

import (
	"time"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
)

// HistoryLogResponse is the wire shape of one price-history entry.
type HistoryLogResponse struct {
	HistoryID string    `json:"historyID"`
	ItemType  string    `json:"itemType"`
	ItemName  string    `json:"itemName"`
	OldBuy    string    `json:"oldBuy,omitempty"`
	NewBuy    string    `json:"newBuy,omitempty"`
	OldSell   string    `json:"oldSell,omitempty"`
	NewSell   string    `json:"newSell,omitempty"`
	OldValue  string    `json:"oldValue,omitempty"`
	NewValue  string    `json:"newValue,omitempty"`
	ActorName string    `json:"actorName"`
	ActorRole string    `json:"actorRole"`
	GroupTag  string    `json:"groupTag,omitempty"`
	Source    string    `json:"source"`
	BatchID   string    `json:"batchID"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToHistoryLogResponse maps one history entry.
func ToHistoryLogResponse(h *domain.HistoryLog) HistoryLogResponse {
	return HistoryLogResponse{
		HistoryID: h.HistoryID,
		ItemType:  string(h.ItemType),
		ItemName:  h.ItemName,
		OldBuy:    h.OldBuy,
		NewBuy:    h.NewBuy,
		OldSell:   h.OldSell,
		NewSell:   h.NewSell,
		OldValue:  h.OldValue,
		NewValue:  h.NewValue,
		ActorName: h.ActorName,
		ActorRole: h.ActorRole,
		GroupTag:  h.GroupTag,
		Source:    string(h.Source),
		BatchID:   h.BatchID,
		CreatedAt: h.CreatedAt,
	}
}
