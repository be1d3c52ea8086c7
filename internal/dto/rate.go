package dto

import "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"

// SaveRateRequest is one row of the panel's wholesale rate save.
type SaveRateRequest struct {
	RateID   string `json:"rateID"`
	Name     string `json:"name" binding:"required"`
	Buy      string `json:"buy" binding:"required"`
	Sell     string `json:"sell" binding:"required"`
	Category string `json:"category" binding:"required,oneof=gold currency"`
	Change   string `json:"change"`
	Visible  bool   `json:"visible"`
}

// UpdateRatesRequest replaces the full rate set in one save.
type UpdateRatesRequest struct {
	Rates []SaveRateRequest `json:"rates" binding:"required,dive"`
}

// SaveTickerItemRequest is one row of the ticker save.
type SaveTickerItemRequest struct {
	ItemID  string `json:"itemID"`
	Name    string `json:"name" binding:"required"`
	Value   string `json:"value" binding:"required"`
	Change  string `json:"change"`
	Up      bool   `json:"up"`
	Visible bool   `json:"visible"`
}

// UpdateTickerItemsRequest replaces the full ticker set in one save.
type UpdateTickerItemsRequest struct {
	Items []SaveTickerItemRequest `json:"items" binding:"required,dive"`
}

// SaveBatchResponse reports a completed wholesale save.
type SaveBatchResponse struct {
	Success bool   `json:"success"`
	BatchID string `json:"batchID,omitempty"`
}

// ToRate maps one save row onto the domain shape; position is assigned by the
// service from the row's place in the submitted set.
func (r SaveRateRequest) ToRate(position int) domain.Rate {
	return domain.Rate{
		RateID:   r.RateID,
		Name:     r.Name,
		Buy:      r.Buy,
		Sell:     r.Sell,
		Category: domain.RateCategory(r.Category),
		Change:   r.Change,
		Visible:  r.Visible,
		Position: position,
	}
}

// ToTickerItem maps one ticker save row onto the domain shape.
func (r SaveTickerItemRequest) ToTickerItem(position int) domain.TickerItem {
	return domain.TickerItem{
		ItemID:   r.ItemID,
		Name:     r.Name,
		Value:    r.Value,
		Change:   r.Change,
		Up:       r.Up,
		Visible:  r.Visible,
		Position: position,
	}
}
