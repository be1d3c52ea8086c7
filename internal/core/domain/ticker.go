package domain

// TickerItem is one entry of the scrolling ticker strip below the board.
type TickerItem struct {
	ItemID   string `json:"itemID"`
	Name     string `json:"name"`
	Value    string `json:"value"`
	Change   string `json:"change,omitempty"`
	Up       bool   `json:"up"`
	Visible  bool   `json:"visible"`
	Position int    `json:"position"`
}
