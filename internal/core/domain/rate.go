package domain

// RateCategory separates precious-metal rows from foreign-currency rows on the board.
type RateCategory string

const (
	RateCategoryGold     RateCategory = "gold"
	RateCategoryCurrency RateCategory = "currency"
)

// Rate is one priced row on the exchange board. Buy and Sell keep the
// operator-entered text so formatting survives the round trip to the panel;
// numeric interpretation happens only when a change needs to be diffed.
type Rate struct {
	RateID   string       `json:"rateID"`
	Name     string       `json:"name"`
	Buy      string       `json:"buy"`
	Sell     string       `json:"sell"`
	Category RateCategory `json:"category"`
	Change   string       `json:"change,omitempty"` // display-only percent change
	Visible  bool         `json:"visible"`
	Position int          `json:"position"`
}
