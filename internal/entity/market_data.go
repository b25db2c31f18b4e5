package entity

import "time"

// MarketData is the latest snapshot for an index symbol, overwritten in place
// on every refresh.
type MarketData struct {
	Symbol        string    `json:"symbol"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"change_percent"`
	Volume        int64     `json:"volume"`
	LastUpdated   time.Time `json:"last_updated"`
	MarketStatus  string    `json:"market_status"`
	Sentiment     string    `json:"sentiment"`
	FlashMessage  string    `json:"flash_message"`
}
