package entity

import "time"

// StockPosition is an open option position in the demo portfolio. The schema
// exists for the portfolio endpoints; no order-entry flow populates it yet.
type StockPosition struct {
	ID           int64      `json:"id"`
	Symbol       string     `json:"symbol"`
	Type         SignalType `json:"type"`
	StrikePrice  float64    `json:"strike_price"`
	Quantity     int        `json:"quantity"`
	EntryPrice   float64    `json:"entry_price"`
	CurrentPrice float64    `json:"current_price"`
	PnL          float64    `json:"pnl"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
}
