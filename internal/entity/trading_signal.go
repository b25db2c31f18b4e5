package entity

import "time"

// SignalType is the direction of a generated option signal.
type SignalType string

const (
	SignalCall SignalType = "CALL"
	SignalPut  SignalType = "PUT"
)

// TradingSignal is a generated option trade recommendation. Signals are
// created only by the generator and, apart from the WhatsAppSent flag, are
// never mutated afterwards.
type TradingSignal struct {
	ID           int64      `json:"id"`
	Type         SignalType `json:"type"`
	StrikePrice  float64    `json:"strike_price"`
	TargetPrice  float64    `json:"target_price"`
	StopLoss     float64    `json:"stop_loss"`
	Confidence   int        `json:"confidence"`
	Reasoning    string     `json:"reasoning"`
	ExpiryDate   string     `json:"expiry_date"`
	IsActive     bool       `json:"is_active"`
	WhatsAppSent bool       `json:"whatsapp_sent"`
	CreatedAt    time.Time  `json:"created_at"`
}
