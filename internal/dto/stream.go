package dto

import "nifinova/internal/entity"

// MarketUpdate is pushed to websocket clients after every generator cycle.
type MarketUpdate struct {
	NiftyData    *entity.MarketData     `json:"nifty_data"`
	NewSignals   []entity.TradingSignal `json:"new_signals"`
	OptionsChain []entity.OptionsData   `json:"options_chain"`
}
