package dto

import "time"

// Quote is a normalized index quote from any upstream source.
type Quote struct {
	LastPrice     float64 `json:"last_price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"net_change"`
	Volume        int64   `json:"volume"`
	MarketStatus  string  `json:"market_status"`
}

// SentimentAnalysis is the result of AI or heuristic market analysis.
type SentimentAnalysis struct {
	Sentiment      string `json:"sentiment"`
	Recommendation string `json:"recommendation"`
	Reasoning      string `json:"reasoning"`
}

// MarketStatusResponse is the body of GET /api/market/status.
type MarketStatusResponse struct {
	Status    string    `json:"status"`
	IsOpen    bool      `json:"is_open"`
	Timestamp time.Time `json:"timestamp"`
}

// NSEIndexResponse is the NSE equity-stockIndices / allIndices payload.
type NSEIndexResponse struct {
	Data []NSEIndexRow `json:"data"`
}

// NSEIndexRow is a single index row from NSE. The two index endpoints name
// the percent-change field differently; both are mapped.
type NSEIndexRow struct {
	Index             string  `json:"index"`
	Last              float64 `json:"last"`
	Change            float64 `json:"change"`
	PChange           float64 `json:"pChange"`
	PercentChange     float64 `json:"percentChange"`
	TotalTradedVolume int64   `json:"totalTradedVolume"`
}

// NSEOptionChainResponse is the NSE option-chain-indices payload.
type NSEOptionChainResponse struct {
	Records struct {
		Data []NSEOptionRow `json:"data"`
	} `json:"records"`
}

// NSEOptionRow is one strike row of the NSE option chain.
type NSEOptionRow struct {
	StrikePrice float64       `json:"strikePrice"`
	CE          *NSEOptionLeg `json:"CE"`
	PE          *NSEOptionLeg `json:"PE"`
}

// NSEOptionLeg is one side (call or put) of an option chain row.
type NSEOptionLeg struct {
	LastPrice         float64 `json:"lastPrice"`
	TotalTradedVolume int64   `json:"totalTradedVolume"`
	ExpiryDate        string  `json:"expiryDate"`
}

// KiteQuoteResponse is the Kite Connect quote payload.
type KiteQuoteResponse struct {
	Status string               `json:"status"`
	Data   map[string]KiteQuote `json:"data"`
}

// KiteQuote is a single instrument quote from Kite Connect.
type KiteQuote struct {
	LastPrice float64 `json:"last_price"`
	NetChange float64 `json:"net_change"`
	Volume    int64   `json:"volume"`
	OHLC      struct {
		Open  float64 `json:"open"`
		High  float64 `json:"high"`
		Low   float64 `json:"low"`
		Close float64 `json:"close"`
	} `json:"ohlc"`
}
