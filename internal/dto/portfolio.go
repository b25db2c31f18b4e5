package dto

import "nifinova/internal/entity"

// PortfolioSummary aggregates the active positions in the demo portfolio.
type PortfolioSummary struct {
	TotalPnL        float64 `json:"total_pnl"`
	InvestedValue   float64 `json:"invested_value"`
	CurrentValue    float64 `json:"current_value"`
	ActivePositions int     `json:"active_positions"`
}

// MarketOverviewResponse is the body of GET /api/market/overview.
type MarketOverviewResponse struct {
	Nifty50       *entity.MarketData `json:"nifty50"`
	ActiveSignals int                `json:"active_signals"`
	SuccessRate   float64            `json:"success_rate"`
	WhatsAppUsers int                `json:"whatsapp_users"`
	Portfolio     PortfolioSummary   `json:"portfolio"`
}
