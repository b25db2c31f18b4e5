package service

import (
	"time"

	"nifinova/pkg/common"
	"nifinova/pkg/utils"
)

// MarketStatusService reports the NSE trading session state.
type MarketStatusService interface {
	IsMarketOpen() bool
	GetMarketStatus() string
}

// NewMarketStatusService creates a market status service using the real IST
// clock.
func NewMarketStatusService() MarketStatusService {
	return &marketStatusService{
		now: utils.TimeNowIST,
	}
}

type marketStatusService struct {
	now func() time.Time
}

// IsMarketOpen reports whether the NSE cash session is currently open
// (weekdays 09:15 to 15:30 IST).
func (s *marketStatusService) IsMarketOpen() bool {
	now := s.now()

	if now.Weekday() == time.Saturday || now.Weekday() == time.Sunday {
		return false
	}

	open := time.Date(now.Year(), now.Month(), now.Day(), 9, 15, 0, 0, now.Location())
	closeT := time.Date(now.Year(), now.Month(), now.Day(), 15, 30, 0, 0, now.Location())

	return !now.Before(open) && !now.After(closeT)
}

// GetMarketStatus returns OPEN, PRE_MARKET, CLOSED, or WEEKEND.
func (s *marketStatusService) GetMarketStatus() string {
	if s.IsMarketOpen() {
		return common.MarketStatusOpen
	}

	now := s.now()
	if now.Weekday() == time.Saturday || now.Weekday() == time.Sunday {
		return common.MarketStatusWeekend
	}
	if now.Hour() < 9 || (now.Hour() == 9 && now.Minute() < 15) {
		return common.MarketStatusPreMarket
	}
	return common.MarketStatusClosed
}
