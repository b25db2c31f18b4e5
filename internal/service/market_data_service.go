package service

import (
	"context"
	"math"

	"nifinova/internal/dto"
	"nifinova/internal/entity"
	"nifinova/internal/repository"
	"nifinova/pkg/common"
	"nifinova/pkg/logger"
	"nifinova/pkg/utils"
)

// MockBaselinePrice is the quote served when no upstream source has ever
// answered.
const MockBaselinePrice = 19845.30

// MarketDataService resolves index quotes and option chains through a chain
// of upstream sources, falling back to the last good value and finally to a
// fixed synthetic baseline. Callers never see an upstream failure.
type MarketDataService interface {
	GetNiftyQuote(ctx context.Context) *dto.Quote
	GetOptionsChain(ctx context.Context) []entity.OptionsData
}

// NewMarketDataService creates the market data accessor.
func NewMarketDataService(
	kiteRepo repository.KiteRepository,
	nseRepo repository.NSERepository,
	yahooRepo repository.YahooRepository,
	marketRepo repository.MarketRepository,
	statusSvc MarketStatusService,
	log *logger.Logger,
) MarketDataService {
	return &marketDataService{
		kiteRepo:   kiteRepo,
		nseRepo:    nseRepo,
		yahooRepo:  yahooRepo,
		marketRepo: marketRepo,
		statusSvc:  statusSvc,
		log:        log,
	}
}

type marketDataService struct {
	kiteRepo   repository.KiteRepository
	nseRepo    repository.NSERepository
	yahooRepo  repository.YahooRepository
	marketRepo repository.MarketRepository
	statusSvc  MarketStatusService
	log        *logger.Logger
}

// GetNiftyQuote returns the current NIFTY 50 quote. Source order: Kite (when
// configured and the market is open), NSE, Yahoo Finance, the last good
// upstream quote, and finally the fixed baseline.
func (s *marketDataService) GetNiftyQuote(ctx context.Context) *dto.Quote {
	status := s.statusSvc.GetMarketStatus()

	if s.kiteRepo.Enabled() && status == common.MarketStatusOpen {
		if quote, err := s.kiteRepo.GetNiftyQuote(ctx); err == nil {
			quote.MarketStatus = status
			s.rememberQuote(ctx, quote)
			return quote
		} else {
			s.log.WarnContext(ctx, "Kite quote failed, trying NSE", logger.ErrorField(err))
		}
	}

	if quote, err := s.nseRepo.GetNiftyQuote(ctx); err == nil {
		quote.MarketStatus = status
		s.rememberQuote(ctx, quote)
		return quote
	} else {
		s.log.WarnContext(ctx, "NSE quote failed, trying Yahoo Finance", logger.ErrorField(err))
	}

	if quote, err := s.yahooRepo.GetNiftyQuote(ctx); err == nil {
		quote.MarketStatus = status
		s.rememberQuote(ctx, quote)
		return quote
	} else {
		s.log.WarnContext(ctx, "Yahoo Finance quote failed, using stored data", logger.ErrorField(err))
	}

	if last, err := s.marketRepo.GetLastGoodQuote(ctx); err == nil {
		return &dto.Quote{
			LastPrice:     last.Price,
			Change:        last.Change,
			ChangePercent: last.ChangePercent,
			Volume:        last.Volume,
			MarketStatus:  status,
		}
	}

	s.log.InfoContext(ctx, "No upstream quote available, serving baseline",
		logger.Float64Field("baseline", MockBaselinePrice))
	return &dto.Quote{
		LastPrice:    MockBaselinePrice,
		MarketStatus: status,
	}
}

// GetOptionsChain returns the NIFTY option chain. When the market is closed
// or every upstream fails, the stored chain is served; with nothing stored a
// synthetic ladder is generated around the current quote.
func (s *marketDataService) GetOptionsChain(ctx context.Context) []entity.OptionsData {
	if s.statusSvc.GetMarketStatus() != common.MarketStatusOpen {
		if chain, err := s.marketRepo.GetOptionsChain(ctx); err == nil {
			return chain
		}
	}

	if chain, err := s.nseRepo.GetOptionsChain(ctx); err == nil {
		if err := s.marketRepo.SetOptionsChain(ctx, chain); err != nil {
			s.log.ErrorContext(ctx, "Failed to store option chain", logger.ErrorField(err))
		}
		return chain
	} else {
		s.log.WarnContext(ctx, "NSE option chain failed, using stored data", logger.ErrorField(err))
	}

	if chain, err := s.marketRepo.GetOptionsChain(ctx); err == nil {
		return chain
	}

	base := MockBaselinePrice
	if last, err := s.marketRepo.GetLastGoodQuote(ctx); err == nil {
		base = last.Price
	}
	chain := BuildSyntheticChain(base)
	if err := s.marketRepo.SetOptionsChain(ctx, chain); err != nil {
		s.log.ErrorContext(ctx, "Failed to store synthetic option chain", logger.ErrorField(err))
	}
	return chain
}

func (s *marketDataService) rememberQuote(ctx context.Context, quote *dto.Quote) {
	snapshot := &entity.MarketData{
		Symbol:        common.SymbolNifty50,
		Price:         quote.LastPrice,
		Change:        quote.Change,
		ChangePercent: quote.ChangePercent,
		Volume:        quote.Volume,
		LastUpdated:   utils.TimeNowIST(),
		MarketStatus:  quote.MarketStatus,
	}
	if err := s.marketRepo.SetLastGoodQuote(ctx, snapshot); err != nil {
		s.log.ErrorContext(ctx, "Failed to store last good quote", logger.ErrorField(err))
	}
}

// BuildMarketSnapshot assembles the dashboard snapshot from a quote and its
// sentiment analysis.
func BuildMarketSnapshot(quote *dto.Quote, sentiment *dto.SentimentAnalysis) *entity.MarketData {
	return &entity.MarketData{
		Symbol:        common.SymbolNifty50,
		Price:         quote.LastPrice,
		Change:        quote.Change,
		ChangePercent: quote.ChangePercent,
		Volume:        quote.Volume,
		LastUpdated:   utils.TimeNowIST(),
		MarketStatus:  quote.MarketStatus,
		Sentiment:     sentiment.Sentiment,
		FlashMessage:  FormatFlashMessage(sentiment.Recommendation, quote.MarketStatus),
	}
}

// BuildSyntheticChain generates a five-strike option ladder around the base
// price rounded to the nearest 50. Premiums decay with distance from the
// base so the ladder has a plausible shape.
func BuildSyntheticChain(basePrice float64) []entity.OptionsData {
	baseStrike := math.Round(basePrice/50) * 50
	offsets := []float64{-100, -50, 0, 50, 100}
	expiry := utils.NextThursday(utils.TimeNowIST()).Format("2006-01-02")

	chain := make([]entity.OptionsData, 0, len(offsets))
	for _, offset := range offsets {
		strike := baseStrike + offset
		distance := math.Abs(strike - basePrice)
		chain = append(chain, entity.OptionsData{
			StrikePrice: strike,
			CallLTP:     math.Max(5, 100-distance*2),
			PutLTP:      math.Max(5, 20+distance*1.5),
			ExpiryDate:  expiry,
		})
	}
	return chain
}
