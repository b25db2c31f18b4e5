package repository

import (
	"context"

	"nifinova/internal/dto"

	"github.com/piquette/finance-go/quote"
	"github.com/pkg/errors"
)

// niftyYahooSymbol is the Yahoo Finance ticker for the NIFTY 50 index.
const niftyYahooSymbol = "^NSEI"

// YahooRepository fetches index quotes from Yahoo Finance as a backup source.
type YahooRepository interface {
	GetNiftyQuote(ctx context.Context) (*dto.Quote, error)
}

// NewYahooRepository creates a Yahoo Finance backed quote repository.
func NewYahooRepository() YahooRepository {
	return &yahooRepository{}
}

type yahooRepository struct{}

// GetNiftyQuote fetches the ^NSEI quote.
func (r *yahooRepository) GetNiftyQuote(_ context.Context) (*dto.Quote, error) {
	q, err := quote.Get(niftyYahooSymbol)
	if err != nil {
		return nil, errors.Wrap(err, "fetch quote from Yahoo Finance")
	}
	if q == nil {
		return nil, errors.New("no quote data returned from Yahoo Finance")
	}

	return &dto.Quote{
		LastPrice:     q.RegularMarketPrice,
		Change:        q.RegularMarketChange,
		ChangePercent: q.RegularMarketChangePercent,
		Volume:        int64(q.RegularMarketVolume),
	}, nil
}
