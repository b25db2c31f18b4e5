package repository

import (
	"context"

	"nifinova/internal/entity"

	gocache "github.com/patrickmn/go-cache"
)

const (
	quoteKeyPrefix   = "quote:"
	lastGoodQuoteKey = "quote:last_good"
	optionsChainKey  = "options_chain"
)

// MarketRepository holds the latest market snapshot, option chain, and the
// last quote successfully fetched from an upstream source. Entries never
// expire; each write overwrites the previous value in place.
type MarketRepository interface {
	SetSnapshot(ctx context.Context, data *entity.MarketData) error
	GetSnapshot(ctx context.Context, symbol string) (*entity.MarketData, error)
	SetOptionsChain(ctx context.Context, chain []entity.OptionsData) error
	GetOptionsChain(ctx context.Context) ([]entity.OptionsData, error)
	SetLastGoodQuote(ctx context.Context, quote *entity.MarketData) error
	GetLastGoodQuote(ctx context.Context) (*entity.MarketData, error)
}

// NewMarketRepository creates a cache-backed market data repository.
func NewMarketRepository() MarketRepository {
	return &marketRepository{cache: gocache.New(gocache.NoExpiration, 0)}
}

type marketRepository struct {
	cache *gocache.Cache
}

// SetSnapshot stores the latest market snapshot for its symbol.
func (r *marketRepository) SetSnapshot(_ context.Context, data *entity.MarketData) error {
	r.cache.Set(quoteKeyPrefix+data.Symbol, *data, gocache.NoExpiration)
	return nil
}

// GetSnapshot retrieves the latest market snapshot for a symbol.
func (r *marketRepository) GetSnapshot(_ context.Context, symbol string) (*entity.MarketData, error) {
	v, ok := r.cache.Get(quoteKeyPrefix + symbol)
	if !ok {
		return nil, ErrNotFound
	}
	data := v.(entity.MarketData)
	return &data, nil
}

// SetOptionsChain stores the latest option chain.
func (r *marketRepository) SetOptionsChain(_ context.Context, chain []entity.OptionsData) error {
	r.cache.Set(optionsChainKey, chain, gocache.NoExpiration)
	return nil
}

// GetOptionsChain retrieves the stored option chain.
func (r *marketRepository) GetOptionsChain(_ context.Context) ([]entity.OptionsData, error) {
	v, ok := r.cache.Get(optionsChainKey)
	if !ok {
		return nil, ErrNotFound
	}
	return v.([]entity.OptionsData), nil
}

// SetLastGoodQuote remembers the most recent quote that came from a live
// upstream, so closed-market and failure paths can serve real numbers.
func (r *marketRepository) SetLastGoodQuote(_ context.Context, quote *entity.MarketData) error {
	r.cache.Set(lastGoodQuoteKey, *quote, gocache.NoExpiration)
	return nil
}

// GetLastGoodQuote retrieves the last upstream quote, if any was ever fetched.
func (r *marketRepository) GetLastGoodQuote(_ context.Context) (*entity.MarketData, error) {
	v, ok := r.cache.Get(lastGoodQuoteKey)
	if !ok {
		return nil, ErrNotFound
	}
	quote := v.(entity.MarketData)
	return &quote, nil
}
