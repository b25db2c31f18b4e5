package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"nifinova/internal/config"
	"nifinova/internal/dto"
	"nifinova/internal/entity"
	"nifinova/pkg/logger"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// NSERepository fetches NIFTY index and option chain data from the public
// NSE endpoints.
type NSERepository interface {
	GetNiftyQuote(ctx context.Context) (*dto.Quote, error)
	GetOptionsChain(ctx context.Context) ([]entity.OptionsData, error)
}

type nseRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewNSERepository creates a rate-limited NSE client.
func NewNSERepository(cfg *config.Config, log *logger.Logger) NSERepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.MarketData.MaxRequestPerMinute)
	return &nseRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

// GetNiftyQuote fetches the NIFTY 50 quote, trying the stock-indices endpoint
// first and the all-indices endpoint second.
func (r *nseRepository) GetNiftyQuote(ctx context.Context) (*dto.Quote, error) {
	body, err := r.sendRequest(ctx, r.cfg.MarketData.NSEBaseURL+"/equity-stockIndices?index=NIFTY%2050")
	if err == nil {
		var response dto.NSEIndexResponse
		if err := json.Unmarshal(body, &response); err == nil && len(response.Data) > 0 {
			row := response.Data[0]
			return &dto.Quote{
				LastPrice:     row.Last,
				Change:        row.Change,
				ChangePercent: row.PChange,
				Volume:        row.TotalTradedVolume,
			}, nil
		}
	} else {
		r.log.WarnContext(ctx, "Primary NSE endpoint failed", logger.ErrorField(err))
	}

	body, err = r.sendRequest(ctx, r.cfg.MarketData.NSEBaseURL+"/allIndices")
	if err != nil {
		return nil, errors.Wrap(err, "fetch NSE all-indices")
	}

	var response dto.NSEIndexResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "decode NSE all-indices response")
	}
	for _, row := range response.Data {
		if row.Index == "NIFTY 50" {
			return &dto.Quote{
				LastPrice:     row.Last,
				Change:        row.Change,
				ChangePercent: row.PercentChange,
				Volume:        row.TotalTradedVolume,
			}, nil
		}
	}

	return nil, errors.New("NIFTY 50 not present in NSE all-indices response")
}

// GetOptionsChain fetches the first ten strikes of the NIFTY option chain.
func (r *nseRepository) GetOptionsChain(ctx context.Context) ([]entity.OptionsData, error) {
	body, err := r.sendRequest(ctx, r.cfg.MarketData.NSEBaseURL+"/option-chain-indices?symbol=NIFTY")
	if err != nil {
		return nil, errors.Wrap(err, "fetch NSE option chain")
	}

	var response dto.NSEOptionChainResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "decode NSE option chain response")
	}

	var chain []entity.OptionsData
	for _, row := range response.Records.Data {
		if len(chain) >= 10 {
			break
		}
		option := entity.OptionsData{StrikePrice: row.StrikePrice}
		if row.CE != nil {
			option.CallLTP = row.CE.LastPrice
			option.CallVolume = row.CE.TotalTradedVolume
			option.ExpiryDate = row.CE.ExpiryDate
		}
		if row.PE != nil {
			option.PutLTP = row.PE.LastPrice
			option.PutVolume = row.PE.TotalTradedVolume
			if option.ExpiryDate == "" {
				option.ExpiryDate = row.PE.ExpiryDate
			}
		}
		chain = append(chain, option)
	}

	if len(chain) == 0 {
		return nil, errors.New("NSE option chain response contained no strikes")
	}
	return chain, nil
}

func (r *nseRepository) sendRequest(ctx context.Context, url string) ([]byte, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "wait for NSE request limit")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create NSE request")
	}
	// NSE rejects requests without browser-like headers.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Referer", "https://www.nseindia.com/")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send NSE request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected NSE status code %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
