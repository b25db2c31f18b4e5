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
	"nifinova/pkg/logger"

	"github.com/pkg/errors"
)

const kiteNiftyInstrument = "NSE:NIFTY 50"

// KiteRepository fetches live quotes from the Kite Connect API. It is only
// consulted when both the API key and access token are configured.
type KiteRepository interface {
	Enabled() bool
	GetNiftyQuote(ctx context.Context) (*dto.Quote, error)
}

// NewKiteRepository creates a Kite Connect quote repository.
func NewKiteRepository(cfg *config.Config, log *logger.Logger) KiteRepository {
	return &kiteRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type kiteRepository struct {
	cfg        *config.Config
	log        *logger.Logger
	httpClient *http.Client
}

// Enabled reports whether Kite credentials are configured.
func (r *kiteRepository) Enabled() bool {
	return r.cfg.MarketData.KiteAPIKey != "" && r.cfg.MarketData.KiteAccessToken != ""
}

// GetNiftyQuote fetches the NIFTY 50 quote from Kite Connect.
func (r *kiteRepository) GetNiftyQuote(ctx context.Context) (*dto.Quote, error) {
	url := r.cfg.MarketData.KiteBaseURL + "/quote?i=NSE:NIFTY%2050"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create Kite request")
	}
	req.Header.Set("Authorization", fmt.Sprintf("token %s:%s", r.cfg.MarketData.KiteAPIKey, r.cfg.MarketData.KiteAccessToken))
	req.Header.Set("X-Kite-Version", "3")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send Kite request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected Kite status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read Kite response")
	}

	var response dto.KiteQuoteResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "decode Kite response")
	}

	q, ok := response.Data[kiteNiftyInstrument]
	if !ok {
		return nil, errors.New("NIFTY 50 not present in Kite response")
	}

	changePercent := 0.0
	if prev := q.LastPrice - q.NetChange; prev != 0 {
		changePercent = q.NetChange / prev * 100
	}

	return &dto.Quote{
		LastPrice:     q.LastPrice,
		Change:        q.NetChange,
		ChangePercent: changePercent,
		Volume:        q.Volume,
	}, nil
}
