package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nifinova/internal/config"
	"nifinova/internal/dto"
	"nifinova/internal/entity"
	"nifinova/internal/repository"
	"nifinova/internal/service"
	"nifinova/pkg/common"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMarketDataService struct {
	quote *dto.Quote
	chain []entity.OptionsData
}

func (s *stubMarketDataService) GetNiftyQuote(context.Context) *dto.Quote { return s.quote }
func (s *stubMarketDataService) GetOptionsChain(context.Context) []entity.OptionsData {
	return s.chain
}

func newTestMarketHandler(t *testing.T, quote *dto.Quote) (*MarketHandler, repository.SubscriberRepository) {
	t.Helper()
	log := newTestLogger(t)

	cfg := &config.Config{}
	cfg.Gemini.MaxRequestPerMinute = 10

	subscriberRepo := repository.NewSubscriberRepository()
	h := NewMarketHandler(
		&stubMarketDataService{quote: quote, chain: service.BuildSyntheticChain(quote.LastPrice)},
		service.NewMarketStatusService(),
		service.NewSentimentService(cfg, log, nil),
		service.NewPortfolioService(repository.NewPositionRepository()),
		repository.NewMarketRepository(),
		repository.NewSignalRepository(),
		subscriberRepo,
		log,
	)
	return h, subscriberRepo
}

func TestMarketHandler_GetNiftyServesBaseline(t *testing.T) {
	h, _ := newTestMarketHandler(t, &dto.Quote{
		LastPrice:    service.MockBaselinePrice,
		MarketStatus: common.MarketStatusClosed,
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/market/nifty", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.GetNifty(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var quote dto.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	assert.Equal(t, service.MockBaselinePrice, quote.LastPrice)
}

func TestMarketHandler_OverviewBuildsInitialSnapshot(t *testing.T) {
	h, subscriberRepo := newTestMarketHandler(t, &dto.Quote{
		LastPrice:     19845.30,
		Change:        120,
		ChangePercent: 0.61,
		Volume:        1300000,
		MarketStatus:  common.MarketStatusOpen,
	})

	ctx := context.Background()
	_, err := subscriberRepo.Create(ctx, "+919876543210")
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/market/overview", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.GetOverview(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.MarketOverviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Nifty50)
	assert.Equal(t, 19845.30, resp.Nifty50.Price)
	assert.NotEmpty(t, resp.Nifty50.Sentiment)
	assert.Equal(t, 0, resp.ActiveSignals)
	assert.Equal(t, 1, resp.WhatsAppUsers)
	assert.Equal(t, 74.5, resp.SuccessRate)
	assert.Zero(t, resp.Portfolio.ActivePositions)
}

func TestMarketHandler_GetStatus(t *testing.T) {
	h, _ := newTestMarketHandler(t, &dto.Quote{LastPrice: service.MockBaselinePrice})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/market/status", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.GetStatus(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.MarketStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, []string{
		common.MarketStatusOpen,
		common.MarketStatusClosed,
		common.MarketStatusPreMarket,
		common.MarketStatusWeekend,
	}, resp.Status)
	assert.Equal(t, resp.Status == common.MarketStatusOpen, resp.IsOpen)
}
