package http

import (
	"net/http"

	"nifinova/internal/dto"
	"nifinova/internal/repository"
	"nifinova/internal/service"
	"nifinova/pkg/common"
	"nifinova/pkg/logger"
	"nifinova/pkg/utils"

	"github.com/labstack/echo/v4"
)

// demoSuccessRate is the historical win rate shown on the dashboard header.
// No trade ledger backs it yet.
const demoSuccessRate = 74.5

// MarketHandler handles HTTP requests for market data and the dashboard
// overview.
type MarketHandler struct {
	marketDataService service.MarketDataService
	statusService     service.MarketStatusService
	sentimentService  service.SentimentService
	portfolioService  service.PortfolioService
	marketRepo        repository.MarketRepository
	signalRepo        repository.SignalRepository
	subscriberRepo    repository.SubscriberRepository
	logger            *logger.Logger
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(
	marketDataService service.MarketDataService,
	statusService service.MarketStatusService,
	sentimentService service.SentimentService,
	portfolioService service.PortfolioService,
	marketRepo repository.MarketRepository,
	signalRepo repository.SignalRepository,
	subscriberRepo repository.SubscriberRepository,
	logger *logger.Logger,
) *MarketHandler {
	return &MarketHandler{
		marketDataService: marketDataService,
		statusService:     statusService,
		sentimentService:  sentimentService,
		portfolioService:  portfolioService,
		marketRepo:        marketRepo,
		signalRepo:        signalRepo,
		subscriberRepo:    subscriberRepo,
		logger:            logger,
	}
}

// RegisterRoutes registers the market routes to the Echo group.
func (h *MarketHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/overview", h.GetOverview)
	g.GET("/nifty", h.GetNifty)
	g.GET("/options-chain", h.GetOptionsChain)
	g.GET("/status", h.GetStatus)
}

// GetOverview godoc
// @Summary Dashboard overview
// @Description Get the latest market snapshot with signal, subscriber and portfolio counters
// @Tags market
// @Produce  json
// @Success 200 {object} dto.MarketOverviewResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /market/overview [get]
func (h *MarketHandler) GetOverview(c echo.Context) error {
	ctx := c.Request().Context()

	snapshot, err := h.marketRepo.GetSnapshot(ctx, common.SymbolNifty50)
	if err != nil {
		// First request before the generator has run: build the snapshot
		// inline so the dashboard never starts empty.
		quote := h.marketDataService.GetNiftyQuote(ctx)
		chain := h.marketDataService.GetOptionsChain(ctx)
		sentiment := h.sentimentService.AnalyzeMarket(ctx, quote, chain)

		snapshot = service.BuildMarketSnapshot(quote, sentiment)
		if err := h.marketRepo.SetSnapshot(ctx, snapshot); err != nil {
			h.logger.Error("Failed to store market snapshot", logger.ErrorField(err))
		}
	}

	activeSignals, err := h.signalRepo.CountActive(ctx)
	if err != nil {
		h.logger.Error("Failed to count active signals", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to build overview"})
	}
	subscribers, err := h.subscriberRepo.CountActive(ctx)
	if err != nil {
		h.logger.Error("Failed to count subscribers", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to build overview"})
	}
	summary, err := h.portfolioService.GetSummary(ctx)
	if err != nil {
		h.logger.Error("Failed to build portfolio summary", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to build overview"})
	}

	return c.JSON(http.StatusOK, dto.MarketOverviewResponse{
		Nifty50:       snapshot,
		ActiveSignals: activeSignals,
		SuccessRate:   demoSuccessRate,
		WhatsAppUsers: subscribers,
		Portfolio:     *summary,
	})
}

// GetNifty godoc
// @Summary Current NIFTY 50 quote
// @Description Get the current index quote, falling back through the configured sources
// @Tags market
// @Produce  json
// @Success 200 {object} dto.Quote
// @Router /market/nifty [get]
func (h *MarketHandler) GetNifty(c echo.Context) error {
	return c.JSON(http.StatusOK, h.marketDataService.GetNiftyQuote(c.Request().Context()))
}

// GetOptionsChain godoc
// @Summary NIFTY option chain
// @Description Get the current option chain, synthetic when no upstream data is available
// @Tags market
// @Produce  json
// @Success 200 {array} entity.OptionsData
// @Router /market/options-chain [get]
func (h *MarketHandler) GetOptionsChain(c echo.Context) error {
	return c.JSON(http.StatusOK, h.marketDataService.GetOptionsChain(c.Request().Context()))
}

// GetStatus godoc
// @Summary Market status
// @Description Get the current market session status in IST
// @Tags market
// @Produce  json
// @Success 200 {object} dto.MarketStatusResponse
// @Router /market/status [get]
func (h *MarketHandler) GetStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.MarketStatusResponse{
		Status:    h.statusService.GetMarketStatus(),
		IsOpen:    h.statusService.IsMarketOpen(),
		Timestamp: utils.TimeNowIST(),
	})
}
