package http

import (
	"net/http"

	"nifinova/internal/dto"
	"nifinova/internal/service"
	"nifinova/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PortfolioHandler handles HTTP requests for the demo portfolio.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
	logger           *logger.Logger
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService service.PortfolioService, logger *logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService, logger: logger}
}

// RegisterRoutes registers the portfolio routes to the Echo group.
func (h *PortfolioHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/positions", h.GetPositions)
	g.GET("/summary", h.GetSummary)
}

// GetPositions godoc
// @Summary Open positions
// @Description Get the open option positions
// @Tags portfolio
// @Produce  json
// @Success 200 {array} entity.StockPosition
// @Failure 500 {object} dto.ErrorResponse
// @Router /portfolio/positions [get]
func (h *PortfolioHandler) GetPositions(c echo.Context) error {
	positions, err := h.portfolioService.GetPositions(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to list positions", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to get positions"})
	}
	return c.JSON(http.StatusOK, positions)
}

// GetSummary godoc
// @Summary Portfolio summary
// @Description Get aggregate P&L over the open positions
// @Tags portfolio
// @Produce  json
// @Success 200 {object} dto.PortfolioSummary
// @Failure 500 {object} dto.ErrorResponse
// @Router /portfolio/summary [get]
func (h *PortfolioHandler) GetSummary(c echo.Context) error {
	summary, err := h.portfolioService.GetSummary(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to build portfolio summary", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to get summary"})
	}
	return c.JSON(http.StatusOK, summary)
}
