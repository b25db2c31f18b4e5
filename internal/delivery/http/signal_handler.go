package http

import (
	"net/http"

	"nifinova/internal/dto"
	"nifinova/internal/service"
	"nifinova/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SignalHandler handles HTTP requests for trading signals.
type SignalHandler struct {
	signalService service.SignalService
	logger        *logger.Logger
}

// NewSignalHandler creates a new SignalHandler.
func NewSignalHandler(signalService service.SignalService, logger *logger.Logger) *SignalHandler {
	return &SignalHandler{signalService: signalService, logger: logger}
}

// RegisterRoutes registers the signal routes to the Echo group.
func (h *SignalHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetSignals)
}

// GetSignals godoc
// @Summary Active trading signals
// @Description Get the active signals from the last 24 hours, newest first
// @Tags signals
// @Produce  json
// @Success 200 {array} entity.TradingSignal
// @Failure 500 {object} dto.ErrorResponse
// @Router /signals [get]
func (h *SignalHandler) GetSignals(c echo.Context) error {
	signals, err := h.signalService.List(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to list signals", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to get signals"})
	}
	return c.JSON(http.StatusOK, signals)
}
