package http

import (
	"net/http"

	"nifinova/internal/dto"
	"nifinova/internal/repository"
	"nifinova/internal/service"
	"nifinova/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SubscriberHandler handles HTTP requests for WhatsApp subscribers.
type SubscriberHandler struct {
	subscriberService service.SubscriberService
	logger            *logger.Logger
}

// NewSubscriberHandler creates a new SubscriberHandler.
func NewSubscriberHandler(subscriberService service.SubscriberService, logger *logger.Logger) *SubscriberHandler {
	return &SubscriberHandler{subscriberService: subscriberService, logger: logger}
}

// RegisterRoutes registers the subscriber routes to the Echo group.
func (h *SubscriberHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetSubscribers)
	g.POST("", h.AddSubscriber)
	g.DELETE("/:phoneNumber", h.RemoveSubscriber)
}

// GetSubscribers godoc
// @Summary List subscribers
// @Description Get the active WhatsApp notification recipients
// @Tags subscribers
// @Produce  json
// @Success 200 {array} entity.Subscriber
// @Failure 500 {object} dto.ErrorResponse
// @Router /whatsapp/users [get]
func (h *SubscriberHandler) GetSubscribers(c echo.Context) error {
	subscribers, err := h.subscriberService.List(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to list subscribers", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to get subscribers"})
	}
	return c.JSON(http.StatusOK, subscribers)
}

// AddSubscriber godoc
// @Summary Register a subscriber
// @Description Register a phone number for WhatsApp signal alerts
// @Tags subscribers
// @Accept  json
// @Produce  json
// @Param   subscriber  body    dto.AddSubscriberRequest   true    "Phone number to register"
// @Success 200 {object} entity.Subscriber
// @Failure 400 {object} dto.ErrorResponse
// @Router /whatsapp/users [post]
func (h *SubscriberHandler) AddSubscriber(c echo.Context) error {
	var req dto.AddSubscriberRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	subscriber, err := h.subscriberService.Add(c.Request().Context(), req.PhoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPhoneNumber):
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid phone number"})
		case errors.Is(err, repository.ErrAlreadyExists):
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Phone number already registered"})
		default:
			h.logger.Error("Failed to add subscriber", logger.ErrorField(err))
			return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to add subscriber"})
		}
	}

	return c.JSON(http.StatusOK, subscriber)
}

// RemoveSubscriber godoc
// @Summary Remove a subscriber
// @Description Deactivate a registered phone number
// @Tags subscribers
// @Produce  json
// @Param   phoneNumber  path    string true    "Registered phone number"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} dto.ErrorResponse
// @Router /whatsapp/users/{phoneNumber} [delete]
func (h *SubscriberHandler) RemoveSubscriber(c echo.Context) error {
	err := h.subscriberService.Remove(c.Request().Context(), c.Param("phoneNumber"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
		}
		h.logger.Error("Failed to remove subscriber", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to remove subscriber"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
