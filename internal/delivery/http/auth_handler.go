package http

import (
	"net/http"

	"nifinova/internal/dto"
	"nifinova/internal/entity"
	"nifinova/internal/service"
	"nifinova/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler handles HTTP requests for login sessions.
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// RegisterRoutes registers the auth routes to the Echo group. Login and
// logout are public; the session check runs only on /me.
func (h *AuthHandler) RegisterRoutes(g *echo.Group, sessionMiddleware echo.MiddlewareFunc) {
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
	g.GET("/me", h.Me, sessionMiddleware)
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and open a dashboard session
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials  body    dto.LoginRequest   true    "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	account, token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Invalid credentials"})
		}
		h.logger.Error("Login failed", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Login failed"})
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		User:    dto.UserResponse{ID: account.ID, Username: account.Username},
	})
}

// Logout godoc
// @Summary Log out
// @Description Close the current dashboard session
// @Tags auth
// @Produce  json
// @Success 200 {object} map[string]bool
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			h.logger.Error("Logout failed", logger.ErrorField(err))
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Me godoc
// @Summary Current user
// @Description Return the account behind the current session
// @Tags auth
// @Produce  json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	account, ok := c.Get(accountContextKey).(*entity.Account)
	if !ok {
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authentication required"})
	}
	return c.JSON(http.StatusOK, dto.UserResponse{ID: account.ID, Username: account.Username})
}
