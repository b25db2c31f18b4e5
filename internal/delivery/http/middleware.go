package http

import (
	"net/http"

	"nifinova/internal/dto"
	"nifinova/internal/service"

	"github.com/labstack/echo/v4"
)

const (
	sessionCookieName = "session_id"
	accountContextKey = "account"
)

// SessionMiddleware authenticates the session cookie and stores the resolved
// account in the request context. Requests without a valid session get 401.
func SessionMiddleware(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(sessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authentication required"})
			}

			account, err := authService.Authenticate(c.Request().Context(), cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authentication required"})
			}

			c.Set(accountContextKey, account)
			return next(c)
		}
	}
}
