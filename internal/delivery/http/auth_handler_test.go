package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nifinova/internal/entity"
	"nifinova/internal/repository"
	"nifinova/internal/service"
	"nifinova/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return log
}

func newTestAuthHandler(t *testing.T) (*AuthHandler, service.AuthService) {
	t.Helper()
	log := newTestLogger(t)
	accountRepo := repository.NewAccountRepository(entity.Account{
		Username: "pkrsolution",
		Password: "prabhanjan2025",
	})
	authService := service.NewAuthService(accountRepo, repository.NewSessionRepository(), log)
	return NewAuthHandler(authService, log), authService
}

func postLogin(t *testing.T, h *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Login(e.NewContext(req, rec)))
	return rec
}

func TestAuthHandler_LoginSuccess(t *testing.T) {
	h, _ := newTestAuthHandler(t)

	rec := postLogin(t, h, `{"username":"pkrsolution","password":"prabhanjan2025"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		User    struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "pkrsolution", resp.User.Username)

	var sessionCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie)
	assert.NotEmpty(t, sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)
}

func TestAuthHandler_LoginRejected(t *testing.T) {
	h, _ := newTestAuthHandler(t)

	rec := postLogin(t, h, `{"username":"pkrsolution","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionMiddleware_BlocksAnonymous(t *testing.T) {
	_, authService := newTestAuthHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/signals", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(echo.Context) error {
		t.Fatal("handler must not run without a session")
		return nil
	}
	err := SessionMiddleware(authService)(next)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionMiddleware_PassesValidSession(t *testing.T) {
	h, authService := newTestAuthHandler(t)

	rec := postLogin(t, h, `{"username":"pkrsolution","password":"prabhanjan2025"}`)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	meRec := httptest.NewRecorder()
	c := e.NewContext(req, meRec)

	err := SessionMiddleware(authService)(h.Me)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, meRec.Code)
	assert.Contains(t, meRec.Body.String(), "pkrsolution")
}

func TestAuthHandler_LogoutClearsSession(t *testing.T) {
	h, authService := newTestAuthHandler(t)

	rec := postLogin(t, h, `{"username":"pkrsolution","password":"prabhanjan2025"}`)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	outRec := httptest.NewRecorder()
	require.NoError(t, h.Logout(e.NewContext(req, outRec)))
	assert.Equal(t, http.StatusOK, outRec.Code)

	// The session no longer authenticates.
	meReq := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	for _, cookie := range cookies {
		meReq.AddCookie(cookie)
	}
	meRec := httptest.NewRecorder()
	c := e.NewContext(meReq, meRec)
	require.NoError(t, SessionMiddleware(authService)(h.Me)(c))
	assert.Equal(t, http.StatusUnauthorized, meRec.Code)
}
