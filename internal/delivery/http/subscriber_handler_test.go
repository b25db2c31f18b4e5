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

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSubscriberHandler(t *testing.T) *SubscriberHandler {
	t.Helper()
	log := newTestLogger(t)
	svc := service.NewSubscriberService(repository.NewSubscriberRepository(), log)
	return NewSubscriberHandler(svc, log)
}

func addSubscriberRequest(t *testing.T, h *SubscriberHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/whatsapp/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.AddSubscriber(e.NewContext(req, rec)))
	return rec
}

func listSubscribers(t *testing.T, h *SubscriberHandler) []entity.Subscriber {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/whatsapp/users", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.GetSubscribers(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var subscribers []entity.Subscriber
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subscribers))
	return subscribers
}

func removeSubscriberRequest(t *testing.T, h *SubscriberHandler, phoneNumber string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/whatsapp/users/"+phoneNumber, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/whatsapp/users/:phoneNumber")
	c.SetParamNames("phoneNumber")
	c.SetParamValues(phoneNumber)
	require.NoError(t, h.RemoveSubscriber(c))
	return rec
}

func TestSubscriberHandler_AddListRemove(t *testing.T) {
	h := newTestSubscriberHandler(t)

	rec := addSubscriberRequest(t, h, `{"phone_number":"+919876543210"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	subscribers := listSubscribers(t, h)
	require.Len(t, subscribers, 1)
	assert.Equal(t, "+919876543210", subscribers[0].PhoneNumber)

	rec = removeSubscriberRequest(t, h, "+919876543210")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "true")

	assert.Empty(t, listSubscribers(t, h))
}

func TestSubscriberHandler_RejectsInvalidPhone(t *testing.T) {
	h := newTestSubscriberHandler(t)

	for _, phone := range []string{"", "abc", "12345", "+12345678901234567890"} {
		rec := addSubscriberRequest(t, h, `{"phone_number":"`+phone+`"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "phone %q", phone)
	}
	assert.Empty(t, listSubscribers(t, h))
}

func TestSubscriberHandler_RejectsDuplicate(t *testing.T) {
	h := newTestSubscriberHandler(t)

	rec := addSubscriberRequest(t, h, `{"phone_number":"+919876543210"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = addSubscriberRequest(t, h, `{"phone_number":"+919876543210"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already registered")
}

func TestSubscriberHandler_RemoveUnknownReturns404(t *testing.T) {
	h := newTestSubscriberHandler(t)

	rec := removeSubscriberRequest(t, h, "+911111111111")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}
