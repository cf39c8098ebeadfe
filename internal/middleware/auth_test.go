package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emelinabraham-cmd/homeease-api/internal/authz"
	"github.com/emelinabraham-cmd/homeease-api/internal/errs"
	"github.com/emelinabraham-cmd/homeease-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{Logger: &logger}
}

func TestRequireAuth_MissingHeaderRejectsBeforeVerification(t *testing.T) {
	auth := NewAuthMiddleware(testServer(), authz.NewGate(nil))

	called := false
	h := auth.RequireAuth(func(c echo.Context) error {
		called = true
		return nil
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h(c)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
	assert.Equal(t, "User not authenticated", httpErr.Message)
	assert.False(t, called, "handler must not run without credentials")
}

func TestGetUserID_Unset(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetUserID(c))

	c.Set(UserIDKey, "u1")
	assert.Equal(t, "u1", GetUserID(c))
}

func TestGetLogger_FallsBackToNop(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	require.NotNil(t, GetLogger(c))
}

func TestRequestID_GeneratesAndEchoesBack(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequestID()(func(c echo.Context) error { return nil })
	require.NoError(t, h(c))

	assert.NotEmpty(t, GetRequestID(c))
	assert.Equal(t, GetRequestID(c), rec.Header().Get(RequestIDHeader))
}

func TestRequestID_ReusesIncomingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequestID()(func(c echo.Context) error { return nil })
	require.NoError(t, h(c))

	assert.Equal(t, "upstream-id", GetRequestID(c))
}
