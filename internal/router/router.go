// Package router initializes the HTTP router (using Echo).
//
// It installs the middleware chain and defines the API route groups,
// mapping paths to their handlers.
package router

import (
	"github.com/emelinabraham-cmd/homeease-api/internal/handler"
	"github.com/emelinabraham-cmd/homeease-api/internal/middleware"
	"github.com/emelinabraham-cmd/homeease-api/internal/server"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance with the full middleware chain. Order
// matters: recovery first, then request ID so every later log line can
// correlate, tracing before the context enhancer so trace IDs land in the
// request logger, and CORS before any auth so preflight OPTIONS is
// answered without credentials.
func New(s *server.Server, m *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(m.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())
	e.Use(m.Tracing.EnhanceTracing())

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, m, h)

	return e
}
