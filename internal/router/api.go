package router

import (
	"github.com/emelinabraham-cmd/homeease-api/internal/handler"
	"github.com/emelinabraham-cmd/homeease-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes wires the versioned API surface. The catalog listing is
// public; everything else requires a bearer token, and the admin group
// additionally checks the caller's stored role before the body is bound.
func registerAPIRoutes(r *echo.Echo, m *middleware.Middlewares, h *handler.Handlers) {
	api := r.Group("/api/v1")

	api.GET("/services", h.Catalog.List)

	bookings := api.Group("/bookings", m.Auth.RequireAuth)
	bookings.POST("", h.Booking.Create())
	bookings.POST("/cancel", h.Booking.Cancel())
	bookings.GET("", h.Booking.List)

	support := api.Group("/support", m.Auth.RequireAuth)
	support.POST("/messages", h.Support.Create())

	admin := api.Group("/admin", m.Auth.RequireAuth)
	admin.POST("/services", h.Catalog.Create(), m.Auth.RequireAdmin("Only administrators can create services"))
	admin.PATCH("/services/:id/active", h.Catalog.SetActive(), m.Auth.RequireAdmin("Only administrators can manage services"))
}
