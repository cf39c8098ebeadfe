package handler

import (
	"github.com/emelinabraham-cmd/homeease-api/internal/server"
	"github.com/emelinabraham-cmd/homeease-api/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one object
// around instead of many.
type Handlers struct {
	Health  *HealthHandler
	Catalog *CatalogHandler
	Booking *BookingHandler
	Support *SupportHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		Catalog: NewCatalogHandler(s, services.Catalog),
		Booking: NewBookingHandler(s, services.Booking),
		Support: NewSupportHandler(s, services.Support),
	}
}
