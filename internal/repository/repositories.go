package repository

import (
	"github.com/emelinabraham-cmd/homeease-api/internal/server"
)

// Repositories is the container for all repository instances.
type Repositories struct {
	Services *ServiceRepository
	Bookings *BookingRepository
	Support  *SupportRepository
	Profiles *ProfileRepository
}

func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Services: NewServiceRepository(s),
		Bookings: NewBookingRepository(s),
		Support:  NewSupportRepository(s),
		Profiles: NewProfileRepository(s),
	}
}
