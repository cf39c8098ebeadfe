package service

import (
	"github.com/emelinabraham-cmd/homeease-api/internal/authz"
	"github.com/emelinabraham-cmd/homeease-api/internal/repository"
	"github.com/emelinabraham-cmd/homeease-api/internal/server"
	"github.com/hibiken/asynq"
)

// TaskEnqueuer is the slice of the asynq client the pipelines use to hand
// off post-mutation email work.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Services is the container for all business-logic services.
type Services struct {
	Catalog *CatalogService
	Booking *BookingService
	Support *SupportService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	gate := authz.NewGate(repos.Profiles)

	return &Services{
		Catalog: NewCatalogService(repos.Services, s.Logger),
		Booking: NewBookingService(repos.Bookings, repos.Services, repos.Profiles, gate, s.Job.Client, s.Logger),
		Support: NewSupportService(repos.Support, repos.Profiles, s.Job.Client, s.Logger),
	}
}
