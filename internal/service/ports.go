package service

import (
	"context"

	"github.com/emelinabraham-cmd/homeease-api/internal/domain"
)

// Consumer-side views of the repository layer, so services can be tested
// against mocks.

type ServiceRepo interface {
	Insert(ctx context.Context, in domain.CreateServiceInput) (*domain.Service, error)
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ListActive(ctx context.Context) ([]domain.Service, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.Service, error)
}

type BookingRepo interface {
	Insert(ctx context.Context, userID string, in domain.CreateBookingInput) (*domain.BookingSnapshot, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Cancel(ctx context.Context, id string, notes *string) (*domain.BookingSnapshot, error)
	ListByUser(ctx context.Context, userID string) ([]domain.BookingSnapshot, error)
}

type SupportRepo interface {
	Insert(ctx context.Context, userID, message string) (*domain.SupportMessageSnapshot, error)
}

type ProfileRepo interface {
	Get(ctx context.Context, id string) (*domain.Profile, error)
	Role(ctx context.Context, id string) (string, error)
}
