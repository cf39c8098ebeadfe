package service

import (
	"context"

	"github.com/emelinabraham-cmd/homeease-api/internal/domain"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"
)

type mockServiceRepo struct{ mock.Mock }

func (m *mockServiceRepo) Insert(ctx context.Context, in domain.CreateServiceInput) (*domain.Service, error) {
	args := m.Called(ctx, in)
	svc, _ := args.Get(0).(*domain.Service)
	return svc, args.Error(1)
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	args := m.Called(ctx, id)
	svc, _ := args.Get(0).(*domain.Service)
	return svc, args.Error(1)
}

func (m *mockServiceRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockServiceRepo) ListActive(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	services, _ := args.Get(0).([]domain.Service)
	return services, args.Error(1)
}

func (m *mockServiceRepo) SetActive(ctx context.Context, id string, active bool) (*domain.Service, error) {
	args := m.Called(ctx, id, active)
	svc, _ := args.Get(0).(*domain.Service)
	return svc, args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Insert(ctx context.Context, userID string, in domain.CreateBookingInput) (*domain.BookingSnapshot, error) {
	args := m.Called(ctx, userID, in)
	snap, _ := args.Get(0).(*domain.BookingSnapshot)
	return snap, args.Error(1)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	booking, _ := args.Get(0).(*domain.Booking)
	return booking, args.Error(1)
}

func (m *mockBookingRepo) Cancel(ctx context.Context, id string, notes *string) (*domain.BookingSnapshot, error) {
	args := m.Called(ctx, id, notes)
	snap, _ := args.Get(0).(*domain.BookingSnapshot)
	return snap, args.Error(1)
}

func (m *mockBookingRepo) ListByUser(ctx context.Context, userID string) ([]domain.BookingSnapshot, error) {
	args := m.Called(ctx, userID)
	snaps, _ := args.Get(0).([]domain.BookingSnapshot)
	return snaps, args.Error(1)
}

type mockSupportRepo struct{ mock.Mock }

func (m *mockSupportRepo) Insert(ctx context.Context, userID, message string) (*domain.SupportMessageSnapshot, error) {
	args := m.Called(ctx, userID, message)
	snap, _ := args.Get(0).(*domain.SupportMessageSnapshot)
	return snap, args.Error(1)
}

type mockProfileRepo struct{ mock.Mock }

func (m *mockProfileRepo) Get(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	profile, _ := args.Get(0).(*domain.Profile)
	return profile, args.Error(1)
}

func (m *mockProfileRepo) Role(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type mockTaskEnqueuer struct{ mock.Mock }

func (m *mockTaskEnqueuer) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(task)
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}
