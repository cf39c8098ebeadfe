package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/emelinabraham-cmd/homeease-api/internal/authz"
	"github.com/emelinabraham-cmd/homeease-api/internal/domain"
	"github.com/emelinabraham-cmd/homeease-api/internal/middleware"
	"github.com/emelinabraham-cmd/homeease-api/internal/server"
	"github.com/emelinabraham-cmd/homeease-api/internal/service"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_Validate(t *testing.T) {
	valid := CreateBookingRequest{
		ServiceID:   "s1",
		BookingDate: "2030-06-01",
		BookingTime: "09:30",
		Address:     "12 Main St",
	}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name    string
		mutate  func(r *CreateBookingRequest)
		wantMsg string
	}{
		{
			name:    "missing service_id",
			mutate:  func(r *CreateBookingRequest) { r.ServiceID = "" },
			wantMsg: "Missing required fields: service_id, booking_date, booking_time, address",
		},
		{
			name:    "missing address",
			mutate:  func(r *CreateBookingRequest) { r.Address = "" },
			wantMsg: "Missing required fields: service_id, booking_date, booking_time, address",
		},
		{
			name:    "whitespace-only address",
			mutate:  func(r *CreateBookingRequest) { r.Address = "   " },
			wantMsg: "Missing required fields: service_id, booking_date, booking_time, address",
		},
		{
			name:    "bad date grammar",
			mutate:  func(r *CreateBookingRequest) { r.BookingDate = "01-06-2030" },
			wantMsg: "Invalid date format. Use YYYY-MM-DD",
		},
		{
			name:    "bad time grammar",
			mutate:  func(r *CreateBookingRequest) { r.BookingTime = "9:30" },
			wantMsg: "Invalid time format. Use HH:MM (24-hour format)",
		},
		{
			name:    "past date",
			mutate:  func(r *CreateBookingRequest) { r.BookingDate = "2020-01-01" },
			wantMsg: "Booking date must be today or in the future",
		},
		{
			// The required-set check runs before any grammar check.
			name: "missing field wins over bad grammar",
			mutate: func(r *CreateBookingRequest) {
				r.ServiceID = ""
				r.BookingDate = "not-a-date"
			},
			wantMsg: "Missing required fields: service_id, booking_date, booking_time, address",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			assert.Equal(t, tc.wantMsg, firstFailure(t, err).Message)
		})
	}
}

func TestCancelBookingRequest_Validate(t *testing.T) {
	err := (&CancelBookingRequest{}).Validate()
	require.Error(t, err)
	assert.Equal(t, "Missing required field: booking_id", firstFailure(t, err).Message)

	assert.NoError(t, (&CancelBookingRequest{BookingID: "b1"}).Validate())
}

// --- end-to-end create booking through the typed handler pipeline --------

type stubBookingRepo struct {
	inserted *domain.CreateBookingInput
}

func (s *stubBookingRepo) Insert(_ context.Context, userID string, in domain.CreateBookingInput) (*domain.BookingSnapshot, error) {
	s.inserted = &in
	return &domain.BookingSnapshot{
		Booking: domain.Booking{
			ID:            "b1",
			UserID:        userID,
			ServiceID:     in.ServiceID,
			BookingDate:   in.BookingDate,
			BookingTime:   in.BookingTime,
			Address:       in.Address,
			Notes:         in.Notes,
			Status:        domain.BookingStatusPending,
			PaymentStatus: domain.PaymentStatusPending,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		},
		Service: domain.BookingServiceInfo{Name: "Deep Cleaning", Price: decimal.RequireFromString("89.99")},
	}, nil
}

func (s *stubBookingRepo) GetByID(context.Context, string) (*domain.Booking, error) {
	return nil, domain.ErrBookingNotFound
}

func (s *stubBookingRepo) Cancel(context.Context, string, *string) (*domain.BookingSnapshot, error) {
	return nil, domain.ErrBookingNotCancellable
}

func (s *stubBookingRepo) ListByUser(context.Context, string) ([]domain.BookingSnapshot, error) {
	return nil, nil
}

type stubServiceRepo struct{}

func (stubServiceRepo) Insert(context.Context, domain.CreateServiceInput) (*domain.Service, error) {
	return nil, nil
}

func (stubServiceRepo) GetByID(context.Context, string) (*domain.Service, error) {
	return &domain.Service{ID: "s1", Name: "Deep Cleaning", Price: decimal.RequireFromString("89.99"), IsActive: true}, nil
}

func (stubServiceRepo) ExistsByName(context.Context, string) (bool, error) { return false, nil }

func (stubServiceRepo) ListActive(context.Context) ([]domain.Service, error) { return nil, nil }

func (stubServiceRepo) SetActive(context.Context, string, bool) (*domain.Service, error) {
	return nil, domain.ErrServiceNotFound
}

type stubProfileRepo struct{}

func (stubProfileRepo) Get(context.Context, string) (*domain.Profile, error) {
	return &domain.Profile{ID: "u1", Name: "Alice", Email: "alice@example.com"}, nil
}

func (stubProfileRepo) Role(context.Context, string) (string, error) {
	return domain.RoleCustomer, nil
}

type stubEnqueuer struct{}

func (stubEnqueuer) Enqueue(*asynq.Task, ...asynq.Option) (*asynq.TaskInfo, error) {
	return nil, nil
}

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{Logger: &logger}
}

func TestBookingHandler_Create_Returns201Snapshot(t *testing.T) {
	repo := &stubBookingRepo{}
	svc := service.NewBookingService(repo, stubServiceRepo{}, stubProfileRepo{}, authz.NewGate(stubProfileRepo{}), stubEnqueuer{}, newTestServer().Logger)
	h := NewBookingHandler(newTestServer(), svc)

	e := echo.New()
	body := `{"service_id":"s1","booking_date":"2030-06-01","booking_time":"09:30","address":"12 Main St","status":"completed"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.UserIDKey, "u1")

	require.NoError(t, h.Create()(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var snap domain.BookingSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, "b1", snap.ID)
	assert.Equal(t, "u1", snap.UserID)
	assert.Equal(t, domain.BookingStatusPending, snap.Status, "caller-supplied status is ignored")
	assert.Equal(t, domain.PaymentStatusPending, snap.PaymentStatus)
	assert.Equal(t, "Deep Cleaning", snap.Service.Name)

	require.NotNil(t, repo.inserted)
	assert.Equal(t, "2030-06-01", repo.inserted.BookingDate)
}

func TestBookingHandler_Create_TrimsAddress(t *testing.T) {
	repo := &stubBookingRepo{}
	svc := service.NewBookingService(repo, stubServiceRepo{}, stubProfileRepo{}, authz.NewGate(stubProfileRepo{}), stubEnqueuer{}, newTestServer().Logger)
	h := NewBookingHandler(newTestServer(), svc)

	e := echo.New()
	body := `{"service_id":"s1","booking_date":"2030-06-01","booking_time":"09:30","address":"  12 Main St  "}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.UserIDKey, "u1")

	require.NoError(t, h.Create()(c))

	require.NotNil(t, repo.inserted)
	assert.Equal(t, "12 Main St", repo.inserted.Address)
}

func TestBookingHandler_Create_ValidationStopsBeforeStore(t *testing.T) {
	repo := &stubBookingRepo{}
	svc := service.NewBookingService(repo, stubServiceRepo{}, stubProfileRepo{}, authz.NewGate(stubProfileRepo{}), stubEnqueuer{}, newTestServer().Logger)
	h := NewBookingHandler(newTestServer(), svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{"service_id":"s1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.UserIDKey, "u1")

	err := h.Create()(c)
	require.Error(t, err)
	assert.Nil(t, repo.inserted)
}
