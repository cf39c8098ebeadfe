package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/emelinabraham-cmd/homeease-api/internal/domain"
	"github.com/emelinabraham-cmd/homeease-api/internal/middleware"
	"github.com/emelinabraham-cmd/homeease-api/internal/server"
	"github.com/emelinabraham-cmd/homeease-api/internal/service"
	"github.com/emelinabraham-cmd/homeease-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// BookingHandler serves booking creation, cancellation, and the caller's
// booking list. All routes sit behind RequireAuth.
type BookingHandler struct {
	Handler
	booking *service.BookingService
}

func NewBookingHandler(s *server.Server, booking *service.BookingService) *BookingHandler {
	return &BookingHandler{
		Handler: NewHandler(s),
		booking: booking,
	}
}

// CreateBookingRequest is the payload for booking a service. Status and
// payment status have no fields here: the store forces both to pending no
// matter what the caller sends.
type CreateBookingRequest struct {
	ServiceID   string  `json:"service_id"`
	BookingDate string  `json:"booking_date"`
	BookingTime string  `json:"booking_time"`
	Address     string  `json:"address"`
	Notes       *string `json:"notes"`
}

// Validate checks the required set as a unit, then each field grammar, then
// the date bound. The first failure is the response.
func (r *CreateBookingRequest) Validate() error {
	if r.ServiceID == "" || r.BookingDate == "" || r.BookingTime == "" || strings.TrimSpace(r.Address) == "" {
		return validation.Failf("", "Missing required fields: service_id, booking_date, booking_time, address")
	}

	if !validation.ValidBookingDate(r.BookingDate) {
		return validation.Failf("booking_date", "Invalid date format. Use YYYY-MM-DD")
	}

	if !validation.ValidBookingTime(r.BookingTime) {
		return validation.Failf("booking_time", "Invalid time format. Use HH:MM (24-hour format)")
	}

	if !validation.DateNotBeforeToday(r.BookingDate, time.Now()) {
		return validation.Failf("booking_date", "Booking date must be today or in the future")
	}

	return nil
}

func (h *BookingHandler) create(c echo.Context, req *CreateBookingRequest) (*domain.BookingSnapshot, error) {
	return h.booking.Create(c.Request().Context(), middleware.GetUserID(c), domain.CreateBookingInput{
		ServiceID:   req.ServiceID,
		BookingDate: req.BookingDate,
		BookingTime: req.BookingTime,
		Address:     strings.TrimSpace(req.Address),
		Notes:       req.Notes,
	})
}

// Create registers the booking creation endpoint.
func (h *BookingHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, h.create, http.StatusCreated)
}

// CancelBookingRequest is the payload for cancelling an owned booking.
type CancelBookingRequest struct {
	BookingID          string  `json:"booking_id"`
	CancellationReason *string `json:"cancellation_reason"`
}

func (r *CancelBookingRequest) Validate() error {
	if r.BookingID == "" {
		return validation.Failf("booking_id", "Missing required field: booking_id")
	}
	return nil
}

func (h *BookingHandler) cancel(c echo.Context, req *CancelBookingRequest) (*domain.BookingSnapshot, error) {
	return h.booking.Cancel(c.Request().Context(), middleware.GetUserID(c), req.BookingID, req.CancellationReason)
}

// Cancel registers the booking cancellation endpoint.
func (h *BookingHandler) Cancel() echo.HandlerFunc {
	return Handle(h.Handler, h.cancel, http.StatusOK)
}

// List returns the caller's bookings, newest first.
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.booking.ListByUser(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}
