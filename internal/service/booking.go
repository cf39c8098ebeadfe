package service

import (
	"context"
	"errors"

	"github.com/emelinabraham-cmd/homeease-api/internal/authz"
	"github.com/emelinabraham-cmd/homeease-api/internal/domain"
	"github.com/emelinabraham-cmd/homeease-api/internal/errs"
	"github.com/emelinabraham-cmd/homeease-api/internal/lib/job"
	"github.com/rs/zerolog"
)

var (
	codeServiceNotFound    = "SERVICE_NOT_FOUND"
	codeServiceUnavailable = "SERVICE_UNAVAILABLE"
	codeBookingNotFound    = "BOOKING_NOT_FOUND"
	codeAlreadyCancelled   = "ALREADY_CANCELLED"
	codeCannotCancel       = "CANNOT_CANCEL"
)

// BookingService runs the booking pipelines: creation against an active
// catalog entry and owner-initiated cancellation through the booking state
// machine.
type BookingService struct {
	bookings BookingRepo
	services ServiceRepo
	profiles ProfileRepo
	gate     *authz.Gate
	tasks    TaskEnqueuer
	logger   *zerolog.Logger
}

func NewBookingService(
	bookings BookingRepo,
	services ServiceRepo,
	profiles ProfileRepo,
	gate *authz.Gate,
	tasks TaskEnqueuer,
	logger *zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		services: services,
		profiles: profiles,
		gate:     gate,
		tasks:    tasks,
		logger:   logger,
	}
}

// Create books a service for callerID. The target service must exist and be
// active; the booking is inserted in the pending state regardless of any
// status the caller supplied.
func (s *BookingService) Create(ctx context.Context, callerID string, in domain.CreateBookingInput) (*domain.BookingSnapshot, error) {
	svc, err := s.services.GetByID(ctx, in.ServiceID)
	if errors.Is(err, domain.ErrServiceNotFound) {
		return nil, errs.NewNotFoundError("The requested service does not exist", &codeServiceNotFound)
	}
	if err != nil {
		return nil, err
	}

	if !svc.IsActive {
		return nil, errs.NewBadRequestError("The requested service is currently not available", &codeServiceUnavailable, nil)
	}

	snap, err := s.bookings.Insert(ctx, callerID, in)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", snap.ID).
		Str("user_id", callerID).
		Str("service_id", snap.ServiceID).
		Msg("booking created")

	go s.sendConfirmation(context.WithoutCancel(ctx), callerID, snap)

	return snap, nil
}

// Cancel transitions callerID's booking to cancelled. Only the booking's
// owner may cancel, and only while the state machine still permits it.
func (s *BookingService) Cancel(ctx context.Context, callerID, bookingID string, reason *string) (*domain.BookingSnapshot, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if errors.Is(err, domain.ErrBookingNotFound) {
		return nil, errs.NewNotFoundError("The requested booking does not exist", &codeBookingNotFound)
	}
	if err != nil {
		return nil, err
	}

	if err := s.gate.Allow(ctx, authz.OwnerOnly(), callerID, booking.UserID, "You can only cancel your own bookings"); err != nil {
		return nil, err
	}

	if err := cancellableError(booking.Status); err != nil {
		return nil, err
	}

	var notes *string
	if reason != nil && *reason != "" {
		composed := "Cancellation reason: " + *reason
		notes = &composed
	}

	snap, err := s.bookings.Cancel(ctx, bookingID, notes)
	if errors.Is(err, domain.ErrBookingNotCancellable) {
		// Lost a race with another transition; re-read so the caller gets
		// the state-specific answer rather than a generic failure.
		current, readErr := s.bookings.GetByID(ctx, bookingID)
		if readErr != nil {
			return nil, readErr
		}
		return nil, cancellableError(current.Status)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", snap.ID).
		Str("user_id", callerID).
		Msg("booking cancelled")

	return snap, nil
}

// ListByUser returns callerID's bookings, newest first.
func (s *BookingService) ListByUser(ctx context.Context, callerID string) ([]domain.BookingSnapshot, error) {
	return s.bookings.ListByUser(ctx, callerID)
}

// cancellableError maps a non-cancellable status to its client-facing
// error, or nil when cancellation may proceed.
func cancellableError(status domain.BookingStatus) error {
	if status == domain.BookingStatusCancelled {
		return errs.NewBadRequestError("This booking has already been cancelled", &codeAlreadyCancelled, nil)
	}
	if !status.CanBeCancelled() {
		return errs.NewBadRequestError("Completed bookings cannot be cancelled", &codeCannotCancel, nil)
	}
	return nil
}

// sendConfirmation hands the confirmation email off to the task queue. It
// runs after the response is committed, so failures are logged and
// swallowed.
func (s *BookingService) sendConfirmation(ctx context.Context, userID string, snap *domain.BookingSnapshot) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("booking_id", snap.ID).
			Msg("skipping booking confirmation email: profile lookup failed")
		return
	}

	task, err := job.NewBookingConfirmationTask(job.BookingConfirmationPayload{
		To:          profile.Email,
		Name:        profile.Name,
		ServiceName: snap.Service.Name,
		BookingDate: snap.BookingDate,
		BookingTime: snap.BookingTime,
	})
	if err != nil {
		s.logger.Error().Err(err).
			Str("booking_id", snap.ID).
			Msg("failed to build booking confirmation task")
		return
	}

	if _, err := s.tasks.Enqueue(task); err != nil {
		s.logger.Error().Err(err).
			Str("booking_id", snap.ID).
			Msg("failed to enqueue booking confirmation email")
	}
}
