// Package domain holds the entities persisted by the API and the booking
// lifecycle rules that govern how they may change.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the current state of a booking in its lifecycle.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// validTransitions is the booking state machine. A state mapping to an
// empty slice is terminal.
var validTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusCompleted: {},
	BookingStatusCancelled: {},
}

// IsValid reports whether s is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransitionTo reports whether a transition from s to target is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible from s.
func (s BookingStatus) IsTerminal() bool {
	allowed, ok := validTransitions[s]
	if !ok {
		return true
	}
	return len(allowed) == 0
}

// CanBeCancelled reports whether a booking in this status may still be
// cancelled by its owner.
func (s BookingStatus) CanBeCancelled() bool {
	return s.CanTransitionTo(BookingStatusCancelled)
}

// PaymentStatus is tracked on a separate axis from the booking lifecycle;
// cancellation does not touch it.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Booking is a customer's reservation of a service at a date and time.
// Date and time are kept in their wire grammar (YYYY-MM-DD, HH:MM).
type Booking struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	ServiceID     string        `json:"service_id"`
	BookingDate   string        `json:"booking_date"`
	BookingTime   string        `json:"booking_time"`
	Address       string        `json:"address"`
	Notes         *string       `json:"notes"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// BookingServiceInfo is the slice of the referenced service joined into a
// booking snapshot.
type BookingServiceInfo struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// BookingSnapshot is the stored booking row plus its joined service fields,
// returned verbatim to the caller after a mutation.
type BookingSnapshot struct {
	Booking
	Service BookingServiceInfo `json:"service"`
}

// CreateBookingInput carries the validated fields for a new booking.
// Status and payment status are never caller-supplied.
type CreateBookingInput struct {
	ServiceID   string
	BookingDate string
	BookingTime string
	Address     string
	Notes       *string
}
