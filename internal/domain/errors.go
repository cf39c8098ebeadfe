package domain

import "errors"

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrProfileNotFound = errors.New("profile not found")
)

// ErrBookingNotCancellable is returned by the conditional cancellation
// update when the row's status guard no longer matches, i.e. a concurrent
// request moved the booking into a terminal state between the read and the
// write.
var ErrBookingNotCancellable = errors.New("booking is not in a cancellable state")
