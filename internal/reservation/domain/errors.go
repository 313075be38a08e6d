package domain

import "errors"

var (
	ErrReservationNotFound = errors.New("reservation: not found")
	ErrInvalidReservation  = errors.New("reservation: invalid request")

	// ErrSiteUnavailable means the site is already held for an
	// overlapping date range. The transactional overlap guard raises it
	// so exactly one of two concurrent booking attempts succeeds.
	ErrSiteUnavailable = errors.New("reservation: site is not available for the requested dates")

	// ErrInvalidCancellationState rejects cancellation after check-in.
	ErrInvalidCancellationState = errors.New("reservation: cannot cancel from the current status")

	ErrInvalidTransition = errors.New("reservation: invalid status transition")
)
