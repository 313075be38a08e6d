package domain

import "errors"

var (
	// ErrInvalidDateRange rejects stays whose departure is not strictly
	// after arrival.
	ErrInvalidDateRange = errors.New("rate: departure must be after arrival")

	// ErrNoRateConfigured means at least one night of the stay has no
	// covering rate entry. A setup problem, not a transient fault.
	ErrNoRateConfigured = errors.New("rate: no rate configured for one or more nights")

	ErrInvalidRateEntry  = errors.New("rate: invalid rate entry")
	ErrRateEntryNotFound = errors.New("rate: rate entry not found")
)
