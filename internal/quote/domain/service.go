package domain

import (
	"context"
	"errors"
)

// ErrNotFound means a quote reference is unknown or has expired from
// the cache.
var ErrNotFound = errors.New("quote: reference not found or expired")

type Service interface {
	// Compute prices a prospective stay. Read-only: nothing is reserved
	// or persisted.
	Compute(ctx context.Context, req Request) (*Quote, error)

	// GetByReference returns a previously computed quote while its
	// cache TTL lasts, for booking-flow correlation.
	GetByReference(ctx context.Context, reference string) (*Quote, error)
}
