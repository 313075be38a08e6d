package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

var ErrInvalidDateRange = errors.New("availability: departure must be after arrival")

type Service interface {
	// Check filters the campground's active sites for the half-open
	// [arrival, departure) range against blocking reservations and
	// maintenance blocks.
	Check(ctx context.Context, campgroundID snowflake.ID, arrival, departure time.Time) (*CheckResult, error)

	// Occupancy returns the campground's occupancy percentage over the
	// range: site-nights booked / site-nights in inventory.
	Occupancy(ctx context.Context, campgroundID snowflake.ID, arrival, departure time.Time) (float64, error)

	CreateMaintenanceBlock(ctx context.Context, siteID snowflake.ID, start, end time.Time, reason string) (*MaintenanceBlock, error)
}
