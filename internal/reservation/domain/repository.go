package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Insert(ctx context.Context, r *Reservation) error
	Update(ctx context.Context, r *Reservation) error
	FindByID(ctx context.Context, campgroundID, id snowflake.ID) (*Reservation, error)
	List(ctx context.Context, campgroundID snowflake.ID) ([]Reservation, error)

	// CountOverlapping counts blocking reservations for the site whose
	// [arrival, departure) range intersects the given one. Run inside
	// the booking transaction it takes a row lock on the conflicts.
	CountOverlapping(ctx context.Context, siteID snowflake.ID, arrival, departure time.Time) (int64, error)

	// CountMaintenanceOverlapping counts maintenance blocks for the
	// site intersecting the [arrival, departure) range. Blocks are
	// inclusive of both end dates.
	CountMaintenanceOverlapping(ctx context.Context, siteID snowflake.ID, arrival, departure time.Time) (int64, error)

	// ListOverlapping returns blocking reservations intersecting the
	// range across a whole campground, for availability filtering.
	ListOverlapping(ctx context.Context, campgroundID snowflake.ID, arrival, departure time.Time) ([]Reservation, error)

	// ListExpiredPending returns pending reservations created before
	// the cutoff, for the hold-expiry job.
	ListExpiredPending(ctx context.Context, cutoff time.Time) ([]Reservation, error)
}
