package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

type CreateRequest struct {
	CampgroundID     snowflake.ID
	SiteID           *snowflake.ID
	SiteClassID      *snowflake.ID
	StartDate        time.Time
	EndDate          time.Time
	NightlyRateCents int64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*RateEntry, error)
	Get(ctx context.Context, campgroundID, id snowflake.ID) (*RateEntry, error)
	Delete(ctx context.Context, campgroundID, id snowflake.ID) error
	List(ctx context.Context, campgroundID snowflake.ID) ([]RateEntry, error)

	// Resolve prices every night of the half-open [arrival, departure)
	// interval for the given site.
	Resolve(ctx context.Context, campgroundID, siteID, siteClassID snowflake.ID, arrival, departure time.Time) (*Resolution, error)
}
