package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Insert(ctx context.Context, entry *RateEntry) error
	FindByID(ctx context.Context, campgroundID, id snowflake.ID) (*RateEntry, error)
	Delete(ctx context.Context, campgroundID, id snowflake.ID) error
	List(ctx context.Context, campgroundID snowflake.ID) ([]RateEntry, error)

	// ListForSite returns entries overlapping [start, end] that apply to
	// the site directly or to its site class.
	ListForSite(ctx context.Context, campgroundID, siteID, siteClassID snowflake.ID, start, end time.Time) ([]RateEntry, error)
}
