package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Insert(ctx context.Context, cg *Campground) error
	Update(ctx context.Context, cg *Campground) error
	FindByID(ctx context.Context, id snowflake.ID) (*Campground, error)
	List(ctx context.Context) ([]Campground, error)

	InsertSiteClass(ctx context.Context, sc *SiteClass) error
	ListSiteClasses(ctx context.Context, campgroundID snowflake.ID) ([]SiteClass, error)

	InsertSite(ctx context.Context, site *Site) error
	FindSite(ctx context.Context, campgroundID, siteID snowflake.ID) (*Site, error)
	ListSites(ctx context.Context, campgroundID snowflake.ID) ([]Site, error)
	ListActiveSites(ctx context.Context, campgroundID snowflake.ID) ([]Site, error)
}
