package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"

	"github.com/campreserv/keepr/internal/cancellation"
	"github.com/campreserv/keepr/internal/deposit"
)

type CreateRequest struct {
	Name        string
	Timezone    string
	RequiresTax bool
}

// PatchPoliciesRequest carries partial updates to the campground's
// deposit and cancellation configuration. Nil fields are left as-is.
type PatchPoliciesRequest struct {
	RequiresTax *bool

	DepositRule       *deposit.Rule
	DepositPercentage *float64
	DepositFlatCents  *int64

	PolicyType   *cancellation.PolicyType
	WindowHours  *int
	FeeType      *cancellation.FeeType
	FeeFlatCents *int64
	FeePercent   *float64
	Notes        *string
}

type CreateSiteRequest struct {
	CampgroundID snowflake.ID
	SiteClassID  snowflake.ID
	Name         string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Campground, error)
	Get(ctx context.Context, id snowflake.ID) (*Campground, error)
	List(ctx context.Context) ([]Campground, error)
	PatchPolicies(ctx context.Context, id snowflake.ID, req PatchPoliciesRequest) (*Campground, error)

	CreateSiteClass(ctx context.Context, campgroundID snowflake.ID, name string) (*SiteClass, error)
	CreateSite(ctx context.Context, req CreateSiteRequest) (*Site, error)
	GetSite(ctx context.Context, campgroundID, siteID snowflake.ID) (*Site, error)
	ListSites(ctx context.Context, campgroundID snowflake.ID) ([]Site, error)
}
