package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type ComposeRequest struct {
	CampgroundID       snowflake.ID
	AdjustedTotalCents int64
	Occupants          Occupants
	UpsellIDs          []snowflake.ID

	// RequiresTax comes from the campground record. When true and no
	// active tax rule exists, composition fails with ErrTaxRuleMissing.
	RequiresTax bool
}

type TaxRuleRequest struct {
	CampgroundID snowflake.ID
	Name         string
	RatePercent  float64
	AmountCents  int64
	AppliesTo    TaxAppliesTo
	IsActive     *bool
}

type UpsellRequest struct {
	CampgroundID snowflake.ID
	Name         string
	PriceCents   int64
	Active       *bool
}

type Service interface {
	Compose(ctx context.Context, req ComposeRequest) (*Breakdown, error)

	CreateTaxRule(ctx context.Context, req TaxRuleRequest) (*TaxRule, error)
	UpdateTaxRule(ctx context.Context, campgroundID, id snowflake.ID, req TaxRuleRequest) (*TaxRule, error)
	DeleteTaxRule(ctx context.Context, campgroundID, id snowflake.ID) error
	ListTaxRules(ctx context.Context, campgroundID snowflake.ID) ([]TaxRule, error)

	GetGuestFeeConfig(ctx context.Context, campgroundID snowflake.ID) (*GuestFeeConfig, error)
	PutGuestFeeConfig(ctx context.Context, cfg GuestFeeConfig) (*GuestFeeConfig, error)

	CreateUpsell(ctx context.Context, req UpsellRequest) (*Upsell, error)
	DeleteUpsell(ctx context.Context, campgroundID, id snowflake.ID) error
	ListUpsells(ctx context.Context, campgroundID snowflake.ID) ([]Upsell, error)
}
