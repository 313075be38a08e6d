package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type CreateRequest struct {
	CampgroundID    snowflake.ID
	Name            string
	Trigger         Trigger
	AdjustmentType  AdjustmentType
	AdjustmentValue float64
	IsActive        *bool
	Priority        *int
	Metadata        map[string]any
}

type UpdateRequest struct {
	Name            *string
	Trigger         *Trigger
	AdjustmentType  *AdjustmentType
	AdjustmentValue *float64
	IsActive        *bool
	Priority        *int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*PricingRule, error)
	Update(ctx context.Context, campgroundID, id snowflake.ID, req UpdateRequest) (*PricingRule, error)
	Get(ctx context.Context, campgroundID, id snowflake.ID) (*PricingRule, error)
	Delete(ctx context.Context, campgroundID, id snowflake.ID) error
	List(ctx context.Context, campgroundID snowflake.ID) ([]PricingRule, error)

	// Adjust applies every matching active rule to baseTotalCents.
	Adjust(ctx context.Context, campgroundID snowflake.ID, baseTotalCents int64, bctx Context) (*Adjustment, error)
}
