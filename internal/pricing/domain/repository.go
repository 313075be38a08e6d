package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Insert(ctx context.Context, rule *PricingRule) error
	Update(ctx context.Context, rule *PricingRule) error
	FindByID(ctx context.Context, campgroundID, id snowflake.ID) (*PricingRule, error)
	Delete(ctx context.Context, campgroundID, id snowflake.ID) error
	List(ctx context.Context, campgroundID snowflake.ID) ([]PricingRule, error)

	// ListActiveOrdered returns active rules in application order:
	// priority ascending, then id ascending as the documented tie-break.
	ListActiveOrdered(ctx context.Context, campgroundID snowflake.ID) ([]PricingRule, error)
}
