package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	InsertTaxRule(ctx context.Context, rule *TaxRule) error
	UpdateTaxRule(ctx context.Context, rule *TaxRule) error
	FindTaxRule(ctx context.Context, campgroundID, id snowflake.ID) (*TaxRule, error)
	DeleteTaxRule(ctx context.Context, campgroundID, id snowflake.ID) error
	ListTaxRules(ctx context.Context, campgroundID snowflake.ID) ([]TaxRule, error)
	ListActiveTaxRules(ctx context.Context, campgroundID snowflake.ID) ([]TaxRule, error)

	GetGuestFeeConfig(ctx context.Context, campgroundID snowflake.ID) (*GuestFeeConfig, error)
	UpsertGuestFeeConfig(ctx context.Context, cfg *GuestFeeConfig) error

	InsertUpsell(ctx context.Context, upsell *Upsell) error
	FindUpsell(ctx context.Context, campgroundID, id snowflake.ID) (*Upsell, error)
	DeleteUpsell(ctx context.Context, campgroundID, id snowflake.ID) error
	ListUpsells(ctx context.Context, campgroundID snowflake.ID) ([]Upsell, error)
	ListUpsellsByIDs(ctx context.Context, campgroundID snowflake.ID, ids []snowflake.ID) ([]Upsell, error)
}
