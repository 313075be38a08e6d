// Package domain defines fee and tax configuration and the composer
// contract.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// TaxAppliesTo scopes which part of the subtotal a tax rule covers.
type TaxAppliesTo string

const (
	// TaxAppliesAll taxes the full post-adjustment subtotal including
	// guest fees and upsells.
	TaxAppliesAll TaxAppliesTo = "all"
	// TaxAppliesLodging taxes the adjusted lodging amount only.
	TaxAppliesLodging TaxAppliesTo = "lodging"
)

func (a TaxAppliesTo) Valid() bool {
	return a == TaxAppliesAll || a == TaxAppliesLodging
}

// TaxRule is either a percentage (RatePercent) or a flat per-stay
// amount (AmountCents). Tax is always exclusive: added on top of the
// post-discount subtotal, never backed out of it.
type TaxRule struct {
	ID           snowflake.ID `json:"id" gorm:"primaryKey"`
	CampgroundID snowflake.ID `json:"campground_id" gorm:"not null;index"`
	Name         string       `json:"name" gorm:"type:text;not null"`
	RatePercent  float64      `json:"rate_percent" gorm:"not null;default:0"`
	AmountCents  int64        `json:"amount_cents" gorm:"not null;default:0"`
	AppliesTo    TaxAppliesTo `json:"applies_to" gorm:"type:text;not null;default:'all'"`
	IsActive     bool         `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time    `json:"created_at" gorm:"not null"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"not null"`
}

func (TaxRule) TableName() string { return "tax_rules" }

// GuestFeeConfig holds the per-campground flat per-unit guest fees.
// Occupants up to the included counts are free.
type GuestFeeConfig struct {
	CampgroundID     snowflake.ID `json:"campground_id" gorm:"primaryKey"`
	IncludedAdults   int          `json:"included_adults" gorm:"not null;default:2"`
	IncludedChildren int          `json:"included_children" gorm:"not null;default:2"`
	ExtraAdultCents  int64        `json:"extra_adult_cents" gorm:"not null;default:0"`
	ExtraChildCents  int64        `json:"extra_child_cents" gorm:"not null;default:0"`
	PetCents         int64        `json:"pet_cents" gorm:"not null;default:0"`
	UpdatedAt        time.Time    `json:"updated_at" gorm:"not null"`
}

func (GuestFeeConfig) TableName() string { return "guest_fee_configs" }

// Upsell is an optional add-on (firewood bundle, early check-in, ...).
type Upsell struct {
	ID           snowflake.ID `json:"id" gorm:"primaryKey"`
	CampgroundID snowflake.ID `json:"campground_id" gorm:"not null;index"`
	Name         string       `json:"name" gorm:"type:text;not null"`
	PriceCents   int64        `json:"price_cents" gorm:"not null"`
	Active       bool         `json:"active" gorm:"not null;default:true"`
	CreatedAt    time.Time    `json:"created_at" gorm:"not null"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"not null"`
}

func (Upsell) TableName() string { return "upsells" }

// Occupants are the stay's guest counts.
type Occupants struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Pets     int `json:"pets"`
}

// FeeLine itemizes one fee or tax charge in the breakdown.
type FeeLine struct {
	Label       string `json:"label"`
	AmountCents int64  `json:"amount_cents"`
}

// Breakdown is the composer output. TotalCents = SubtotalCents +
// TaxCents; SubtotalCents = adjusted lodging + FeesCents + upsells.
type Breakdown struct {
	SubtotalCents int64     `json:"subtotal_cents"`
	FeesCents     int64     `json:"fees_cents"`
	UpsellCents   int64     `json:"upsell_cents"`
	TaxCents      int64     `json:"tax_cents"`
	TotalCents    int64     `json:"total_cents"`
	FeeLines      []FeeLine `json:"fee_lines,omitempty"`
	TaxLines      []FeeLine `json:"tax_lines,omitempty"`
}
