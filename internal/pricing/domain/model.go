// Package domain defines dynamic pricing rules and the adjuster
// contract.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Trigger is the condition under which a rule fires.
type Trigger string

const (
	TriggerOccupancyHigh  Trigger = "occupancy_high"
	TriggerOccupancyLow   Trigger = "occupancy_low"
	TriggerDemandSurge    Trigger = "demand_surge"
	TriggerLastMinute     Trigger = "last_minute"
	TriggerAdvanceBooking Trigger = "advance_booking"
	TriggerManual         Trigger = "manual"
)

func (t Trigger) Valid() bool {
	switch t {
	case TriggerOccupancyHigh, TriggerOccupancyLow, TriggerDemandSurge,
		TriggerLastMinute, TriggerAdvanceBooking, TriggerManual:
		return true
	}
	return false
}

// AdjustmentType selects how AdjustmentValue is applied.
type AdjustmentType string

const (
	AdjustmentPercent AdjustmentType = "percent"
	AdjustmentFlat    AdjustmentType = "flat"
)

func (a AdjustmentType) Valid() bool {
	return a == AdjustmentPercent || a == AdjustmentFlat
}

// Default trigger thresholds. Staff can override per rule through the
// metadata keys "occupancy_threshold" and "lead_time_days".
const (
	DefaultOccupancyHighPct = 80.0
	DefaultOccupancyLowPct  = 40.0
	DefaultLastMinuteDays   = 3
	DefaultAdvanceDays      = 60
)

// PricingRule is a staff-authored conditional adjustment. Rules compose:
// every matching active rule applies in (priority asc, id asc) order.
type PricingRule struct {
	ID              snowflake.ID   `json:"id" gorm:"primaryKey"`
	CampgroundID    snowflake.ID   `json:"campground_id" gorm:"not null;index"`
	Name            string         `json:"name" gorm:"type:text;not null"`
	Trigger         Trigger        `json:"trigger" gorm:"type:text;not null"`
	AdjustmentType  AdjustmentType `json:"adjustment_type" gorm:"type:text;not null"`
	AdjustmentValue float64        `json:"adjustment_value" gorm:"not null"`
	IsActive        bool           `json:"is_active" gorm:"not null;default:true"`
	Priority        int            `json:"priority" gorm:"not null;default:100"`
	Metadata        datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt       time.Time      `json:"created_at" gorm:"not null"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"not null"`
}

func (PricingRule) TableName() string { return "pricing_rules" }

// Context carries the booking-time signals a trigger is matched
// against. CampgroundID is passed explicitly; nothing here is read from
// ambient state.
type Context struct {
	// HasOccupancySignal reports whether OccupancyPercent carries a
	// real reading. Without one, occupancy triggers do not match: a
	// missing signal must not look like an empty campground.
	HasOccupancySignal bool
	OccupancyPercent   float64
	LeadTimeDays       int
	DemandSurge        bool
}

// AppliedRule records one adjustment taken while pricing a stay, for
// the quote breakdown.
type AppliedRule struct {
	RuleID          snowflake.ID   `json:"rule_id"`
	Name            string         `json:"name"`
	Trigger         Trigger        `json:"trigger"`
	AdjustmentType  AdjustmentType `json:"adjustment_type"`
	AdjustmentValue float64        `json:"adjustment_value"`
	DeltaCents      int64          `json:"delta_cents"`
}

// Adjustment is the adjuster output.
type Adjustment struct {
	AdjustedTotalCents int64         `json:"adjusted_total_cents"`
	DeltaCents         int64         `json:"delta_cents"`
	Applied            []AppliedRule `json:"applied"`
}
