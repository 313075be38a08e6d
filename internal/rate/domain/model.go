// Package domain contains rate configuration models and the resolver
// contract.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// RateEntry is a date-bounded nightly price for a site or a site class.
// A row with SiteID set is a site-specific override and beats the class
// default for the same night. Entries referenced by a finalized booking
// are never edited in place; staff retire them and add new ones.
type RateEntry struct {
	ID               snowflake.ID  `json:"id" gorm:"primaryKey"`
	CampgroundID     snowflake.ID  `json:"campground_id" gorm:"not null;index"`
	SiteID           *snowflake.ID `json:"site_id,omitempty" gorm:"index"`
	SiteClassID      *snowflake.ID `json:"site_class_id,omitempty" gorm:"index"`
	StartDate        time.Time     `json:"start_date" gorm:"not null"`
	EndDate          time.Time     `json:"end_date" gorm:"not null"`
	NightlyRateCents int64         `json:"nightly_rate_cents" gorm:"not null"`
	CreatedAt        time.Time     `json:"created_at" gorm:"not null"`
	UpdatedAt        time.Time     `json:"updated_at" gorm:"not null"`
}

func (RateEntry) TableName() string { return "rate_entries" }

// Covers reports whether the entry prices the given night. EndDate is
// inclusive: an entry for [Jun 1, Jun 30] prices the night of Jun 30.
func (e RateEntry) Covers(night time.Time) bool {
	return !night.Before(e.StartDate) && !night.After(e.EndDate)
}

// NightRate is one priced night of a resolved stay.
type NightRate struct {
	Night       time.Time    `json:"night"`
	RateCents   int64        `json:"rate_cents"`
	RateEntryID snowflake.ID `json:"rate_entry_id"`
}

// Resolution is the resolver output for a stay.
type Resolution struct {
	Nights         []NightRate `json:"nights"`
	BaseTotalCents int64       `json:"base_total_cents"`
}

// FirstNightCents returns the first night's rate, or 0 for an empty
// resolution.
func (r Resolution) FirstNightCents() int64 {
	if len(r.Nights) == 0 {
		return 0
	}
	return r.Nights[0].RateCents
}
