// Package domain defines the ephemeral price quote. A quote is
// computed fresh per request and never cached across configuration
// changes; when a booking is confirmed its amounts are snapshotted onto
// the reservation row.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"

	feedomain "github.com/campreserv/keepr/internal/fee/domain"
	pricingdomain "github.com/campreserv/keepr/internal/pricing/domain"
	ratedomain "github.com/campreserv/keepr/internal/rate/domain"
)

type Request struct {
	CampgroundID snowflake.ID
	SiteID       snowflake.ID
	Arrival      time.Time
	Departure    time.Time
	Occupants    feedomain.Occupants
	UpsellIDs    []snowflake.ID
}

type Quote struct {
	// Reference is a ULID handed to the client for correlating the
	// preview with the booking call. Not a persistence key.
	Reference string `json:"reference"`

	CampgroundID snowflake.ID `json:"campground_id"`
	SiteID       snowflake.ID `json:"site_id"`
	Arrival      time.Time    `json:"arrival"`
	Departure    time.Time    `json:"departure"`
	Nights       int          `json:"nights"`

	BaseTotalCents   int64 `json:"base_total_cents"`
	AdjustmentsCents int64 `json:"adjustments_cents"`
	FeesCents        int64 `json:"fees_cents"`
	UpsellCents      int64 `json:"upsell_cents"`
	SubtotalCents    int64 `json:"subtotal_cents"`
	TaxCents         int64 `json:"tax_cents"`
	TotalCents       int64 `json:"total_cents"`
	DepositCents     int64 `json:"deposit_cents"`

	NightRates   []ratedomain.NightRate      `json:"night_rates,omitempty"`
	AppliedRules []pricingdomain.AppliedRule `json:"applied_rules,omitempty"`
	FeeLines     []feedomain.FeeLine         `json:"fee_lines,omitempty"`
	TaxLines     []feedomain.FeeLine         `json:"tax_lines,omitempty"`

	ComputedAt time.Time `json:"computed_at"`
}

// FirstNightCents is carried into the reservation snapshot for
// first-night cancellation fees.
func (q Quote) FirstNightCents() int64 {
	if len(q.NightRates) == 0 {
		return 0
	}
	return q.NightRates[0].RateCents
}
