// Package domain contains the reservation aggregate and its status
// machine.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/campreserv/keepr/internal/cancellation"
)

// Status is the reservation lifecycle state. Forward transitions are
// Pending→Confirmed→CheckedIn→CheckedOut; Cancelled is reachable from
// Pending and Confirmed only.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

// Blocks reports whether a reservation in this status holds its site
// against other bookings.
func (s Status) Blocks() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn:
		return true
	}
	return false
}

// CanCancel reports whether cancellation is permitted from this status.
func (s Status) CanCancel() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo validates a forward status move.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCheckedIn || next == StatusCancelled
	case StatusCheckedIn:
		return next == StatusCheckedOut
	}
	return false
}

// Reservation persists a stay plus the quote and policy snapshot taken
// at booking time. Later configuration edits never reprice or re-term
// an existing row.
type Reservation struct {
	ID           snowflake.ID `json:"id" gorm:"primaryKey"`
	CampgroundID snowflake.ID `json:"campground_id" gorm:"not null;index"`
	SiteID       snowflake.ID `json:"site_id" gorm:"not null;index"`

	GuestName  string `json:"guest_name" gorm:"type:text;not null"`
	GuestEmail string `json:"guest_email" gorm:"type:text;not null"`

	Arrival   time.Time `json:"arrival" gorm:"not null;index"`
	Departure time.Time `json:"departure" gorm:"not null"`
	Nights    int       `json:"nights" gorm:"not null"`
	Adults    int       `json:"adults" gorm:"not null;default:0"`
	Children  int       `json:"children" gorm:"not null;default:0"`
	Pets      int       `json:"pets" gorm:"not null;default:0"`

	Status Status `json:"status" gorm:"type:text;not null;index"`

	// Quote snapshot.
	QuoteReference   string `json:"quote_reference" gorm:"type:text;not null"`
	BaseTotalCents   int64  `json:"base_total_cents" gorm:"not null"`
	AdjustmentsCents int64  `json:"adjustments_cents" gorm:"not null"`
	FeesCents        int64  `json:"fees_cents" gorm:"not null"`
	TaxCents         int64  `json:"tax_cents" gorm:"not null"`
	TotalCents       int64  `json:"total_cents" gorm:"not null"`
	DepositCents     int64  `json:"deposit_cents" gorm:"not null"`
	FirstNightCents  int64  `json:"first_night_cents" gorm:"not null;default:0"`

	// Cancellation policy snapshot taken at creation.
	Policy cancellation.Policy `json:"policy" gorm:"embedded"`

	PaidCents            int64      `json:"paid_cents" gorm:"not null;default:0"`
	RefundedCents        int64      `json:"refunded_cents" gorm:"not null;default:0"`
	CancellationFeeCents int64      `json:"cancellation_fee_cents" gorm:"not null;default:0"`
	CancelledAt          *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

func (Reservation) TableName() string { return "reservations" }

// CancellationSnapshot builds the evaluator input from the persisted
// row.
func (r Reservation) CancellationSnapshot() cancellation.Snapshot {
	return cancellation.Snapshot{
		TotalCents:      r.TotalCents,
		PaidCents:       r.PaidCents,
		ArrivalDate:     r.Arrival,
		Nights:          r.Nights,
		FirstNightCents: r.FirstNightCents,
	}
}
