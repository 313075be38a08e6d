// Package cancellation evaluates a campground's cancellation policy
// against a reservation snapshot. Evaluation is pure and idempotent:
// the same snapshot and minute-rounded timestamp always produce the
// same result, which guest-facing refund previews rely on.
package cancellation

import (
	"time"

	"github.com/campreserv/keepr/pkg/money"
)

// PolicyType is the staff-facing preset name. Presets only prefill the
// window and fee fields; evaluation reads the fields, never the name.
type PolicyType string

const (
	PolicyFlexible PolicyType = "flexible"
	PolicyModerate PolicyType = "moderate"
	PolicyStrict   PolicyType = "strict"
	PolicyCustom   PolicyType = "custom"
)

func (p PolicyType) Valid() bool {
	switch p {
	case PolicyFlexible, PolicyModerate, PolicyStrict, PolicyCustom:
		return true
	}
	return false
}

// FeeType determines which fee field is authoritative; the other is
// ignored.
type FeeType string

const (
	FeeNone       FeeType = "none"
	FeeFlat       FeeType = "flat"
	FeePercent    FeeType = "percent"
	FeeFirstNight FeeType = "first_night"
)

func (f FeeType) Valid() bool {
	switch f {
	case FeeNone, FeeFlat, FeePercent, FeeFirstNight:
		return true
	}
	return false
}

// Policy is embedded on the campground record and snapshotted onto the
// reservation at confirmation, so later edits never change the terms of
// an existing booking.
type Policy struct {
	PolicyType   PolicyType `json:"policy_type" gorm:"column:cancellation_policy_type;type:text;not null;default:'flexible'"`
	WindowHours  int        `json:"window_hours" gorm:"column:cancellation_window_hours;not null;default:48"`
	FeeType      FeeType    `json:"fee_type" gorm:"column:cancellation_fee_type;type:text;not null;default:'none'"`
	FeeFlatCents *int64     `json:"fee_flat_cents,omitempty" gorm:"column:cancellation_fee_flat_cents"`
	FeePercent   *float64   `json:"fee_percent,omitempty" gorm:"column:cancellation_fee_percent"`
	Notes        string     `json:"notes,omitempty" gorm:"column:cancellation_notes;type:text"`
}

// Snapshot carries the reservation facts evaluation needs.
type Snapshot struct {
	TotalCents      int64
	PaidCents       int64
	ArrivalDate     time.Time
	Nights          int
	FirstNightCents int64 // 0 when the original rate breakdown is unavailable
}

// Evaluation is the evaluator output.
type Evaluation struct {
	FeeCents         int64 `json:"fee_cents"`
	RefundCents      int64 `json:"refund_cents"`
	WithinFreeWindow bool  `json:"within_free_window"`
}

// Evaluate applies the policy to the snapshot at the given time. The
// timestamp is rounded down to the minute before the window comparison
// so repeated previews within the same minute are bit-identical.
// hoursUntilArrival exactly equal to WindowHours is inside the free
// window.
func Evaluate(snap Snapshot, policy Policy, now time.Time) Evaluation {
	now = now.UTC().Truncate(time.Minute)

	hoursUntilArrival := snap.ArrivalDate.Sub(now).Hours()
	if hoursUntilArrival >= float64(policy.WindowHours) {
		return Evaluation{
			FeeCents:         0,
			RefundCents:      maxInt64(0, snap.PaidCents),
			WithinFreeWindow: true,
		}
	}

	fee := feeFor(snap, policy)
	return Evaluation{
		FeeCents:         fee,
		RefundCents:      maxInt64(0, snap.PaidCents-fee),
		WithinFreeWindow: false,
	}
}

func feeFor(snap Snapshot, policy Policy) int64 {
	switch policy.FeeType {
	case FeeFlat:
		if policy.FeeFlatCents == nil {
			return 0
		}
		return *policy.FeeFlatCents
	case FeePercent:
		if policy.FeePercent == nil {
			return 0
		}
		return money.PercentOf(snap.TotalCents, *policy.FeePercent)
	case FeeFirstNight:
		if snap.FirstNightCents > 0 {
			return snap.FirstNightCents
		}
		if snap.Nights > 0 {
			// Rate breakdown lost; an even split stands in for the
			// first night.
			return money.Split(snap.TotalCents, snap.Nights)
		}
		return 0
	}
	return 0
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
