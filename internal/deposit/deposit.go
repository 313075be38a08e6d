// Package deposit derives the upfront deposit owed at booking time
// from a campground's deposit policy. Pure computation, no I/O.
package deposit

import (
	"errors"

	"github.com/campreserv/keepr/pkg/money"
)

// Rule selects how the deposit is derived from the stay total.
type Rule string

const (
	RuleNone    Rule = "none"
	RulePercent Rule = "percent"
	RuleFlat    Rule = "flat"
)

func (r Rule) Valid() bool {
	return r == RuleNone || r == RulePercent || r == RuleFlat
}

// Config is embedded on the campground record. Exactly one of
// Percentage / FlatCents is meaningful depending on Rule.
type Config struct {
	Rule       Rule     `json:"rule" gorm:"column:deposit_rule;type:text;not null;default:'none'"`
	Percentage *float64 `json:"percentage,omitempty" gorm:"column:deposit_percentage"`
	FlatCents  *int64   `json:"flat_cents,omitempty" gorm:"column:deposit_flat_cents"`
}

// ErrInvalidConfig means the rule names a value its config doesn't
// carry.
var ErrInvalidConfig = errors.New("deposit: rule requires a value that is not configured")

// Calculate returns the deposit in cents for a stay total. Percent
// deposits round half-up; flat deposits are clamped so the deposit
// never exceeds the total due.
func Calculate(totalCents int64, cfg Config) (int64, error) {
	switch cfg.Rule {
	case RuleNone, "":
		return 0, nil
	case RulePercent:
		if cfg.Percentage == nil {
			return 0, ErrInvalidConfig
		}
		return money.Clamp(money.PercentOf(totalCents, *cfg.Percentage), 0, totalCents), nil
	case RuleFlat:
		if cfg.FlatCents == nil {
			return 0, ErrInvalidConfig
		}
		return money.Clamp(*cfg.FlatCents, 0, totalCents), nil
	}
	return 0, ErrInvalidConfig
}
