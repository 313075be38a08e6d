package domain

import "errors"

var (
	// ErrTaxRuleMissing is a hard misconfiguration: the campground
	// requires tax but has zero active tax rules. Callers surface a
	// setup-required error to staff rather than silently charging no
	// tax.
	ErrTaxRuleMissing = errors.New("fee: campground requires tax but has no active tax rules")

	ErrInvalidTaxRule  = errors.New("fee: invalid tax rule")
	ErrTaxRuleNotFound = errors.New("fee: tax rule not found")
	ErrInvalidUpsell   = errors.New("fee: invalid upsell")
	ErrUpsellNotFound  = errors.New("fee: upsell not found")
)
