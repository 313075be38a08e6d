package domain

import "errors"

var (
	ErrInvalidTrigger        = errors.New("pricing: invalid trigger")
	ErrInvalidAdjustmentType = errors.New("pricing: invalid adjustment type")
	ErrInvalidPriority       = errors.New("pricing: priority must be non-negative")
	ErrRuleNotFound          = errors.New("pricing: rule not found")
)
