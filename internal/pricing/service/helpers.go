package service

import (
	"encoding/json"

	pricingdomain "github.com/campreserv/keepr/internal/pricing/domain"
	"github.com/campreserv/keepr/pkg/money"
)

// ruleMatches evaluates a rule's trigger against the booking context.
func ruleMatches(rule pricingdomain.PricingRule, bctx pricingdomain.Context) bool {
	switch rule.Trigger {
	case pricingdomain.TriggerOccupancyHigh:
		return bctx.HasOccupancySignal &&
			bctx.OccupancyPercent >= thresholdFloat(rule, "occupancy_threshold", pricingdomain.DefaultOccupancyHighPct)
	case pricingdomain.TriggerOccupancyLow:
		return bctx.HasOccupancySignal &&
			bctx.OccupancyPercent <= thresholdFloat(rule, "occupancy_threshold", pricingdomain.DefaultOccupancyLowPct)
	case pricingdomain.TriggerDemandSurge:
		return bctx.DemandSurge
	case pricingdomain.TriggerLastMinute:
		return bctx.LeadTimeDays <= thresholdInt(rule, "lead_time_days", pricingdomain.DefaultLastMinuteDays)
	case pricingdomain.TriggerAdvanceBooking:
		return bctx.LeadTimeDays >= thresholdInt(rule, "lead_time_days", pricingdomain.DefaultAdvanceDays)
	case pricingdomain.TriggerManual:
		// Manual rules apply while active; deactivation is the off switch.
		return true
	}
	return false
}

// applyRules runs matching rules in the order given (priority asc, id
// asc). Percent adjustments compound on the running total; flat
// adjustments add cents. The result never goes below zero.
func applyRules(baseTotalCents int64, rules []pricingdomain.PricingRule, bctx pricingdomain.Context) (int64, []pricingdomain.AppliedRule, bool) {
	running := baseTotalCents
	var applied []pricingdomain.AppliedRule

	for _, rule := range rules {
		if !ruleMatches(rule, bctx) {
			continue
		}

		var next int64
		switch rule.AdjustmentType {
		case pricingdomain.AdjustmentPercent:
			next = money.ApplyPercent(running, rule.AdjustmentValue)
		case pricingdomain.AdjustmentFlat:
			next = running + int64(rule.AdjustmentValue)
		default:
			continue
		}

		applied = append(applied, pricingdomain.AppliedRule{
			RuleID:          rule.ID,
			Name:            rule.Name,
			Trigger:         rule.Trigger,
			AdjustmentType:  rule.AdjustmentType,
			AdjustmentValue: rule.AdjustmentValue,
			DeltaCents:      next - running,
		})
		running = next
	}

	clamped := running < 0
	if clamped {
		running = 0
	}
	return running, applied, clamped
}

func thresholdFloat(rule pricingdomain.PricingRule, key string, fallback float64) float64 {
	if v, ok := metadataValue(rule, key); ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return fallback
}

func thresholdInt(rule pricingdomain.PricingRule, key string, fallback int) int {
	if v, ok := metadataValue(rule, key); ok {
		if f, ok := v.(float64); ok {
			return int(f)
		}
	}
	return fallback
}

func metadataValue(rule pricingdomain.PricingRule, key string) (any, bool) {
	if len(rule.Metadata) == 0 {
		return nil, false
	}
	var meta map[string]any
	if err := json.Unmarshal(rule.Metadata, &meta); err != nil {
		return nil, false
	}
	v, ok := meta[key]
	return v, ok
}
