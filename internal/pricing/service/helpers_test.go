package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	pricingdomain "github.com/campreserv/keepr/internal/pricing/domain"
)

func TestRuleMatchesOccupancyHigh(t *testing.T) {
	rule := pricingdomain.PricingRule{Trigger: pricingdomain.TriggerOccupancyHigh}

	require.False(t, ruleMatches(rule, pricingdomain.Context{HasOccupancySignal: true, OccupancyPercent: 79.9}))
	require.True(t, ruleMatches(rule, pricingdomain.Context{HasOccupancySignal: true, OccupancyPercent: 80}))
	require.True(t, ruleMatches(rule, pricingdomain.Context{HasOccupancySignal: true, OccupancyPercent: 100}))
}

func TestRuleMatchesMetadataThresholdOverride(t *testing.T) {
	rule := pricingdomain.PricingRule{
		Trigger:  pricingdomain.TriggerOccupancyHigh,
		Metadata: datatypes.JSON(`{"occupancy_threshold": 60}`),
	}

	require.True(t, ruleMatches(rule, pricingdomain.Context{HasOccupancySignal: true, OccupancyPercent: 65}))
	require.False(t, ruleMatches(rule, pricingdomain.Context{HasOccupancySignal: true, OccupancyPercent: 55}))
}

func TestRuleMatchesLeadTimeTriggers(t *testing.T) {
	lastMinute := pricingdomain.PricingRule{Trigger: pricingdomain.TriggerLastMinute}
	advance := pricingdomain.PricingRule{Trigger: pricingdomain.TriggerAdvanceBooking}

	require.True(t, ruleMatches(lastMinute, pricingdomain.Context{LeadTimeDays: 3}))
	require.False(t, ruleMatches(lastMinute, pricingdomain.Context{LeadTimeDays: 4}))

	require.True(t, ruleMatches(advance, pricingdomain.Context{LeadTimeDays: 60}))
	require.False(t, ruleMatches(advance, pricingdomain.Context{LeadTimeDays: 59}))
}

func TestRuleMatchesRequiresOccupancySignal(t *testing.T) {
	low := pricingdomain.PricingRule{Trigger: pricingdomain.TriggerOccupancyLow}
	high := pricingdomain.PricingRule{Trigger: pricingdomain.TriggerOccupancyHigh}

	// Zero occupancy without a signal is "unknown", not "empty".
	require.False(t, ruleMatches(low, pricingdomain.Context{OccupancyPercent: 0}))
	require.False(t, ruleMatches(high, pricingdomain.Context{OccupancyPercent: 100}))

	require.True(t, ruleMatches(low, pricingdomain.Context{HasOccupancySignal: true, OccupancyPercent: 0}))
}

func TestApplyRulesSkipsOccupancyDiscountWithoutSignal(t *testing.T) {
	rules := []pricingdomain.PricingRule{
		{
			ID:              1,
			Name:            "Low season discount",
			Trigger:         pricingdomain.TriggerOccupancyLow,
			AdjustmentType:  pricingdomain.AdjustmentPercent,
			AdjustmentValue: -20,
		},
	}

	total, applied, _ := applyRules(10000, rules, pricingdomain.Context{})
	require.Equal(t, int64(10000), total)
	require.Empty(t, applied)

	total, applied, _ = applyRules(10000, rules, pricingdomain.Context{HasOccupancySignal: true, OccupancyPercent: 20})
	require.Equal(t, int64(8000), total)
	require.Len(t, applied, 1)
}

func TestApplyRulesPercentSurge(t *testing.T) {
	rules := []pricingdomain.PricingRule{
		{
			ID:              1,
			Name:            "High occupancy surge",
			Trigger:         pricingdomain.TriggerOccupancyHigh,
			AdjustmentType:  pricingdomain.AdjustmentPercent,
			AdjustmentValue: 10,
		},
	}

	total, applied, clamped := applyRules(15000, rules, pricingdomain.Context{HasOccupancySignal: true, OccupancyPercent: 85})
	require.Equal(t, int64(16500), total)
	require.False(t, clamped)
	require.Len(t, applied, 1)
	require.Equal(t, int64(1500), applied[0].DeltaCents)
}

func TestApplyRulesCompoundsInOrder(t *testing.T) {
	rules := []pricingdomain.PricingRule{
		{
			ID:              1,
			Trigger:         pricingdomain.TriggerOccupancyHigh,
			AdjustmentType:  pricingdomain.AdjustmentPercent,
			AdjustmentValue: 10,
		},
		{
			ID:              2,
			Trigger:         pricingdomain.TriggerManual,
			AdjustmentType:  pricingdomain.AdjustmentFlat,
			AdjustmentValue: -500,
		},
	}

	// 10000 * 1.10 = 11000, then -500 flat.
	total, applied, clamped := applyRules(10000, rules, pricingdomain.Context{HasOccupancySignal: true, OccupancyPercent: 90})
	require.Equal(t, int64(10500), total)
	require.False(t, clamped)
	require.Len(t, applied, 2)
}

func TestApplyRulesSkipsNonMatching(t *testing.T) {
	rules := []pricingdomain.PricingRule{
		{
			ID:              1,
			Trigger:         pricingdomain.TriggerDemandSurge,
			AdjustmentType:  pricingdomain.AdjustmentPercent,
			AdjustmentValue: 25,
		},
	}

	total, applied, _ := applyRules(10000, rules, pricingdomain.Context{DemandSurge: false})
	require.Equal(t, int64(10000), total)
	require.Empty(t, applied)
}

func TestApplyRulesClampsAtZero(t *testing.T) {
	rules := []pricingdomain.PricingRule{
		{
			ID:              1,
			Trigger:         pricingdomain.TriggerManual,
			AdjustmentType:  pricingdomain.AdjustmentFlat,
			AdjustmentValue: -20000,
		},
	}

	total, applied, clamped := applyRules(10000, rules, pricingdomain.Context{})
	require.Equal(t, int64(0), total)
	require.True(t, clamped)
	require.Len(t, applied, 1)
}

func TestApplyRulesHalfUpRounding(t *testing.T) {
	rules := []pricingdomain.PricingRule{
		{
			ID:              1,
			Trigger:         pricingdomain.TriggerManual,
			AdjustmentType:  pricingdomain.AdjustmentPercent,
			AdjustmentValue: 5,
		},
	}

	// 1010 * 1.05 = 1060.50 rounds half-up to 1061.
	total, _, _ := applyRules(1010, rules, pricingdomain.Context{})
	require.Equal(t, int64(1061), total)
}
