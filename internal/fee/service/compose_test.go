package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	feedomain "github.com/campreserv/keepr/internal/fee/domain"
)

func TestComposeBreakdownNoConfig(t *testing.T) {
	b := composeBreakdown(15000, feedomain.Occupants{Adults: 2}, nil, nil, nil)

	require.Equal(t, int64(0), b.FeesCents)
	require.Equal(t, int64(15000), b.SubtotalCents)
	require.Equal(t, int64(0), b.TaxCents)
	require.Equal(t, int64(15000), b.TotalCents)
}

func TestComposeBreakdownGuestFees(t *testing.T) {
	feeCfg := &feedomain.GuestFeeConfig{
		IncludedAdults:   2,
		IncludedChildren: 2,
		ExtraAdultCents:  500,
		ExtraChildCents:  250,
		PetCents:         300,
	}
	occupants := feedomain.Occupants{Adults: 4, Children: 3, Pets: 2}

	b := composeBreakdown(15000, occupants, feeCfg, nil, nil)

	// 2 extra adults, 1 extra child, 2 pets.
	require.Equal(t, int64(2*500+250+2*300), b.FeesCents)
	require.Len(t, b.FeeLines, 3)
	require.Equal(t, int64(15000)+b.FeesCents, b.SubtotalCents)
}

func TestComposeBreakdownIncludedOccupantsAreFree(t *testing.T) {
	feeCfg := &feedomain.GuestFeeConfig{
		IncludedAdults:   2,
		IncludedChildren: 2,
		ExtraAdultCents:  500,
		ExtraChildCents:  250,
	}

	b := composeBreakdown(15000, feedomain.Occupants{Adults: 2, Children: 1}, feeCfg, nil, nil)
	require.Equal(t, int64(0), b.FeesCents)
	require.Empty(t, b.FeeLines)
}

func TestComposeBreakdownUpsells(t *testing.T) {
	upsells := []feedomain.Upsell{
		{Name: "Firewood bundle", PriceCents: 800},
		{Name: "Early check-in", PriceCents: 1500},
	}

	b := composeBreakdown(15000, feedomain.Occupants{}, nil, upsells, nil)
	require.Equal(t, int64(2300), b.UpsellCents)
	require.Equal(t, int64(17300), b.SubtotalCents)
}

func TestComposeBreakdownExclusiveTaxOnSubtotal(t *testing.T) {
	taxRules := []feedomain.TaxRule{
		{Name: "Sales tax", RatePercent: 10, AppliesTo: feedomain.TaxAppliesAll},
	}
	upsells := []feedomain.Upsell{{Name: "Firewood", PriceCents: 1000}}

	b := composeBreakdown(10000, feedomain.Occupants{}, nil, upsells, taxRules)

	// Tax is exclusive: 10% of the 11000 subtotal, added on top.
	require.Equal(t, int64(11000), b.SubtotalCents)
	require.Equal(t, int64(1100), b.TaxCents)
	require.Equal(t, int64(12100), b.TotalCents)
}

func TestComposeBreakdownLodgingOnlyTax(t *testing.T) {
	taxRules := []feedomain.TaxRule{
		{Name: "Lodging tax", RatePercent: 6.5, AppliesTo: feedomain.TaxAppliesLodging},
	}
	upsells := []feedomain.Upsell{{Name: "Firewood", PriceCents: 1000}}

	b := composeBreakdown(10000, feedomain.Occupants{}, nil, upsells, taxRules)

	// Taxes the adjusted lodging amount only, not the upsell.
	require.Equal(t, int64(650), b.TaxCents)
	require.Equal(t, int64(11650), b.TotalCents)
}

func TestComposeBreakdownFlatPlusPercentTax(t *testing.T) {
	taxRules := []feedomain.TaxRule{
		{Name: "Resort fee tax", RatePercent: 5, AmountCents: 200, AppliesTo: feedomain.TaxAppliesAll},
	}

	b := composeBreakdown(10000, feedomain.Occupants{}, nil, nil, taxRules)
	require.Equal(t, int64(700), b.TaxCents)
	require.Len(t, b.TaxLines, 1)
}

func TestComposeBreakdownSkipsZeroTax(t *testing.T) {
	taxRules := []feedomain.TaxRule{
		{Name: "Dormant levy", RatePercent: 0, AmountCents: 0},
	}

	b := composeBreakdown(10000, feedomain.Occupants{}, nil, nil, taxRules)
	require.Empty(t, b.TaxLines)
	require.Equal(t, int64(0), b.TaxCents)
}

func TestComposeBreakdownTaxRoundsHalfUp(t *testing.T) {
	taxRules := []feedomain.TaxRule{
		{Name: "Sales tax", RatePercent: 7.5, AppliesTo: feedomain.TaxAppliesAll},
	}

	// 7.5% of 1010 = 75.75 rounds to 76.
	b := composeBreakdown(1010, feedomain.Occupants{}, nil, nil, taxRules)
	require.Equal(t, int64(76), b.TaxCents)
}
