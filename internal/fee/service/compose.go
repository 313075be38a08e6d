package service

import (
	feedomain "github.com/campreserv/keepr/internal/fee/domain"
	"github.com/campreserv/keepr/pkg/money"
)

// composeBreakdown is the pure composition step: guest fees, then
// upsells, then exclusive tax on the resulting subtotal.
func composeBreakdown(
	adjustedTotalCents int64,
	occupants feedomain.Occupants,
	feeCfg *feedomain.GuestFeeConfig,
	upsells []feedomain.Upsell,
	taxRules []feedomain.TaxRule,
) *feedomain.Breakdown {
	b := &feedomain.Breakdown{}

	if feeCfg != nil {
		if extra := occupants.Adults - feeCfg.IncludedAdults; extra > 0 && feeCfg.ExtraAdultCents > 0 {
			b.FeeLines = append(b.FeeLines, feedomain.FeeLine{
				Label:       "extra adults",
				AmountCents: int64(extra) * feeCfg.ExtraAdultCents,
			})
		}
		if extra := occupants.Children - feeCfg.IncludedChildren; extra > 0 && feeCfg.ExtraChildCents > 0 {
			b.FeeLines = append(b.FeeLines, feedomain.FeeLine{
				Label:       "extra children",
				AmountCents: int64(extra) * feeCfg.ExtraChildCents,
			})
		}
		if occupants.Pets > 0 && feeCfg.PetCents > 0 {
			b.FeeLines = append(b.FeeLines, feedomain.FeeLine{
				Label:       "pets",
				AmountCents: int64(occupants.Pets) * feeCfg.PetCents,
			})
		}
	}
	for _, line := range b.FeeLines {
		b.FeesCents += line.AmountCents
	}

	for _, upsell := range upsells {
		b.UpsellCents += upsell.PriceCents
	}

	b.SubtotalCents = adjustedTotalCents + b.FeesCents + b.UpsellCents

	for _, rule := range taxRules {
		base := b.SubtotalCents
		if rule.AppliesTo == feedomain.TaxAppliesLodging {
			base = adjustedTotalCents
		}

		amount := rule.AmountCents
		if rule.RatePercent > 0 {
			amount += money.PercentOf(base, rule.RatePercent)
		}
		if amount == 0 {
			continue
		}
		b.TaxLines = append(b.TaxLines, feedomain.FeeLine{Label: rule.Name, AmountCents: amount})
		b.TaxCents += amount
	}

	b.TotalCents = b.SubtotalCents + b.TaxCents
	return b
}
