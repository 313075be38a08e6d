package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	campgrounddomain "github.com/campreserv/keepr/internal/campground/domain"
	"github.com/campreserv/keepr/internal/cancellation"
	"github.com/campreserv/keepr/internal/deposit"
	feedomain "github.com/campreserv/keepr/internal/fee/domain"
	pricingdomain "github.com/campreserv/keepr/internal/pricing/domain"
	ratedomain "github.com/campreserv/keepr/internal/rate/domain"
)

const demoCampgroundName = "Pine Hollow"

// EnsureDemoCampground seeds a fully configured campground so a fresh
// install can quote and book immediately. Safe to call repeatedly.
func EnsureDemoCampground(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cg, created, err := ensureCampgroundTx(ctx, tx, node)
		if err != nil || !created {
			return err
		}
		classID, siteIDs, err := seedSitesTx(ctx, tx, node, cg.ID)
		if err != nil {
			return err
		}
		if err := seedRatesTx(ctx, tx, node, cg.ID, classID, siteIDs); err != nil {
			return err
		}
		if err := seedPricingRulesTx(ctx, tx, node, cg.ID); err != nil {
			return err
		}
		return seedFeesTx(ctx, tx, node, cg.ID)
	})
}

func ensureCampgroundTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) (*campgrounddomain.Campground, bool, error) {
	demoSlug := slug.Make(demoCampgroundName)

	var existing campgrounddomain.Campground
	err := tx.WithContext(ctx).Where("slug = ?", demoSlug).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	now := time.Now().UTC()
	pct := 25.0
	cg := campgrounddomain.Campground{
		ID:          node.Generate(),
		Name:        demoCampgroundName,
		Slug:        demoSlug,
		Timezone:    "America/Denver",
		RequiresTax: true,
		Deposit: deposit.Config{
			Rule:       deposit.RulePercent,
			Percentage: &pct,
		},
		CancellationPolicy: cancellation.Policy{
			PolicyType:  cancellation.PolicyFlexible,
			WindowHours: 48,
			FeeType:     cancellation.FeeFirstNight,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.WithContext(ctx).Create(&cg).Error; err != nil {
		return nil, false, err
	}
	return &cg, true, nil
}

func seedSitesTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node, campgroundID snowflake.ID) (snowflake.ID, []snowflake.ID, error) {
	now := time.Now().UTC()

	class := campgrounddomain.SiteClass{
		ID:           node.Generate(),
		CampgroundID: campgroundID,
		Name:         "Standard RV",
		CreatedAt:    now,
	}
	if err := tx.WithContext(ctx).Create(&class).Error; err != nil {
		return 0, nil, err
	}

	names := []string{"A1", "A2", "A3", "B1", "B2"}
	siteIDs := make([]snowflake.ID, 0, len(names))
	for _, name := range names {
		site := campgrounddomain.Site{
			ID:           node.Generate(),
			CampgroundID: campgroundID,
			SiteClassID:  class.ID,
			Name:         name,
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := tx.WithContext(ctx).Create(&site).Error; err != nil {
			return 0, nil, err
		}
		siteIDs = append(siteIDs, site.ID)
	}
	return class.ID, siteIDs, nil
}

func seedRatesTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node, campgroundID, classID snowflake.ID, siteIDs []snowflake.ID) error {
	now := time.Now().UTC()
	seasonStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	seasonEnd := seasonStart.AddDate(2, 0, 0)

	// Class-wide default rate for the whole horizon.
	classEntry := ratedomain.RateEntry{
		ID:               node.Generate(),
		CampgroundID:     campgroundID,
		SiteClassID:      &classID,
		StartDate:        seasonStart,
		EndDate:          seasonEnd,
		NightlyRateCents: 5000,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := tx.WithContext(ctx).Create(&classEntry).Error; err != nil {
		return err
	}

	// Premium override on the first site.
	if len(siteIDs) > 0 {
		siteEntry := ratedomain.RateEntry{
			ID:               node.Generate(),
			CampgroundID:     campgroundID,
			SiteID:           &siteIDs[0],
			StartDate:        seasonStart,
			EndDate:          seasonEnd,
			NightlyRateCents: 6500,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := tx.WithContext(ctx).Create(&siteEntry).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedPricingRulesTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node, campgroundID snowflake.ID) error {
	now := time.Now().UTC()
	rules := []pricingdomain.PricingRule{
		{
			ID:              node.Generate(),
			CampgroundID:    campgroundID,
			Name:            "High occupancy surge",
			Trigger:         pricingdomain.TriggerOccupancyHigh,
			AdjustmentType:  pricingdomain.AdjustmentPercent,
			AdjustmentValue: 10,
			IsActive:        true,
			Priority:        10,
		},
		{
			ID:              node.Generate(),
			CampgroundID:    campgroundID,
			Name:            "Last minute discount",
			Trigger:         pricingdomain.TriggerLastMinute,
			AdjustmentType:  pricingdomain.AdjustmentPercent,
			AdjustmentValue: -15,
			IsActive:        true,
			Priority:        20,
		},
	}
	for i := range rules {
		rules[i].CreatedAt = now
		rules[i].UpdatedAt = now
		if err := tx.WithContext(ctx).Create(&rules[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedFeesTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node, campgroundID snowflake.ID) error {
	now := time.Now().UTC()

	taxRule := feedomain.TaxRule{
		ID:           node.Generate(),
		CampgroundID: campgroundID,
		Name:         "Lodging tax",
		RatePercent:  6.5,
		AppliesTo:    feedomain.TaxAppliesLodging,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := tx.WithContext(ctx).Create(&taxRule).Error; err != nil {
		return err
	}

	feeCfg := feedomain.GuestFeeConfig{
		CampgroundID:     campgroundID,
		IncludedAdults:   2,
		IncludedChildren: 2,
		ExtraAdultCents:  500,
		ExtraChildCents:  250,
		PetCents:         300,
		UpdatedAt:        now,
	}
	if err := tx.WithContext(ctx).Create(&feeCfg).Error; err != nil {
		return err
	}

	upsells := []feedomain.Upsell{
		{ID: node.Generate(), CampgroundID: campgroundID, Name: "Firewood bundle", PriceCents: 800, Active: true, CreatedAt: now, UpdatedAt: now},
		{ID: node.Generate(), CampgroundID: campgroundID, Name: "Early check-in", PriceCents: 1500, Active: true, CreatedAt: now, UpdatedAt: now},
	}
	for i := range upsells {
		if err := tx.WithContext(ctx).Create(&upsells[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
