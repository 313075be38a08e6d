package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/bwmarrin/snowflake"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	campgrounddomain "github.com/campreserv/keepr/internal/campground/domain"
	"github.com/campreserv/keepr/internal/clock"
	"github.com/campreserv/keepr/internal/deposit"
	feedomain "github.com/campreserv/keepr/internal/fee/domain"
	pricingdomain "github.com/campreserv/keepr/internal/pricing/domain"
	quotedomain "github.com/campreserv/keepr/internal/quote/domain"
	ratedomain "github.com/campreserv/keepr/internal/rate/domain"
)

type stubCampgroundSvc struct {
	campgrounddomain.Service
	campground *campgrounddomain.Campground
	site       *campgrounddomain.Site
}

func (s stubCampgroundSvc) Get(context.Context, snowflake.ID) (*campgrounddomain.Campground, error) {
	return s.campground, nil
}

func (s stubCampgroundSvc) GetSite(context.Context, snowflake.ID, snowflake.ID) (*campgrounddomain.Site, error) {
	return s.site, nil
}

type stubRateSvc struct {
	ratedomain.Service
	resolution *ratedomain.Resolution
	err        error
}

func (s stubRateSvc) Resolve(context.Context, snowflake.ID, snowflake.ID, snowflake.ID, time.Time, time.Time) (*ratedomain.Resolution, error) {
	return s.resolution, s.err
}

type stubPricingSvc struct {
	pricingdomain.Service
	gotContext pricingdomain.Context
	adjustment *pricingdomain.Adjustment
}

func (s *stubPricingSvc) Adjust(_ context.Context, _ snowflake.ID, base int64, bctx pricingdomain.Context) (*pricingdomain.Adjustment, error) {
	s.gotContext = bctx
	if s.adjustment != nil {
		return s.adjustment, nil
	}
	return &pricingdomain.Adjustment{AdjustedTotalCents: base}, nil
}

type stubFeeSvc struct {
	feedomain.Service
	breakdown *feedomain.Breakdown
	err       error
}

func (s stubFeeSvc) Compose(_ context.Context, req feedomain.ComposeRequest) (*feedomain.Breakdown, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.breakdown != nil {
		return s.breakdown, nil
	}
	return &feedomain.Breakdown{
		SubtotalCents: req.AdjustedTotalCents,
		TotalCents:    req.AdjustedTotalCents,
	}, nil
}

func testCampground() *campgrounddomain.Campground {
	pct := 25.0
	return &campgrounddomain.Campground{
		ID:          1,
		Name:        "Pine Hollow",
		RequiresTax: false,
		Deposit:     deposit.Config{Rule: deposit.RulePercent, Percentage: &pct},
	}
}

func threeNights() *ratedomain.Resolution {
	arrival := time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC)
	res := &ratedomain.Resolution{}
	for i := 0; i < 3; i++ {
		res.Nights = append(res.Nights, ratedomain.NightRate{
			Night:     arrival.AddDate(0, 0, i),
			RateCents: 5000,
		})
		res.BaseTotalCents += 5000
	}
	return res
}

func TestComputeAssemblesQuote(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	pricingSvc := &stubPricingSvc{
		adjustment: &pricingdomain.Adjustment{AdjustedTotalCents: 16500, DeltaCents: 1500},
	}

	svc := &Service{
		log:           zap.NewNop(),
		clock:         clock.Fixed{T: now},
		campgroundSvc: stubCampgroundSvc{campground: testCampground(), site: &campgrounddomain.Site{ID: 2, SiteClassID: 3}},
		rateSvc:       stubRateSvc{resolution: threeNights()},
		pricingSvc:    pricingSvc,
		feeSvc: stubFeeSvc{breakdown: &feedomain.Breakdown{
			SubtotalCents: 16500,
			TaxCents:      1073,
			TotalCents:    17573,
		}},
	}

	quote, err := svc.Compute(context.Background(), quotedomain.Request{
		CampgroundID: 1,
		SiteID:       2,
		Arrival:      time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
		Departure:    time.Date(2026, 7, 7, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NotEmpty(t, quote.Reference)
	require.Equal(t, 3, quote.Nights)
	require.Equal(t, int64(15000), quote.BaseTotalCents)
	require.Equal(t, int64(1500), quote.AdjustmentsCents)
	require.Equal(t, int64(1073), quote.TaxCents)
	require.Equal(t, int64(17573), quote.TotalCents)

	// 25% of the tax-inclusive total, rounded half-up.
	require.Equal(t, int64(4393), quote.DepositCents)
	require.Equal(t, int64(5000), quote.FirstNightCents())
	require.Equal(t, now, quote.ComputedAt)
}

func TestComputePassesLeadTimeToPricing(t *testing.T) {
	now := time.Date(2026, 7, 2, 9, 0, 0, 0, time.UTC)
	pricingSvc := &stubPricingSvc{}

	svc := &Service{
		log:           zap.NewNop(),
		clock:         clock.Fixed{T: now},
		campgroundSvc: stubCampgroundSvc{campground: testCampground(), site: &campgrounddomain.Site{ID: 2, SiteClassID: 3}},
		rateSvc:       stubRateSvc{resolution: threeNights()},
		pricingSvc:    pricingSvc,
		feeSvc:        stubFeeSvc{},
	}

	_, err := svc.Compute(context.Background(), quotedomain.Request{
		CampgroundID: 1,
		SiteID:       2,
		Arrival:      time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
		Departure:    time.Date(2026, 7, 7, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Equal(t, 2, pricingSvc.gotContext.LeadTimeDays)

	// Missing signal store means an unknown occupancy, not zero.
	require.False(t, pricingSvc.gotContext.HasOccupancySignal)
	require.Equal(t, 0.0, pricingSvc.gotContext.OccupancyPercent)
	require.False(t, pricingSvc.gotContext.DemandSurge)
}

func TestComputeCachesQuoteByReference(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := &Service{
		log:           zap.NewNop(),
		clock:         clock.Fixed{T: now},
		campgroundSvc: stubCampgroundSvc{campground: testCampground(), site: &campgrounddomain.Site{ID: 2, SiteClassID: 3}},
		rateSvc:       stubRateSvc{resolution: threeNights()},
		pricingSvc:    &stubPricingSvc{},
		feeSvc:        stubFeeSvc{},
		rdb:           rdb,
		cacheTTL:      15 * time.Minute,
	}

	quote, err := svc.Compute(context.Background(), quotedomain.Request{
		CampgroundID: 1,
		SiteID:       2,
		Arrival:      time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
		Departure:    time.Date(2026, 7, 7, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	cached, err := svc.GetByReference(context.Background(), quote.Reference)
	require.NoError(t, err)
	require.Equal(t, quote.Reference, cached.Reference)
	require.Equal(t, quote.TotalCents, cached.TotalCents)
	require.Equal(t, quote.DepositCents, cached.DepositCents)

	mr.FastForward(16 * time.Minute)
	_, err = svc.GetByReference(context.Background(), quote.Reference)
	require.ErrorIs(t, err, quotedomain.ErrNotFound)

	_, err = svc.GetByReference(context.Background(), "01UNKNOWNREFERENCE00000000")
	require.ErrorIs(t, err, quotedomain.ErrNotFound)
}

func TestGetByReferenceWithoutCache(t *testing.T) {
	svc := &Service{log: zap.NewNop()}

	_, err := svc.GetByReference(context.Background(), "anything")
	require.ErrorIs(t, err, quotedomain.ErrNotFound)
}

func TestComputePropagatesRateFailure(t *testing.T) {
	svc := &Service{
		log:           zap.NewNop(),
		clock:         clock.Fixed{T: time.Now()},
		campgroundSvc: stubCampgroundSvc{campground: testCampground(), site: &campgrounddomain.Site{ID: 2, SiteClassID: 3}},
		rateSvc:       stubRateSvc{err: ratedomain.ErrNoRateConfigured},
		pricingSvc:    &stubPricingSvc{},
		feeSvc:        stubFeeSvc{},
	}

	_, err := svc.Compute(context.Background(), quotedomain.Request{CampgroundID: 1, SiteID: 2})
	require.ErrorIs(t, err, ratedomain.ErrNoRateConfigured)
}
