package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	campgrounddomain "github.com/campreserv/keepr/internal/campground/domain"
	"github.com/campreserv/keepr/internal/clock"
	"github.com/campreserv/keepr/internal/config"
	"github.com/campreserv/keepr/internal/deposit"
	feedomain "github.com/campreserv/keepr/internal/fee/domain"
	"github.com/campreserv/keepr/internal/observability"
	"github.com/campreserv/keepr/internal/occupancy"
	pricingdomain "github.com/campreserv/keepr/internal/pricing/domain"
	quotedomain "github.com/campreserv/keepr/internal/quote/domain"
	ratedomain "github.com/campreserv/keepr/internal/rate/domain"
)

const quoteKeyFmt = "keepr:quote:%s"

type Service struct {
	log     *zap.Logger
	clock   clock.Clock
	metrics *observability.Metrics

	campgroundSvc campgrounddomain.Service
	rateSvc       ratedomain.Service
	pricingSvc    pricingdomain.Service
	feeSvc        feedomain.Service
	signals       *occupancy.Store

	rdb      *redis.Client
	cacheTTL time.Duration
}

type ServiceParam struct {
	fx.In

	Cfg     config.Config
	Log     *zap.Logger
	Clock   clock.Clock
	Metrics *observability.Metrics

	CampgroundSvc campgrounddomain.Service
	RateSvc       ratedomain.Service
	PricingSvc    pricingdomain.Service
	FeeSvc        feedomain.Service
	Signals       *occupancy.Store `optional:"true"`
	Redis         *redis.Client    `optional:"true"`
}

func NewService(p ServiceParam) quotedomain.Service {
	return &Service{
		log:     p.Log.Named("quote.service"),
		clock:   p.Clock,
		metrics: p.Metrics,

		campgroundSvc: p.CampgroundSvc,
		rateSvc:       p.RateSvc,
		pricingSvc:    p.PricingSvc,
		feeSvc:        p.FeeSvc,
		signals:       p.Signals,

		rdb:      p.Redis,
		cacheTTL: p.Cfg.Booking.QuoteTTL,
	}
}

func (s *Service) Compute(ctx context.Context, req quotedomain.Request) (*quotedomain.Quote, error) {
	started := time.Now()
	quote, err := s.compute(ctx, req)
	if s.metrics != nil {
		s.metrics.QuoteDuration.Observe(time.Since(started).Seconds())
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		s.metrics.QuotesComputed.WithLabelValues(outcome).Inc()
	}
	if err == nil {
		s.cacheQuote(ctx, quote)
	}
	return quote, err
}

// GetByReference returns a cached quote while its TTL lasts. Without a
// cache configured every reference is a miss.
func (s *Service) GetByReference(ctx context.Context, reference string) (*quotedomain.Quote, error) {
	if s.rdb == nil {
		return nil, quotedomain.ErrNotFound
	}

	raw, err := s.rdb.Get(ctx, fmt.Sprintf(quoteKeyFmt, reference)).Bytes()
	if err == redis.Nil {
		return nil, quotedomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var quote quotedomain.Quote
	if err := json.Unmarshal(raw, &quote); err != nil {
		return nil, quotedomain.ErrNotFound
	}
	return &quote, nil
}

func (s *Service) cacheQuote(ctx context.Context, quote *quotedomain.Quote) {
	if s.rdb == nil || s.cacheTTL <= 0 {
		return
	}

	payload, err := json.Marshal(quote)
	if err != nil {
		return
	}
	key := fmt.Sprintf(quoteKeyFmt, quote.Reference)
	if err := s.rdb.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
		// Cache misses are tolerable; the quote still goes out.
		s.log.Warn("quote cache write failed", zap.Error(err))
	}
}

func (s *Service) compute(ctx context.Context, req quotedomain.Request) (*quotedomain.Quote, error) {
	cg, err := s.campgroundSvc.Get(ctx, req.CampgroundID)
	if err != nil {
		return nil, err
	}
	site, err := s.campgroundSvc.GetSite(ctx, req.CampgroundID, req.SiteID)
	if err != nil {
		return nil, err
	}

	resolution, err := s.rateSvc.Resolve(ctx, cg.ID, site.ID, site.SiteClassID, req.Arrival, req.Departure)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now(ctx)
	bctx := pricingdomain.Context{
		LeadTimeDays: leadTimeDays(now, req.Arrival),
	}
	if s.signals != nil {
		pct, surge, ok := s.signals.Signals(ctx, cg.ID)
		if ok {
			bctx.OccupancyPercent = pct
			bctx.HasOccupancySignal = true
		}
		bctx.DemandSurge = surge
	}

	adjustment, err := s.pricingSvc.Adjust(ctx, cg.ID, resolution.BaseTotalCents, bctx)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.feeSvc.Compose(ctx, feedomain.ComposeRequest{
		CampgroundID:       cg.ID,
		AdjustedTotalCents: adjustment.AdjustedTotalCents,
		Occupants:          req.Occupants,
		UpsellIDs:          req.UpsellIDs,
		RequiresTax:        cg.RequiresTax,
	})
	if err != nil {
		return nil, err
	}

	depositCents, err := deposit.Calculate(breakdown.TotalCents, cg.Deposit)
	if err != nil {
		return nil, err
	}

	return &quotedomain.Quote{
		Reference:    ulid.Make().String(),
		CampgroundID: cg.ID,
		SiteID:       site.ID,
		Arrival:      ratedomain.DateOnly(req.Arrival),
		Departure:    ratedomain.DateOnly(req.Departure),
		Nights:       len(resolution.Nights),

		BaseTotalCents:   resolution.BaseTotalCents,
		AdjustmentsCents: adjustment.DeltaCents,
		FeesCents:        breakdown.FeesCents,
		UpsellCents:      breakdown.UpsellCents,
		SubtotalCents:    breakdown.SubtotalCents,
		TaxCents:         breakdown.TaxCents,
		TotalCents:       breakdown.TotalCents,
		DepositCents:     depositCents,

		NightRates:   resolution.Nights,
		AppliedRules: adjustment.Applied,
		FeeLines:     breakdown.FeeLines,
		TaxLines:     breakdown.TaxLines,

		ComputedAt: now,
	}, nil
}

func leadTimeDays(now, arrival time.Time) int {
	days := int(ratedomain.DateOnly(arrival).Sub(ratedomain.DateOnly(now)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
