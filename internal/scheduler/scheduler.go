// Package scheduler runs the periodic background jobs: occupancy
// signal refresh, pending-hold expiry, and revenue forecasting.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	availabilitydomain "github.com/campreserv/keepr/internal/availability/domain"
	campgrounddomain "github.com/campreserv/keepr/internal/campground/domain"
	campgroundrepo "github.com/campreserv/keepr/internal/campground/repository"
	"github.com/campreserv/keepr/internal/clock"
	"github.com/campreserv/keepr/internal/config"
	forecastdomain "github.com/campreserv/keepr/internal/forecast/domain"
	"github.com/campreserv/keepr/internal/observability"
	"github.com/campreserv/keepr/internal/occupancy"
	reservationdomain "github.com/campreserv/keepr/internal/reservation/domain"
)

type Scheduler struct {
	db      *gorm.DB
	cfg     config.SchedulerConfig
	log     *zap.Logger
	clock   clock.Clock
	metrics *observability.Metrics

	campgrounds     campgrounddomain.Repository
	availabilitySvc availabilitydomain.Service
	reservationSvc  reservationdomain.Service
	forecastSvc     forecastdomain.Service
	signals         *occupancy.Store
}

type Param struct {
	fx.In

	DB      *gorm.DB
	Cfg     config.Config
	Log     *zap.Logger
	Clock   clock.Clock
	Metrics *observability.Metrics

	AvailabilitySvc availabilitydomain.Service
	ReservationSvc  reservationdomain.Service
	ForecastSvc     forecastdomain.Service
	Signals         *occupancy.Store `optional:"true"`
}

func New(p Param) *Scheduler {
	return &Scheduler{
		db:      p.DB,
		cfg:     p.Cfg.Scheduler,
		log:     p.Log.Named("scheduler"),
		clock:   p.Clock,
		metrics: p.Metrics,

		campgrounds:     campgroundrepo.NewRepository(p.DB),
		availabilitySvc: p.AvailabilitySvc,
		reservationSvc:  p.ReservationSvc,
		forecastSvc:     p.ForecastSvc,
		signals:         p.Signals,
	}
}

// RunForever ticks every configured interval until the context is
// done. Individual job failures are logged and counted, never fatal.
func (s *Scheduler) RunForever(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.log.Info("scheduler started", zap.Duration("interval", s.cfg.Interval))
	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.runJob(ctx, "expire_holds", s.ExpireHoldsJob)
			s.runJob(ctx, "refresh_occupancy_signals", s.RefreshOccupancySignalsJob)
			s.runJob(ctx, "forecast_revenue", s.ForecastRevenueJob)
		}
	}
}

func (s *Scheduler) runJob(ctx context.Context, name string, job func(context.Context) error) {
	err := job(ctx)
	outcome := "ok"
	if err != nil {
		outcome = "error"
		s.log.Error("scheduler job failed", zap.String("job", name), zap.Error(err))
	}
	if s.metrics != nil {
		s.metrics.SchedulerJobRuns.WithLabelValues(name, outcome).Inc()
	}
}

// ExpireHoldsJob cancels pending reservations older than the hold TTL
// so abandoned checkouts release their sites.
func (s *Scheduler) ExpireHoldsJob(ctx context.Context) error {
	if s.cfg.PendingHoldTTL <= 0 {
		return nil
	}

	cutoff := s.clock.Now(ctx).Add(-s.cfg.PendingHoldTTL)
	expired, err := s.reservationSvc.ExpirePendingBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	if expired > 0 {
		s.log.Info("expired pending holds", zap.Int("count", expired), zap.Time("cutoff", cutoff))
	}
	return nil
}

// RefreshOccupancySignalsJob recomputes near-horizon occupancy per
// campground and publishes it to Redis for the pricing adjuster,
// together with the demand-surge flag derived from occupancy over the
// short surge window.
func (s *Scheduler) RefreshOccupancySignalsJob(ctx context.Context) error {
	if s.signals == nil {
		return nil
	}

	campgrounds, err := s.campgrounds.List(ctx)
	if err != nil {
		return err
	}

	now := s.clock.Now(ctx)
	horizon := now.AddDate(0, 0, s.cfg.OccupancyHorizonDays)
	ttl := 2 * s.cfg.Interval

	for _, cg := range campgrounds {
		pct, err := s.availabilitySvc.Occupancy(ctx, cg.ID, now, horizon)
		if err != nil {
			s.log.Warn("occupancy refresh failed",
				zap.String("campground_id", cg.ID.String()), zap.Error(err))
			continue
		}
		if err := s.signals.SetOccupancy(ctx, cg.ID, pct, ttl); err != nil {
			return err
		}

		if s.cfg.DemandSurgeWindowDays <= 0 {
			continue
		}
		surgeHorizon := now.AddDate(0, 0, s.cfg.DemandSurgeWindowDays)
		nearPct, err := s.availabilitySvc.Occupancy(ctx, cg.ID, now, surgeHorizon)
		if err != nil {
			s.log.Warn("surge window refresh failed",
				zap.String("campground_id", cg.ID.String()), zap.Error(err))
			continue
		}
		surge := nearPct >= s.cfg.DemandSurgePct
		if err := s.signals.SetDemandSurge(ctx, cg.ID, surge, ttl); err != nil {
			return err
		}
		if surge {
			s.log.Info("demand surge flagged",
				zap.String("campground_id", cg.ID.String()),
				zap.Float64("near_occupancy_pct", nearPct))
		}
	}
	return nil
}

// ForecastRevenueJob regenerates the revenue forecast horizon for every
// campground.
func (s *Scheduler) ForecastRevenueJob(ctx context.Context) error {
	campgrounds, err := s.campgrounds.List(ctx)
	if err != nil {
		return err
	}

	for _, cg := range campgrounds {
		written, err := s.forecastSvc.Generate(ctx, cg.ID, s.cfg.ForecastHorizonDays)
		if err != nil {
			s.log.Warn("forecast generation failed",
				zap.String("campground_id", cg.ID.String()), zap.Error(err))
			continue
		}
		s.log.Debug("forecast regenerated",
			zap.String("campground_id", cg.ID.String()), zap.Int("rows", written))
	}
	return nil
}
