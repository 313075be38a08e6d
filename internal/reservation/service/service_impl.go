package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	campgrounddomain "github.com/campreserv/keepr/internal/campground/domain"
	"github.com/campreserv/keepr/internal/cancellation"
	"github.com/campreserv/keepr/internal/clock"
	"github.com/campreserv/keepr/internal/observability"
	quotedomain "github.com/campreserv/keepr/internal/quote/domain"
	reservationdomain "github.com/campreserv/keepr/internal/reservation/domain"
	"github.com/campreserv/keepr/internal/reservation/repository"
)

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	clock   clock.Clock
	metrics *observability.Metrics

	genID         *snowflake.Node
	repo          reservationdomain.Repository
	quoteSvc      quotedomain.Service
	campgroundSvc campgrounddomain.Service
}

type ServiceParam struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Clock   clock.Clock
	Metrics *observability.Metrics

	GenID         *snowflake.Node
	QuoteSvc      quotedomain.Service
	CampgroundSvc campgrounddomain.Service
}

func NewService(p ServiceParam) reservationdomain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("reservation.service"),
		clock:   p.Clock,
		metrics: p.Metrics,

		genID:         p.GenID,
		repo:          repository.NewRepository(p.DB),
		quoteSvc:      p.QuoteSvc,
		campgroundSvc: p.CampgroundSvc,
	}
}

func (s *Service) Create(ctx context.Context, req reservationdomain.CreateRequest) (*reservationdomain.Reservation, error) {
	if strings.TrimSpace(req.GuestName) == "" {
		return nil, reservationdomain.ErrInvalidReservation
	}

	cg, err := s.campgroundSvc.Get(ctx, req.CampgroundID)
	if err != nil {
		return nil, err
	}

	quote, err := s.quoteSvc.Compute(ctx, quotedomain.Request{
		CampgroundID: req.CampgroundID,
		SiteID:       req.SiteID,
		Arrival:      req.Arrival,
		Departure:    req.Departure,
		Occupants:    req.Occupants,
		UpsellIDs:    req.UpsellIDs,
	})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now(ctx)
	res := &reservationdomain.Reservation{
		ID:           s.genID.Generate(),
		CampgroundID: cg.ID,
		SiteID:       req.SiteID,
		GuestName:    strings.TrimSpace(req.GuestName),
		GuestEmail:   strings.TrimSpace(req.GuestEmail),
		Arrival:      quote.Arrival,
		Departure:    quote.Departure,
		Nights:       quote.Nights,
		Adults:       req.Occupants.Adults,
		Children:     req.Occupants.Children,
		Pets:         req.Occupants.Pets,
		Status:       reservationdomain.StatusPending,

		QuoteReference:   quote.Reference,
		BaseTotalCents:   quote.BaseTotalCents,
		AdjustmentsCents: quote.AdjustmentsCents,
		FeesCents:        quote.FeesCents + quote.UpsellCents,
		TaxCents:         quote.TaxCents,
		TotalCents:       quote.TotalCents,
		DepositCents:     quote.DepositCents,
		FirstNightCents:  quote.FirstNightCents(),

		Policy: cg.CancellationPolicy,

		CreatedAt: now,
		UpdatedAt: now,
	}

	// Two concurrent attempts for the same site/dates serialize on the
	// row lock; the loser sees the winner's row and fails. The overlap
	// exclusion constraint in the schema backstops this guard.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repoTx := repository.NewRepository(tx)

		blocked, err := repoTx.CountMaintenanceOverlapping(ctx, req.SiteID, res.Arrival, res.Departure)
		if err != nil {
			return err
		}
		if blocked > 0 {
			return reservationdomain.ErrSiteUnavailable
		}

		conflicts, err := repoTx.CountOverlapping(ctx, req.SiteID, res.Arrival, res.Departure)
		if err != nil {
			return err
		}
		if conflicts > 0 {
			return reservationdomain.ErrSiteUnavailable
		}
		return repoTx.Insert(ctx, res)
	})
	if err != nil {
		if err == reservationdomain.ErrSiteUnavailable && s.metrics != nil {
			s.metrics.ReservationConflicts.Inc()
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ReservationsCreated.Inc()
	}
	s.log.Info("reservation created",
		zap.String("reservation_id", res.ID.String()),
		zap.String("site_id", res.SiteID.String()),
		zap.Time("arrival", res.Arrival),
		zap.Int64("total_cents", res.TotalCents),
	)
	return res, nil
}

func (s *Service) Get(ctx context.Context, campgroundID, id snowflake.ID) (*reservationdomain.Reservation, error) {
	res, err := s.repo.FindByID(ctx, campgroundID, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, reservationdomain.ErrReservationNotFound
	}
	return res, nil
}

func (s *Service) List(ctx context.Context, campgroundID snowflake.ID) ([]reservationdomain.Reservation, error) {
	return s.repo.List(ctx, campgroundID)
}

func (s *Service) Confirm(ctx context.Context, campgroundID, id snowflake.ID) (*reservationdomain.Reservation, error) {
	return s.transition(ctx, campgroundID, id, reservationdomain.StatusConfirmed)
}

func (s *Service) CheckIn(ctx context.Context, campgroundID, id snowflake.ID) (*reservationdomain.Reservation, error) {
	return s.transition(ctx, campgroundID, id, reservationdomain.StatusCheckedIn)
}

func (s *Service) CheckOut(ctx context.Context, campgroundID, id snowflake.ID) (*reservationdomain.Reservation, error) {
	return s.transition(ctx, campgroundID, id, reservationdomain.StatusCheckedOut)
}

func (s *Service) transition(ctx context.Context, campgroundID, id snowflake.ID, next reservationdomain.Status) (*reservationdomain.Reservation, error) {
	res, err := s.Get(ctx, campgroundID, id)
	if err != nil {
		return nil, err
	}
	if !res.Status.CanTransitionTo(next) {
		return nil, reservationdomain.ErrInvalidTransition
	}

	res.Status = next
	res.UpdatedAt = s.clock.Now(ctx)
	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Service) RecordPayment(ctx context.Context, campgroundID, id snowflake.ID, amountCents int64) (*reservationdomain.Reservation, error) {
	if amountCents <= 0 {
		return nil, reservationdomain.ErrInvalidReservation
	}

	res, err := s.Get(ctx, campgroundID, id)
	if err != nil {
		return nil, err
	}

	res.PaidCents += amountCents
	res.UpdatedAt = s.clock.Now(ctx)
	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Service) PreviewCancellation(ctx context.Context, campgroundID, id snowflake.ID) (*reservationdomain.CancelResult, error) {
	res, err := s.Get(ctx, campgroundID, id)
	if err != nil {
		return nil, err
	}
	if !res.Status.CanCancel() {
		return nil, reservationdomain.ErrInvalidCancellationState
	}

	eval := cancellation.Evaluate(res.CancellationSnapshot(), res.Policy, s.clock.Now(ctx))
	return &reservationdomain.CancelResult{Reservation: res, Evaluation: eval}, nil
}

func (s *Service) Cancel(ctx context.Context, campgroundID, id snowflake.ID) (*reservationdomain.CancelResult, error) {
	res, err := s.Get(ctx, campgroundID, id)
	if err != nil {
		return nil, err
	}
	if !res.Status.CanCancel() {
		return nil, reservationdomain.ErrInvalidCancellationState
	}

	now := s.clock.Now(ctx)
	eval := cancellation.Evaluate(res.CancellationSnapshot(), res.Policy, now)

	res.Status = reservationdomain.StatusCancelled
	res.CancellationFeeCents = eval.FeeCents
	res.RefundedCents = eval.RefundCents
	res.CancelledAt = &now
	res.UpdatedAt = now
	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.CancellationsTotal.WithLabelValues(strconv.FormatBool(eval.WithinFreeWindow)).Inc()
	}
	s.log.Info("reservation cancelled",
		zap.String("reservation_id", res.ID.String()),
		zap.Int64("fee_cents", eval.FeeCents),
		zap.Int64("refund_cents", eval.RefundCents),
		zap.Bool("within_free_window", eval.WithinFreeWindow),
	)
	return &reservationdomain.CancelResult{Reservation: res, Evaluation: eval}, nil
}

// ExpirePendingBefore cancels pending holds created before the cutoff.
// Used by the scheduler's hold-expiry job; fees never apply to expired
// holds.
func (s *Service) ExpirePendingBefore(ctx context.Context, cutoff time.Time) (int, error) {
	stale, err := s.repo.ListExpiredPending(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	expired := 0
	now := s.clock.Now(ctx)
	for i := range stale {
		res := &stale[i]
		res.Status = reservationdomain.StatusCancelled
		res.RefundedCents = res.PaidCents
		res.CancelledAt = &now
		res.UpdatedAt = now
		if err := s.repo.Update(ctx, res); err != nil {
			return expired, err
		}
		expired++
	}
	return expired, nil
}
