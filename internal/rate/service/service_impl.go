package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	ratedomain "github.com/campreserv/keepr/internal/rate/domain"
	"github.com/campreserv/keepr/internal/rate/repository"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID *snowflake.Node
	repo  ratedomain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

func NewService(p ServiceParam) ratedomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("rate.service"),

		genID: p.GenID,
		repo:  repository.NewRepository(p.DB),
	}
}

func (s *Service) Create(ctx context.Context, req ratedomain.CreateRequest) (*ratedomain.RateEntry, error) {
	if req.CampgroundID == 0 || req.NightlyRateCents < 0 {
		return nil, ratedomain.ErrInvalidRateEntry
	}
	// Exactly one of site / site class scopes the entry.
	if (req.SiteID == nil) == (req.SiteClassID == nil) {
		return nil, ratedomain.ErrInvalidRateEntry
	}

	start := ratedomain.DateOnly(req.StartDate)
	end := ratedomain.DateOnly(req.EndDate)
	if end.Before(start) {
		return nil, ratedomain.ErrInvalidRateEntry
	}

	now := time.Now().UTC()
	entry := &ratedomain.RateEntry{
		ID:               s.genID.Generate(),
		CampgroundID:     req.CampgroundID,
		SiteID:           req.SiteID,
		SiteClassID:      req.SiteClassID,
		StartDate:        start,
		EndDate:          end,
		NightlyRateCents: req.NightlyRateCents,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Service) Get(ctx context.Context, campgroundID, id snowflake.ID) (*ratedomain.RateEntry, error) {
	entry, err := s.repo.FindByID(ctx, campgroundID, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ratedomain.ErrRateEntryNotFound
	}
	return entry, nil
}

func (s *Service) Delete(ctx context.Context, campgroundID, id snowflake.ID) error {
	return s.repo.Delete(ctx, campgroundID, id)
}

func (s *Service) List(ctx context.Context, campgroundID snowflake.ID) ([]ratedomain.RateEntry, error) {
	return s.repo.List(ctx, campgroundID)
}

func (s *Service) Resolve(ctx context.Context, campgroundID, siteID, siteClassID snowflake.ID, arrival, departure time.Time) (*ratedomain.Resolution, error) {
	arrival = ratedomain.DateOnly(arrival)
	departure = ratedomain.DateOnly(departure)
	if !departure.After(arrival) {
		return nil, ratedomain.ErrInvalidDateRange
	}

	// Departure date itself is not slept; the candidate window ends the
	// night before.
	lastNight := departure.AddDate(0, 0, -1)
	entries, err := s.repo.ListForSite(ctx, campgroundID, siteID, siteClassID, arrival, lastNight)
	if err != nil {
		return nil, err
	}

	resolution := &ratedomain.Resolution{}
	for _, night := range ratedomain.NightsBetween(arrival, departure) {
		entry := pickEntry(entries, siteID, night)
		if entry == nil {
			s.log.Warn("night has no covering rate entry",
				zap.String("campground_id", campgroundID.String()),
				zap.String("site_id", siteID.String()),
				zap.Time("night", night),
			)
			return nil, ratedomain.ErrNoRateConfigured
		}
		resolution.Nights = append(resolution.Nights, ratedomain.NightRate{
			Night:       night,
			RateCents:   entry.NightlyRateCents,
			RateEntryID: entry.ID,
		})
		resolution.BaseTotalCents += entry.NightlyRateCents
	}
	return resolution, nil
}

// pickEntry selects the most specific covering entry for a night:
// site-specific overrides beat site-class defaults. Among entries of
// equal specificity the newest id wins, matching how staff supersede a
// season by adding a narrower row.
func pickEntry(entries []ratedomain.RateEntry, siteID snowflake.ID, night time.Time) *ratedomain.RateEntry {
	var best *ratedomain.RateEntry
	for i := range entries {
		e := &entries[i]
		if !e.Covers(night) {
			continue
		}
		if best == nil || moreSpecific(e, best, siteID) {
			best = e
		}
	}
	return best
}

func moreSpecific(candidate, current *ratedomain.RateEntry, siteID snowflake.ID) bool {
	candSite := candidate.SiteID != nil && *candidate.SiteID == siteID
	currSite := current.SiteID != nil && *current.SiteID == siteID
	if candSite != currSite {
		return candSite
	}
	return candidate.ID > current.ID
}
