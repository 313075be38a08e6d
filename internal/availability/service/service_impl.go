package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	availabilitydomain "github.com/campreserv/keepr/internal/availability/domain"
	"github.com/campreserv/keepr/internal/availability/repository"
	campgrounddomain "github.com/campreserv/keepr/internal/campground/domain"
	campgroundrepo "github.com/campreserv/keepr/internal/campground/repository"
	ratedomain "github.com/campreserv/keepr/internal/rate/domain"
	reservationdomain "github.com/campreserv/keepr/internal/reservation/domain"
	reservationrepo "github.com/campreserv/keepr/internal/reservation/repository"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID        *snowflake.Node
	blocks       repository.Repository
	campgrounds  campgrounddomain.Repository
	reservations reservationdomain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

func NewService(p ServiceParam) availabilitydomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("availability.service"),

		genID:        p.GenID,
		blocks:       repository.NewRepository(p.DB),
		campgrounds:  campgroundrepo.NewRepository(p.DB),
		reservations: reservationrepo.NewRepository(p.DB),
	}
}

func (s *Service) Check(ctx context.Context, campgroundID snowflake.ID, arrival, departure time.Time) (*availabilitydomain.CheckResult, error) {
	arrival = ratedomain.DateOnly(arrival)
	departure = ratedomain.DateOnly(departure)
	if !departure.After(arrival) {
		return nil, availabilitydomain.ErrInvalidDateRange
	}

	sites, err := s.campgrounds.ListActiveSites(ctx, campgroundID)
	if err != nil {
		return nil, err
	}

	reservations, err := s.reservations.ListOverlapping(ctx, campgroundID, arrival, departure)
	if err != nil {
		return nil, err
	}

	siteIDs := make([]snowflake.ID, 0, len(sites))
	for _, site := range sites {
		siteIDs = append(siteIDs, site.ID)
	}
	// Maintenance dates are inclusive; the last slept night is the day
	// before departure.
	blocks, err := s.blocks.ListForSites(ctx, siteIDs, arrival, departure.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}

	result := &availabilitydomain.CheckResult{Arrival: arrival, Departure: departure}
	for _, site := range sites {
		verdict := availabilitydomain.SiteAvailability{
			SiteID:    site.ID,
			SiteName:  site.Name,
			Available: true,
		}

		for _, res := range reservations {
			if res.SiteID == site.ID {
				verdict.Available = false
				verdict.Reason = "reserved"
				break
			}
		}
		if verdict.Available {
			for _, block := range blocks {
				if block.SiteID == site.ID {
					verdict.Available = false
					verdict.Reason = "maintenance"
					break
				}
			}
		}

		if verdict.Available {
			result.Available++
		}
		result.Sites = append(result.Sites, verdict)
	}
	return result, nil
}

func (s *Service) Occupancy(ctx context.Context, campgroundID snowflake.ID, arrival, departure time.Time) (float64, error) {
	arrival = ratedomain.DateOnly(arrival)
	departure = ratedomain.DateOnly(departure)
	if !departure.After(arrival) {
		return 0, availabilitydomain.ErrInvalidDateRange
	}

	sites, err := s.campgrounds.ListActiveSites(ctx, campgroundID)
	if err != nil {
		return 0, err
	}
	if len(sites) == 0 {
		return 0, nil
	}

	reservations, err := s.reservations.ListOverlapping(ctx, campgroundID, arrival, departure)
	if err != nil {
		return 0, err
	}

	rangeNights := int(departure.Sub(arrival).Hours() / 24)
	inventory := len(sites) * rangeNights
	if inventory == 0 {
		return 0, nil
	}

	booked := 0
	for _, res := range reservations {
		start := res.Arrival
		if start.Before(arrival) {
			start = arrival
		}
		end := res.Departure
		if end.After(departure) {
			end = departure
		}
		if end.After(start) {
			booked += int(end.Sub(start).Hours() / 24)
		}
	}

	return 100 * float64(booked) / float64(inventory), nil
}

func (s *Service) CreateMaintenanceBlock(ctx context.Context, siteID snowflake.ID, start, end time.Time, reason string) (*availabilitydomain.MaintenanceBlock, error) {
	start = ratedomain.DateOnly(start)
	end = ratedomain.DateOnly(end)
	if end.Before(start) {
		return nil, availabilitydomain.ErrInvalidDateRange
	}

	block := &availabilitydomain.MaintenanceBlock{
		ID:        s.genID.Generate(),
		SiteID:    siteID,
		StartDate: start,
		EndDate:   end,
		Reason:    reason,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.blocks.Insert(ctx, block); err != nil {
		return nil, err
	}
	return block, nil
}
