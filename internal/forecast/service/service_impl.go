package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	campgrounddomain "github.com/campreserv/keepr/internal/campground/domain"
	campgroundrepo "github.com/campreserv/keepr/internal/campground/repository"
	"github.com/campreserv/keepr/internal/clock"
	forecastdomain "github.com/campreserv/keepr/internal/forecast/domain"
	ratedomain "github.com/campreserv/keepr/internal/rate/domain"
	reservationdomain "github.com/campreserv/keepr/internal/reservation/domain"
	reservationrepo "github.com/campreserv/keepr/internal/reservation/repository"
	"github.com/campreserv/keepr/pkg/money"
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock

	genID        *snowflake.Node
	campgrounds  campgrounddomain.Repository
	reservations reservationdomain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	GenID *snowflake.Node
}

func NewService(p ServiceParam) forecastdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("forecast.service"),
		clock: p.Clock,

		genID:        p.GenID,
		campgrounds:  campgroundrepo.NewRepository(p.DB),
		reservations: reservationrepo.NewRepository(p.DB),
	}
}

func (s *Service) Generate(ctx context.Context, campgroundID snowflake.ID, horizonDays int) (int, error) {
	if horizonDays <= 0 {
		return 0, nil
	}

	now := s.clock.Now(ctx)
	start := ratedomain.DateOnly(now)
	end := start.AddDate(0, 0, horizonDays)

	sites, err := s.campgrounds.ListActiveSites(ctx, campgroundID)
	if err != nil {
		return 0, err
	}
	reservations, err := s.reservations.ListOverlapping(ctx, campgroundID, start, end)
	if err != nil {
		return 0, err
	}

	written := 0
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("campground_id = ?", campgroundID).
			Delete(&forecastdomain.RevenueForecast{}).Error; err != nil {
			return err
		}

		for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
			var revenue int64
			occupied := 0
			for _, res := range reservations {
				if day.Before(res.Arrival) || !day.Before(res.Departure) {
					continue
				}
				occupied++
				if res.Nights > 0 {
					revenue += money.Split(res.TotalCents, res.Nights)
				}
			}

			occupancy := 0.0
			if len(sites) > 0 {
				occupancy = 100 * float64(occupied) / float64(len(sites))
			}

			row := forecastdomain.RevenueForecast{
				ID:                    s.genID.Generate(),
				CampgroundID:          campgroundID,
				Day:                   day,
				ProjectedRevenueCents: revenue,
				OccupancyPercent:      occupancy,
				GeneratedAt:           now,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			written++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return written, nil
}

func (s *Service) List(ctx context.Context, campgroundID snowflake.ID) ([]forecastdomain.RevenueForecast, error) {
	var out []forecastdomain.RevenueForecast
	err := s.db.WithContext(ctx).
		Where("campground_id = ?", campgroundID).
		Order("day ASC").
		Find(&out).Error
	return out, err
}
