// Package domain defines the nightly revenue forecast rows written by
// the scheduler.
package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

// RevenueForecast is one projected night for a campground. Rows are
// regenerated wholesale each run; they are a reporting artifact, not a
// source of truth.
type RevenueForecast struct {
	ID                    snowflake.ID `json:"id" gorm:"primaryKey"`
	CampgroundID          snowflake.ID `json:"campground_id" gorm:"not null;index:idx_forecast_day,unique"`
	Day                   time.Time    `json:"day" gorm:"not null;index:idx_forecast_day,unique"`
	ProjectedRevenueCents int64        `json:"projected_revenue_cents" gorm:"not null"`
	OccupancyPercent      float64      `json:"occupancy_percent" gorm:"not null"`
	GeneratedAt           time.Time    `json:"generated_at" gorm:"not null"`
}

func (RevenueForecast) TableName() string { return "revenue_forecasts" }

type Service interface {
	// Generate recomputes the forecast horizon for one campground and
	// returns the number of rows written.
	Generate(ctx context.Context, campgroundID snowflake.ID, horizonDays int) (int, error)

	List(ctx context.Context, campgroundID snowflake.ID) ([]RevenueForecast, error)
}
