package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	availabilitydomain "github.com/campreserv/keepr/internal/availability/domain"
	reservationdomain "github.com/campreserv/keepr/internal/reservation/domain"
)

type repo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) reservationdomain.Repository {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, res *reservationdomain.Reservation) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *repo) Update(ctx context.Context, res *reservationdomain.Reservation) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *repo) FindByID(ctx context.Context, campgroundID, id snowflake.ID) (*reservationdomain.Reservation, error) {
	var res reservationdomain.Reservation
	err := r.db.WithContext(ctx).
		Where("campground_id = ? AND id = ?", campgroundID, id).
		First(&res).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *repo) List(ctx context.Context, campgroundID snowflake.ID) ([]reservationdomain.Reservation, error) {
	var out []reservationdomain.Reservation
	err := r.db.WithContext(ctx).
		Where("campground_id = ?", campgroundID).
		Order("arrival ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *repo) CountOverlapping(ctx context.Context, siteID snowflake.ID, arrival, departure time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&reservationdomain.Reservation{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("site_id = ?", siteID).
		Where("status IN ?", blockingStatuses()).
		Where("arrival < ? AND departure > ?", departure, arrival).
		Count(&count).Error
	return count, err
}

func (r *repo) CountMaintenanceOverlapping(ctx context.Context, siteID snowflake.ID, arrival, departure time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&availabilitydomain.MaintenanceBlock{}).
		Where("site_id = ?", siteID).
		Where("start_date < ? AND end_date >= ?", departure, arrival).
		Count(&count).Error
	return count, err
}

func (r *repo) ListOverlapping(ctx context.Context, campgroundID snowflake.ID, arrival, departure time.Time) ([]reservationdomain.Reservation, error) {
	var out []reservationdomain.Reservation
	err := r.db.WithContext(ctx).
		Where("campground_id = ?", campgroundID).
		Where("status IN ?", blockingStatuses()).
		Where("arrival < ? AND departure > ?", departure, arrival).
		Find(&out).Error
	return out, err
}

func (r *repo) ListExpiredPending(ctx context.Context, cutoff time.Time) ([]reservationdomain.Reservation, error) {
	var out []reservationdomain.Reservation
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", reservationdomain.StatusPending, cutoff).
		Find(&out).Error
	return out, err
}

func blockingStatuses() []reservationdomain.Status {
	return []reservationdomain.Status{
		reservationdomain.StatusPending,
		reservationdomain.StatusConfirmed,
		reservationdomain.StatusCheckedIn,
	}
}
