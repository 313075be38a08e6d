package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	ratedomain "github.com/campreserv/keepr/internal/rate/domain"
)

type repo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ratedomain.Repository {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, entry *ratedomain.RateEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repo) FindByID(ctx context.Context, campgroundID, id snowflake.ID) (*ratedomain.RateEntry, error) {
	var entry ratedomain.RateEntry
	err := r.db.WithContext(ctx).
		Where("campground_id = ? AND id = ?", campgroundID, id).
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *repo) Delete(ctx context.Context, campgroundID, id snowflake.ID) error {
	return r.db.WithContext(ctx).
		Where("campground_id = ? AND id = ?", campgroundID, id).
		Delete(&ratedomain.RateEntry{}).Error
}

func (r *repo) List(ctx context.Context, campgroundID snowflake.ID) ([]ratedomain.RateEntry, error) {
	var entries []ratedomain.RateEntry
	err := r.db.WithContext(ctx).
		Where("campground_id = ?", campgroundID).
		Order("start_date ASC, id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repo) ListForSite(ctx context.Context, campgroundID, siteID, siteClassID snowflake.ID, start, end time.Time) ([]ratedomain.RateEntry, error) {
	var entries []ratedomain.RateEntry
	err := r.db.WithContext(ctx).
		Where("campground_id = ?", campgroundID).
		Where("(site_id = ? OR site_class_id = ?)", siteID, siteClassID).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Order("start_date ASC, id ASC").
		Find(&entries).Error
	return entries, err
}
