package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	availabilitydomain "github.com/campreserv/keepr/internal/availability/domain"
)

type Repository interface {
	Insert(ctx context.Context, block *availabilitydomain.MaintenanceBlock) error
	ListForSites(ctx context.Context, siteIDs []snowflake.ID, start, end time.Time) ([]availabilitydomain.MaintenanceBlock, error)
}

type repo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, block *availabilitydomain.MaintenanceBlock) error {
	return r.db.WithContext(ctx).Create(block).Error
}

func (r *repo) ListForSites(ctx context.Context, siteIDs []snowflake.ID, start, end time.Time) ([]availabilitydomain.MaintenanceBlock, error) {
	if len(siteIDs) == 0 {
		return nil, nil
	}
	var blocks []availabilitydomain.MaintenanceBlock
	err := r.db.WithContext(ctx).
		Where("site_id IN ?", siteIDs).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Find(&blocks).Error
	return blocks, err
}
