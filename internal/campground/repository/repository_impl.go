package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	campgrounddomain "github.com/campreserv/keepr/internal/campground/domain"
)

type repo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) campgrounddomain.Repository {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, cg *campgrounddomain.Campground) error {
	return r.db.WithContext(ctx).Create(cg).Error
}

func (r *repo) Update(ctx context.Context, cg *campgrounddomain.Campground) error {
	return r.db.WithContext(ctx).Save(cg).Error
}

func (r *repo) FindByID(ctx context.Context, id snowflake.ID) (*campgrounddomain.Campground, error) {
	var cg campgrounddomain.Campground
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&cg).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &cg, nil
}

func (r *repo) List(ctx context.Context) ([]campgrounddomain.Campground, error) {
	var out []campgrounddomain.Campground
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *repo) InsertSiteClass(ctx context.Context, sc *campgrounddomain.SiteClass) error {
	return r.db.WithContext(ctx).Create(sc).Error
}

func (r *repo) ListSiteClasses(ctx context.Context, campgroundID snowflake.ID) ([]campgrounddomain.SiteClass, error) {
	var out []campgrounddomain.SiteClass
	err := r.db.WithContext(ctx).
		Where("campground_id = ?", campgroundID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *repo) InsertSite(ctx context.Context, site *campgrounddomain.Site) error {
	return r.db.WithContext(ctx).Create(site).Error
}

func (r *repo) FindSite(ctx context.Context, campgroundID, siteID snowflake.ID) (*campgrounddomain.Site, error) {
	var site campgrounddomain.Site
	err := r.db.WithContext(ctx).
		Where("campground_id = ? AND id = ?", campgroundID, siteID).
		First(&site).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &site, nil
}

func (r *repo) ListSites(ctx context.Context, campgroundID snowflake.ID) ([]campgrounddomain.Site, error) {
	var out []campgrounddomain.Site
	err := r.db.WithContext(ctx).
		Where("campground_id = ?", campgroundID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *repo) ListActiveSites(ctx context.Context, campgroundID snowflake.ID) ([]campgrounddomain.Site, error) {
	var out []campgrounddomain.Site
	err := r.db.WithContext(ctx).
		Where("campground_id = ? AND active = ?", campgroundID, true).
		Order("id ASC").
		Find(&out).Error
	return out, err
}
