package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	pricingdomain "github.com/campreserv/keepr/internal/pricing/domain"
)

type repo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) pricingdomain.Repository {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, rule *pricingdomain.PricingRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *repo) Update(ctx context.Context, rule *pricingdomain.PricingRule) error {
	return r.db.WithContext(ctx).Save(rule).Error
}

func (r *repo) FindByID(ctx context.Context, campgroundID, id snowflake.ID) (*pricingdomain.PricingRule, error) {
	var rule pricingdomain.PricingRule
	err := r.db.WithContext(ctx).
		Where("campground_id = ? AND id = ?", campgroundID, id).
		First(&rule).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

func (r *repo) Delete(ctx context.Context, campgroundID, id snowflake.ID) error {
	return r.db.WithContext(ctx).
		Where("campground_id = ? AND id = ?", campgroundID, id).
		Delete(&pricingdomain.PricingRule{}).Error
}

func (r *repo) List(ctx context.Context, campgroundID snowflake.ID) ([]pricingdomain.PricingRule, error) {
	var rules []pricingdomain.PricingRule
	err := r.db.WithContext(ctx).
		Where("campground_id = ?", campgroundID).
		Order("priority ASC, id ASC").
		Find(&rules).Error
	return rules, err
}

func (r *repo) ListActiveOrdered(ctx context.Context, campgroundID snowflake.ID) ([]pricingdomain.PricingRule, error) {
	var rules []pricingdomain.PricingRule
	err := r.db.WithContext(ctx).
		Where("campground_id = ? AND is_active = ?", campgroundID, true).
		Order("priority ASC, id ASC").
		Find(&rules).Error
	return rules, err
}
