package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	feedomain "github.com/campreserv/keepr/internal/fee/domain"
)

type repo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) feedomain.Repository {
	return &repo{db: db}
}

func (r *repo) InsertTaxRule(ctx context.Context, rule *feedomain.TaxRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *repo) UpdateTaxRule(ctx context.Context, rule *feedomain.TaxRule) error {
	return r.db.WithContext(ctx).Save(rule).Error
}

func (r *repo) FindTaxRule(ctx context.Context, campgroundID, id snowflake.ID) (*feedomain.TaxRule, error) {
	var rule feedomain.TaxRule
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

func (r *repo) DeleteTaxRule(ctx context.Context, campgroundID, id snowflake.ID) error {
	return r.db.WithContext(ctx).
		Where("campground_id = ? AND id = ?", campgroundID, id).
		Delete(&feedomain.TaxRule{}).Error
}

func (r *repo) ListTaxRules(ctx context.Context, campgroundID snowflake.ID) ([]feedomain.TaxRule, error) {
	var rules []feedomain.TaxRule
	err := r.db.WithContext(ctx).
		Where("campground_id = ?", campgroundID).
		Order("id ASC").
		Find(&rules).Error
	return rules, err
}

func (r *repo) ListActiveTaxRules(ctx context.Context, campgroundID snowflake.ID) ([]feedomain.TaxRule, error) {
	var rules []feedomain.TaxRule
	err := r.db.WithContext(ctx).
		Where("campground_id = ? AND is_active = ?", campgroundID, true).
		Order("id ASC").
		Find(&rules).Error
	return rules, err
}

func (r *repo) GetGuestFeeConfig(ctx context.Context, campgroundID snowflake.ID) (*feedomain.GuestFeeConfig, error) {
	var cfg feedomain.GuestFeeConfig
	err := r.db.WithContext(ctx).
		Where("campground_id = ?", campgroundID).
		First(&cfg).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *repo) UpsertGuestFeeConfig(ctx context.Context, cfg *feedomain.GuestFeeConfig) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "campground_id"}},
			UpdateAll: true,
		}).
		Create(cfg).Error
}

func (r *repo) InsertUpsell(ctx context.Context, upsell *feedomain.Upsell) error {
	return r.db.WithContext(ctx).Create(upsell).Error
}

func (r *repo) FindUpsell(ctx context.Context, campgroundID, id snowflake.ID) (*feedomain.Upsell, error) {
	var upsell feedomain.Upsell
	err := r.db.WithContext(ctx).
		Where("campground_id = ? AND id = ?", campgroundID, id).
		First(&upsell).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &upsell, nil
}

func (r *repo) DeleteUpsell(ctx context.Context, campgroundID, id snowflake.ID) error {
	return r.db.WithContext(ctx).
		Where("campground_id = ? AND id = ?", campgroundID, id).
		Delete(&feedomain.Upsell{}).Error
}

func (r *repo) ListUpsells(ctx context.Context, campgroundID snowflake.ID) ([]feedomain.Upsell, error) {
	var upsells []feedomain.Upsell
	err := r.db.WithContext(ctx).
		Where("campground_id = ?", campgroundID).
		Order("id ASC").
		Find(&upsells).Error
	return upsells, err
}

func (r *repo) ListUpsellsByIDs(ctx context.Context, campgroundID snowflake.ID, ids []snowflake.ID) ([]feedomain.Upsell, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var upsells []feedomain.Upsell
	err := r.db.WithContext(ctx).
		Where("campground_id = ? AND id IN ? AND active = ?", campgroundID, ids, true).
		Order("id ASC").
		Find(&upsells).Error
	return upsells, err
}
