package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	feedomain "github.com/campreserv/keepr/internal/fee/domain"
	"github.com/campreserv/keepr/internal/fee/repository"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID *snowflake.Node
	repo  feedomain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

func NewService(p ServiceParam) feedomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("fee.service"),

		genID: p.GenID,
		repo:  repository.NewRepository(p.DB),
	}
}

func (s *Service) Compose(ctx context.Context, req feedomain.ComposeRequest) (*feedomain.Breakdown, error) {
	feeCfg, err := s.repo.GetGuestFeeConfig(ctx, req.CampgroundID)
	if err != nil {
		return nil, err
	}

	upsells, err := s.repo.ListUpsellsByIDs(ctx, req.CampgroundID, req.UpsellIDs)
	if err != nil {
		return nil, err
	}

	var taxRules []feedomain.TaxRule
	if req.RequiresTax {
		taxRules, err = s.repo.ListActiveTaxRules(ctx, req.CampgroundID)
		if err != nil {
			return nil, err
		}
		if len(taxRules) == 0 {
			return nil, feedomain.ErrTaxRuleMissing
		}
	}

	return composeBreakdown(req.AdjustedTotalCents, req.Occupants, feeCfg, upsells, taxRules), nil
}

func (s *Service) CreateTaxRule(ctx context.Context, req feedomain.TaxRuleRequest) (*feedomain.TaxRule, error) {
	if err := validateTaxRule(req); err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	appliesTo := req.AppliesTo
	if appliesTo == "" {
		appliesTo = feedomain.TaxAppliesAll
	}

	now := time.Now().UTC()
	rule := &feedomain.TaxRule{
		ID:           s.genID.Generate(),
		CampgroundID: req.CampgroundID,
		Name:         req.Name,
		RatePercent:  req.RatePercent,
		AmountCents:  req.AmountCents,
		AppliesTo:    appliesTo,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.InsertTaxRule(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *Service) UpdateTaxRule(ctx context.Context, campgroundID, id snowflake.ID, req feedomain.TaxRuleRequest) (*feedomain.TaxRule, error) {
	rule, err := s.repo.FindTaxRule(ctx, campgroundID, id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, feedomain.ErrTaxRuleNotFound
	}

	if req.Name != "" {
		rule.Name = req.Name
	}
	if req.AppliesTo != "" {
		if !req.AppliesTo.Valid() {
			return nil, feedomain.ErrInvalidTaxRule
		}
		rule.AppliesTo = req.AppliesTo
	}
	if req.RatePercent < 0 || req.AmountCents < 0 {
		return nil, feedomain.ErrInvalidTaxRule
	}
	rule.RatePercent = req.RatePercent
	rule.AmountCents = req.AmountCents
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	rule.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateTaxRule(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *Service) DeleteTaxRule(ctx context.Context, campgroundID, id snowflake.ID) error {
	return s.repo.DeleteTaxRule(ctx, campgroundID, id)
}

func (s *Service) ListTaxRules(ctx context.Context, campgroundID snowflake.ID) ([]feedomain.TaxRule, error) {
	return s.repo.ListTaxRules(ctx, campgroundID)
}

func (s *Service) GetGuestFeeConfig(ctx context.Context, campgroundID snowflake.ID) (*feedomain.GuestFeeConfig, error) {
	return s.repo.GetGuestFeeConfig(ctx, campgroundID)
}

func (s *Service) PutGuestFeeConfig(ctx context.Context, cfg feedomain.GuestFeeConfig) (*feedomain.GuestFeeConfig, error) {
	cfg.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpsertGuestFeeConfig(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *Service) CreateUpsell(ctx context.Context, req feedomain.UpsellRequest) (*feedomain.Upsell, error) {
	if req.Name == "" || req.PriceCents < 0 {
		return nil, feedomain.ErrInvalidUpsell
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now().UTC()
	upsell := &feedomain.Upsell{
		ID:           s.genID.Generate(),
		CampgroundID: req.CampgroundID,
		Name:         req.Name,
		PriceCents:   req.PriceCents,
		Active:       active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.InsertUpsell(ctx, upsell); err != nil {
		return nil, err
	}
	return upsell, nil
}

func (s *Service) DeleteUpsell(ctx context.Context, campgroundID, id snowflake.ID) error {
	return s.repo.DeleteUpsell(ctx, campgroundID, id)
}

func (s *Service) ListUpsells(ctx context.Context, campgroundID snowflake.ID) ([]feedomain.Upsell, error) {
	return s.repo.ListUpsells(ctx, campgroundID)
}

func validateTaxRule(req feedomain.TaxRuleRequest) error {
	if req.Name == "" {
		return feedomain.ErrInvalidTaxRule
	}
	if req.RatePercent < 0 || req.AmountCents < 0 {
		return feedomain.ErrInvalidTaxRule
	}
	if req.RatePercent == 0 && req.AmountCents == 0 {
		return feedomain.ErrInvalidTaxRule
	}
	if req.AppliesTo != "" && !req.AppliesTo.Valid() {
		return feedomain.ErrInvalidTaxRule
	}
	return nil
}
