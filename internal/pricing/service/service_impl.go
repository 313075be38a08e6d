package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	pricingdomain "github.com/campreserv/keepr/internal/pricing/domain"
	"github.com/campreserv/keepr/internal/pricing/repository"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID *snowflake.Node
	repo  pricingdomain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

func NewService(p ServiceParam) pricingdomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("pricing.service"),

		genID: p.GenID,
		repo:  repository.NewRepository(p.DB),
	}
}

func (s *Service) Create(ctx context.Context, req pricingdomain.CreateRequest) (*pricingdomain.PricingRule, error) {
	if !req.Trigger.Valid() {
		return nil, pricingdomain.ErrInvalidTrigger
	}
	if !req.AdjustmentType.Valid() {
		return nil, pricingdomain.ErrInvalidAdjustmentType
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	priority := 100
	if req.Priority != nil {
		if *req.Priority < 0 {
			return nil, pricingdomain.ErrInvalidPriority
		}
		priority = *req.Priority
	}

	var metadata []byte
	if len(req.Metadata) > 0 {
		raw, err := json.Marshal(req.Metadata)
		if err != nil {
			return nil, err
		}
		metadata = raw
	}

	now := time.Now().UTC()
	rule := &pricingdomain.PricingRule{
		ID:              s.genID.Generate(),
		CampgroundID:    req.CampgroundID,
		Name:            req.Name,
		Trigger:         req.Trigger,
		AdjustmentType:  req.AdjustmentType,
		AdjustmentValue: req.AdjustmentValue,
		IsActive:        active,
		Priority:        priority,
		Metadata:        metadata,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Insert(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *Service) Update(ctx context.Context, campgroundID, id snowflake.ID, req pricingdomain.UpdateRequest) (*pricingdomain.PricingRule, error) {
	rule, err := s.repo.FindByID(ctx, campgroundID, id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, pricingdomain.ErrRuleNotFound
	}

	if req.Name != nil {
		rule.Name = *req.Name
	}
	if req.Trigger != nil {
		if !req.Trigger.Valid() {
			return nil, pricingdomain.ErrInvalidTrigger
		}
		rule.Trigger = *req.Trigger
	}
	if req.AdjustmentType != nil {
		if !req.AdjustmentType.Valid() {
			return nil, pricingdomain.ErrInvalidAdjustmentType
		}
		rule.AdjustmentType = *req.AdjustmentType
	}
	if req.AdjustmentValue != nil {
		rule.AdjustmentValue = *req.AdjustmentValue
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	if req.Priority != nil {
		if *req.Priority < 0 {
			return nil, pricingdomain.ErrInvalidPriority
		}
		rule.Priority = *req.Priority
	}
	rule.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *Service) Get(ctx context.Context, campgroundID, id snowflake.ID) (*pricingdomain.PricingRule, error) {
	rule, err := s.repo.FindByID(ctx, campgroundID, id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, pricingdomain.ErrRuleNotFound
	}
	return rule, nil
}

func (s *Service) Delete(ctx context.Context, campgroundID, id snowflake.ID) error {
	return s.repo.Delete(ctx, campgroundID, id)
}

func (s *Service) List(ctx context.Context, campgroundID snowflake.ID) ([]pricingdomain.PricingRule, error) {
	return s.repo.List(ctx, campgroundID)
}

func (s *Service) Adjust(ctx context.Context, campgroundID snowflake.ID, baseTotalCents int64, bctx pricingdomain.Context) (*pricingdomain.Adjustment, error) {
	rules, err := s.repo.ListActiveOrdered(ctx, campgroundID)
	if err != nil {
		return nil, err
	}

	adjusted, applied, clamped := applyRules(baseTotalCents, rules, bctx)
	if clamped {
		s.log.Warn("adjusted total clamped to zero",
			zap.String("campground_id", campgroundID.String()),
			zap.Int64("base_total_cents", baseTotalCents),
		)
	}

	return &pricingdomain.Adjustment{
		AdjustedTotalCents: adjusted,
		DeltaCents:         adjusted - baseTotalCents,
		Applied:            applied,
	}, nil
}
