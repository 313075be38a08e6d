package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	campgrounddomain "github.com/campreserv/keepr/internal/campground/domain"
	"github.com/campreserv/keepr/internal/campground/repository"
	"github.com/campreserv/keepr/internal/cancellation"
	"github.com/campreserv/keepr/internal/deposit"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID *snowflake.Node
	repo  campgrounddomain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

func NewService(p ServiceParam) campgrounddomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("campground.service"),

		genID: p.GenID,
		repo:  repository.NewRepository(p.DB),
	}
}

func (s *Service) Create(ctx context.Context, req campgrounddomain.CreateRequest) (*campgrounddomain.Campground, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, campgrounddomain.ErrInvalidCampground
	}
	tz := req.Timezone
	if tz == "" {
		tz = "UTC"
	}

	now := time.Now().UTC()
	cg := &campgrounddomain.Campground{
		ID:          s.genID.Generate(),
		Name:        name,
		Slug:        slug.Make(name),
		Timezone:    tz,
		RequiresTax: req.RequiresTax,
		Deposit:     deposit.Config{Rule: deposit.RuleNone},
		CancellationPolicy: cancellation.Policy{
			PolicyType:  cancellation.PolicyFlexible,
			WindowHours: 48,
			FeeType:     cancellation.FeeNone,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, cg); err != nil {
		return nil, err
	}
	return cg, nil
}

func (s *Service) Get(ctx context.Context, id snowflake.ID) (*campgrounddomain.Campground, error) {
	cg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cg == nil {
		return nil, campgrounddomain.ErrCampgroundNotFound
	}
	return cg, nil
}

func (s *Service) List(ctx context.Context) ([]campgrounddomain.Campground, error) {
	return s.repo.List(ctx)
}

func (s *Service) PatchPolicies(ctx context.Context, id snowflake.ID, req campgrounddomain.PatchPoliciesRequest) (*campgrounddomain.Campground, error) {
	cg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cg == nil {
		return nil, campgrounddomain.ErrCampgroundNotFound
	}

	if req.RequiresTax != nil {
		cg.RequiresTax = *req.RequiresTax
	}

	if req.DepositRule != nil {
		if !req.DepositRule.Valid() {
			return nil, campgrounddomain.ErrInvalidPolicy
		}
		cg.Deposit.Rule = *req.DepositRule
	}
	if req.DepositPercentage != nil {
		if *req.DepositPercentage < 0 || *req.DepositPercentage > 100 {
			return nil, campgrounddomain.ErrInvalidPolicy
		}
		cg.Deposit.Percentage = req.DepositPercentage
	}
	if req.DepositFlatCents != nil {
		if *req.DepositFlatCents < 0 {
			return nil, campgrounddomain.ErrInvalidPolicy
		}
		cg.Deposit.FlatCents = req.DepositFlatCents
	}

	if req.PolicyType != nil {
		if !req.PolicyType.Valid() {
			return nil, campgrounddomain.ErrInvalidPolicy
		}
		cg.CancellationPolicy.PolicyType = *req.PolicyType
	}
	if req.WindowHours != nil {
		if *req.WindowHours < 0 {
			return nil, campgrounddomain.ErrInvalidPolicy
		}
		cg.CancellationPolicy.WindowHours = *req.WindowHours
	}
	if req.FeeType != nil {
		if !req.FeeType.Valid() {
			return nil, campgrounddomain.ErrInvalidPolicy
		}
		cg.CancellationPolicy.FeeType = *req.FeeType
	}
	if req.FeeFlatCents != nil {
		if *req.FeeFlatCents < 0 {
			return nil, campgrounddomain.ErrInvalidPolicy
		}
		cg.CancellationPolicy.FeeFlatCents = req.FeeFlatCents
	}
	if req.FeePercent != nil {
		if *req.FeePercent < 0 || *req.FeePercent > 100 {
			return nil, campgrounddomain.ErrInvalidPolicy
		}
		cg.CancellationPolicy.FeePercent = req.FeePercent
	}
	if req.Notes != nil {
		cg.CancellationPolicy.Notes = *req.Notes
	}

	// Policy edits apply to future quotes only; existing reservations
	// keep their snapshotted terms.
	cg.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, cg); err != nil {
		return nil, err
	}
	return cg, nil
}

func (s *Service) CreateSiteClass(ctx context.Context, campgroundID snowflake.ID, name string) (*campgrounddomain.SiteClass, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, campgrounddomain.ErrInvalidSite
	}
	sc := &campgrounddomain.SiteClass{
		ID:           s.genID.Generate(),
		CampgroundID: campgroundID,
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.InsertSiteClass(ctx, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func (s *Service) CreateSite(ctx context.Context, req campgrounddomain.CreateSiteRequest) (*campgrounddomain.Site, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.CampgroundID == 0 || req.SiteClassID == 0 {
		return nil, campgrounddomain.ErrInvalidSite
	}

	now := time.Now().UTC()
	site := &campgrounddomain.Site{
		ID:           s.genID.Generate(),
		CampgroundID: req.CampgroundID,
		SiteClassID:  req.SiteClassID,
		Name:         name,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.InsertSite(ctx, site); err != nil {
		return nil, err
	}
	return site, nil
}

func (s *Service) GetSite(ctx context.Context, campgroundID, siteID snowflake.ID) (*campgrounddomain.Site, error) {
	site, err := s.repo.FindSite(ctx, campgroundID, siteID)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, campgrounddomain.ErrSiteNotFound
	}
	return site, nil
}

func (s *Service) ListSites(ctx context.Context, campgroundID snowflake.ID) ([]campgrounddomain.Site, error) {
	return s.repo.ListSites(ctx, campgroundID)
}
