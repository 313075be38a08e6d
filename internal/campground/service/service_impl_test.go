package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	campgrounddomain "github.com/campreserv/keepr/internal/campground/domain"
	"github.com/campreserv/keepr/internal/campground/repository"
	"github.com/campreserv/keepr/internal/cancellation"
	"github.com/campreserv/keepr/internal/deposit"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&campgrounddomain.Campground{},
		&campgrounddomain.SiteClass{},
		&campgrounddomain.Site{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return &Service{
		db:    db,
		log:   zap.NewNop(),
		genID: node,
		repo:  repository.NewRepository(db),
	}
}

func TestCreateDefaultsPolicies(t *testing.T) {
	svc := newTestService(t)

	cg, err := svc.Create(context.Background(), campgrounddomain.CreateRequest{Name: "Pine Hollow"})
	require.NoError(t, err)
	require.Equal(t, "pine-hollow", cg.Slug)
	require.Equal(t, "UTC", cg.Timezone)
	require.Equal(t, deposit.RuleNone, cg.Deposit.Rule)
	require.Equal(t, cancellation.PolicyFlexible, cg.CancellationPolicy.PolicyType)
	require.Equal(t, 48, cg.CancellationPolicy.WindowHours)
}

func TestCreateRejectsBlankName(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), campgrounddomain.CreateRequest{Name: "   "})
	require.ErrorIs(t, err, campgrounddomain.ErrInvalidCampground)
}

func TestPatchPoliciesPartialUpdate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cg, err := svc.Create(ctx, campgrounddomain.CreateRequest{Name: "Pine Hollow"})
	require.NoError(t, err)

	rule := deposit.RulePercent
	pct := 25.0
	patched, err := svc.PatchPolicies(ctx, cg.ID, campgrounddomain.PatchPoliciesRequest{
		DepositRule:       &rule,
		DepositPercentage: &pct,
	})
	require.NoError(t, err)
	require.Equal(t, deposit.RulePercent, patched.Deposit.Rule)
	require.Equal(t, 25.0, *patched.Deposit.Percentage)

	// Fields not named in the patch are untouched.
	require.Equal(t, cancellation.PolicyFlexible, patched.CancellationPolicy.PolicyType)
	require.Equal(t, 48, patched.CancellationPolicy.WindowHours)
}

func TestPatchPoliciesValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cg, err := svc.Create(ctx, campgrounddomain.CreateRequest{Name: "Pine Hollow"})
	require.NoError(t, err)

	badPct := 150.0
	_, err = svc.PatchPolicies(ctx, cg.ID, campgrounddomain.PatchPoliciesRequest{DepositPercentage: &badPct})
	require.ErrorIs(t, err, campgrounddomain.ErrInvalidPolicy)

	badWindow := -1
	_, err = svc.PatchPolicies(ctx, cg.ID, campgrounddomain.PatchPoliciesRequest{WindowHours: &badWindow})
	require.ErrorIs(t, err, campgrounddomain.ErrInvalidPolicy)

	badRule := deposit.Rule("half")
	_, err = svc.PatchPolicies(ctx, cg.ID, campgrounddomain.PatchPoliciesRequest{DepositRule: &badRule})
	require.ErrorIs(t, err, campgrounddomain.ErrInvalidPolicy)
}

func TestPatchPoliciesUnknownCampground(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.PatchPolicies(context.Background(), snowflake.ID(999), campgrounddomain.PatchPoliciesRequest{})
	require.ErrorIs(t, err, campgrounddomain.ErrCampgroundNotFound)
}

func TestCreateSiteAndList(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cg, err := svc.Create(ctx, campgrounddomain.CreateRequest{Name: "Pine Hollow"})
	require.NoError(t, err)

	class, err := svc.CreateSiteClass(ctx, cg.ID, "Standard RV")
	require.NoError(t, err)

	site, err := svc.CreateSite(ctx, campgrounddomain.CreateSiteRequest{
		CampgroundID: cg.ID,
		SiteClassID:  class.ID,
		Name:         "A1",
	})
	require.NoError(t, err)
	require.True(t, site.Active)

	sites, err := svc.ListSites(ctx, cg.ID)
	require.NoError(t, err)
	require.Len(t, sites, 1)
}
