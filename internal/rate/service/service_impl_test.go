package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	ratedomain "github.com/campreserv/keepr/internal/rate/domain"
	"github.com/campreserv/keepr/internal/rate/repository"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&ratedomain.RateEntry{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return &Service{
		db:    db,
		log:   zap.NewNop(),
		genID: node,
		repo:  repository.NewRepository(db),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateRequiresExactlyOneScope(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	campgroundID := svc.genID.Generate()
	siteID := svc.genID.Generate()
	classID := svc.genID.Generate()

	_, err := svc.Create(ctx, ratedomain.CreateRequest{
		CampgroundID:     campgroundID,
		StartDate:        date(2026, 6, 1),
		EndDate:          date(2026, 9, 1),
		NightlyRateCents: 5000,
	})
	require.ErrorIs(t, err, ratedomain.ErrInvalidRateEntry)

	_, err = svc.Create(ctx, ratedomain.CreateRequest{
		CampgroundID:     campgroundID,
		SiteID:           &siteID,
		SiteClassID:      &classID,
		StartDate:        date(2026, 6, 1),
		EndDate:          date(2026, 9, 1),
		NightlyRateCents: 5000,
	})
	require.ErrorIs(t, err, ratedomain.ErrInvalidRateEntry)

	entry, err := svc.Create(ctx, ratedomain.CreateRequest{
		CampgroundID:     campgroundID,
		SiteClassID:      &classID,
		StartDate:        date(2026, 6, 1),
		EndDate:          date(2026, 9, 1),
		NightlyRateCents: 5000,
	})
	require.NoError(t, err)
	require.NotZero(t, entry.ID)
}

func TestResolveSumsNightlyRates(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	campgroundID := svc.genID.Generate()
	siteID := svc.genID.Generate()
	classID := svc.genID.Generate()

	_, err := svc.Create(ctx, ratedomain.CreateRequest{
		CampgroundID:     campgroundID,
		SiteClassID:      &classID,
		StartDate:        date(2026, 6, 1),
		EndDate:          date(2026, 9, 1),
		NightlyRateCents: 5000,
	})
	require.NoError(t, err)

	res, err := svc.Resolve(ctx, campgroundID, siteID, classID, date(2026, 7, 4), date(2026, 7, 7))
	require.NoError(t, err)
	require.Len(t, res.Nights, 3)
	require.Equal(t, int64(15000), res.BaseTotalCents)
	require.Equal(t, int64(5000), res.FirstNightCents())
}

func TestResolveSiteOverrideBeatsClassDefault(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	campgroundID := svc.genID.Generate()
	siteID := svc.genID.Generate()
	classID := svc.genID.Generate()

	_, err := svc.Create(ctx, ratedomain.CreateRequest{
		CampgroundID:     campgroundID,
		SiteClassID:      &classID,
		StartDate:        date(2026, 6, 1),
		EndDate:          date(2026, 9, 1),
		NightlyRateCents: 5000,
	})
	require.NoError(t, err)

	// Override the middle night only.
	_, err = svc.Create(ctx, ratedomain.CreateRequest{
		CampgroundID:     campgroundID,
		SiteID:           &siteID,
		StartDate:        date(2026, 7, 5),
		EndDate:          date(2026, 7, 5),
		NightlyRateCents: 8000,
	})
	require.NoError(t, err)

	res, err := svc.Resolve(ctx, campgroundID, siteID, classID, date(2026, 7, 4), date(2026, 7, 7))
	require.NoError(t, err)
	require.Equal(t, int64(5000+8000+5000), res.BaseTotalCents)
}

func TestResolveGapFailsClosed(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	campgroundID := svc.genID.Generate()
	siteID := svc.genID.Generate()
	classID := svc.genID.Generate()

	// Coverage stops before the last night of the stay.
	_, err := svc.Create(ctx, ratedomain.CreateRequest{
		CampgroundID:     campgroundID,
		SiteClassID:      &classID,
		StartDate:        date(2026, 7, 1),
		EndDate:          date(2026, 7, 5),
		NightlyRateCents: 5000,
	})
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, campgroundID, siteID, classID, date(2026, 7, 4), date(2026, 7, 7))
	require.ErrorIs(t, err, ratedomain.ErrNoRateConfigured)
}

func TestResolveRejectsInvalidRange(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Resolve(ctx, 1, 2, 3, date(2026, 7, 7), date(2026, 7, 7))
	require.ErrorIs(t, err, ratedomain.ErrInvalidDateRange)

	_, err = svc.Resolve(ctx, 1, 2, 3, date(2026, 7, 7), date(2026, 7, 4))
	require.ErrorIs(t, err, ratedomain.ErrInvalidDateRange)
}

func TestPickEntryNewestIDWinsTies(t *testing.T) {
	siteID := snowflake.ID(42)
	classID := snowflake.ID(7)
	night := date(2026, 7, 4)

	entries := []ratedomain.RateEntry{
		{ID: 1, SiteClassID: &classID, StartDate: date(2026, 6, 1), EndDate: date(2026, 9, 1), NightlyRateCents: 5000},
		{ID: 2, SiteClassID: &classID, StartDate: date(2026, 7, 1), EndDate: date(2026, 7, 31), NightlyRateCents: 6000},
	}

	picked := pickEntry(entries, siteID, night)
	require.NotNil(t, picked)
	require.Equal(t, snowflake.ID(2), picked.ID)
}
