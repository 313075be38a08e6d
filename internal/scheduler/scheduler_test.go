package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	availabilitydomain "github.com/campreserv/keepr/internal/availability/domain"
	campgrounddomain "github.com/campreserv/keepr/internal/campground/domain"
	campgroundrepo "github.com/campreserv/keepr/internal/campground/repository"
	"github.com/campreserv/keepr/internal/clock"
	"github.com/campreserv/keepr/internal/config"
	"github.com/campreserv/keepr/internal/occupancy"
)

type stubAvailabilitySvc struct {
	availabilitydomain.Service

	// occupancy per window length in days
	byWindowDays map[int]float64
}

func (s stubAvailabilitySvc) Occupancy(_ context.Context, _ snowflake.ID, arrival, departure time.Time) (float64, error) {
	days := int(departure.Sub(arrival).Hours() / 24)
	return s.byWindowDays[days], nil
}

func newSignalsScheduler(t *testing.T, avail availabilitydomain.Service) (*Scheduler, *occupancy.Store, snowflake.ID) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&campgrounddomain.Campground{}))

	repo := campgroundrepo.NewRepository(db)
	cg := &campgrounddomain.Campground{ID: 1, Name: "Pine Hollow", Slug: "pine-hollow", Timezone: "UTC"}
	require.NoError(t, repo.Insert(context.Background(), cg))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	store := occupancy.NewStore(rdb, zap.NewNop())

	s := &Scheduler{
		db: db,
		cfg: config.SchedulerConfig{
			Interval:              time.Minute,
			OccupancyHorizonDays:  30,
			DemandSurgeWindowDays: 7,
			DemandSurgePct:        90,
		},
		log:             zap.NewNop(),
		clock:           clock.Fixed{T: time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)},
		campgrounds:     repo,
		availabilitySvc: avail,
		signals:         store,
	}
	return s, store, cg.ID
}

func TestRefreshOccupancySignalsWritesSurge(t *testing.T) {
	// Near window nearly full, long horizon moderate: surge fires.
	s, store, cgID := newSignalsScheduler(t, stubAvailabilitySvc{
		byWindowDays: map[int]float64{7: 95, 30: 60},
	})

	require.NoError(t, s.RefreshOccupancySignalsJob(context.Background()))

	pct, surge, ok := store.Signals(context.Background(), cgID)
	require.True(t, ok)
	require.Equal(t, 60.0, pct)
	require.True(t, surge)
}

func TestRefreshOccupancySignalsQuietWindow(t *testing.T) {
	s, store, cgID := newSignalsScheduler(t, stubAvailabilitySvc{
		byWindowDays: map[int]float64{7: 40, 30: 60},
	})

	require.NoError(t, s.RefreshOccupancySignalsJob(context.Background()))

	pct, surge, ok := store.Signals(context.Background(), cgID)
	require.True(t, ok)
	require.Equal(t, 60.0, pct)
	require.False(t, surge)
}
