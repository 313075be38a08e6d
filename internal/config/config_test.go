package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	require.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)

	require.Equal(t, 25, cfg.Database.MaxOpenConns)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)

	require.Equal(t, time.Minute, cfg.Scheduler.Interval)
	require.Equal(t, 30*time.Minute, cfg.Scheduler.PendingHoldTTL)
	require.Equal(t, 30, cfg.Scheduler.OccupancyHorizonDays)
	require.Equal(t, 90, cfg.Scheduler.ForecastHorizonDays)
	require.Equal(t, 7, cfg.Scheduler.DemandSurgeWindowDays)
	require.Equal(t, 90.0, cfg.Scheduler.DemandSurgePct)

	require.Equal(t, "info", cfg.Observability.LogLevel)
	require.False(t, cfg.Observability.OTELEnabled)
	require.Equal(t, "keepr", cfg.Observability.ServiceName)

	require.Equal(t, 15*time.Minute, cfg.Booking.QuoteTTL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("KEEPR_HTTP_ADDR", ":9090")
	t.Setenv("KEEPR_SCHEDULER_INTERVAL", "5m")
	t.Setenv("KEEPR_OBSERVABILITY_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, 5*time.Minute, cfg.Scheduler.Interval)
	require.Equal(t, "debug", cfg.Observability.LogLevel)
}

func TestReloadNotifiesSubscribers(t *testing.T) {
	var got []string
	OnReload(func(cfg Config) {
		got = append(got, cfg.Observability.LogLevel)
	})

	next := Config{}
	next.Observability.LogLevel = "debug"
	notifyReload(next)

	require.Equal(t, []string{"debug"}, got)
}
