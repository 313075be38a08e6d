package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedLogger(t *testing.T) (gormlogger.Interface, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return newGormLogger(zap.New(core)), logs
}

func TestTraceLogsFailedQuery(t *testing.T) {
	l, logs := newObservedLogger(t)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 0
	}, errors.New("connection reset"))

	entries := logs.FilterMessage("query failed").All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	require.Equal(t, "SELECT 1", entries[0].ContextMap()["sql"])
}

func TestTraceIgnoresRecordNotFound(t *testing.T) {
	l, logs := newObservedLogger(t)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM campgrounds WHERE id = 1", 0
	}, gorm.ErrRecordNotFound)

	require.Empty(t, logs.FilterMessage("query failed").All())
}

func TestTraceWarnsOnSlowQuery(t *testing.T) {
	l, logs := newObservedLogger(t)

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT * FROM reservations", 500
	}, nil)

	entries := logs.FilterMessage("slow query").All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestTraceSilentLevelLogsNothing(t *testing.T) {
	l, logs := newObservedLogger(t)
	silent := l.LogMode(gormlogger.Silent)

	silent.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT 1", 1
	}, errors.New("boom"))

	require.Empty(t, logs.All())
}
