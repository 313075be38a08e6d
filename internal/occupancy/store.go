// Package occupancy keeps the booking-time pricing signals (occupancy
// percentage, demand surge flag) in Redis. The scheduler writes them;
// the quote path reads them. A missing or unreadable occupancy key is
// reported as absent, never as zero occupancy, so occupancy-triggered
// rules don't fire on a cold or down cache.
package occupancy

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	occupancyKeyFmt = "keepr:occupancy:%s"
	demandKeyFmt    = "keepr:demand:%s"
)

type Store struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewStore(rdb *redis.Client, log *zap.Logger) *Store {
	return &Store{rdb: rdb, log: log.Named("occupancy.store")}
}

// Signals returns the cached occupancy percentage and demand surge
// flag for a campground. ok is false when no occupancy reading exists,
// which callers must treat as "unknown", not "empty". Redis errors
// degrade the same way; a pricing quote must not fail because the
// cache is down.
func (s *Store) Signals(ctx context.Context, campgroundID snowflake.ID) (pct float64, surge, ok bool) {
	raw, err := s.rdb.Get(ctx, fmt.Sprintf(occupancyKeyFmt, campgroundID)).Result()
	switch {
	case err == redis.Nil:
	case err != nil:
		s.log.Warn("occupancy signal read failed", zap.Error(err))
	default:
		if v, perr := strconv.ParseFloat(raw, 64); perr == nil {
			pct = v
			ok = true
		}
	}

	raw, err = s.rdb.Get(ctx, fmt.Sprintf(demandKeyFmt, campgroundID)).Result()
	switch {
	case err == redis.Nil:
	case err != nil:
		s.log.Warn("demand signal read failed", zap.Error(err))
	default:
		surge = raw == "1"
	}

	return pct, surge, ok
}

func (s *Store) SetOccupancy(ctx context.Context, campgroundID snowflake.ID, pct float64, ttl time.Duration) error {
	key := fmt.Sprintf(occupancyKeyFmt, campgroundID)
	return s.rdb.Set(ctx, key, strconv.FormatFloat(pct, 'f', 2, 64), ttl).Err()
}

func (s *Store) SetDemandSurge(ctx context.Context, campgroundID snowflake.ID, surge bool, ttl time.Duration) error {
	value := "0"
	if surge {
		value = "1"
	}
	return s.rdb.Set(ctx, fmt.Sprintf(demandKeyFmt, campgroundID), value, ttl).Err()
}
