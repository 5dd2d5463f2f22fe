package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shramik/admin-backend/internal/config"
	"github.com/shramik/admin-backend/internal/model"
)

// StatsService serves dashboard counters, cached in Redis when available.
type StatsService struct {
	source StatsSource
	rdb    *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewStatsService creates a new StatsService. A nil rdb disables caching.
func NewStatsService(source StatsSource, rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *StatsService {
	return &StatsService{
		source: source,
		rdb:    rdb,
		ttl:    ttl,
		log:    log.With().Str("component", "stats_service").Logger(),
	}
}

// GetDashboardStats returns cached counters or recomputes them.
// Cache failures fall through to the database.
func (s *StatsService) GetDashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	key := config.CacheKey.DashboardStatsKey()

	if s.rdb != nil && s.ttl > 0 {
		raw, err := s.rdb.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var stats model.DashboardStats
			if jsonErr := json.Unmarshal(raw, &stats); jsonErr == nil {
				return &stats, nil
			}
			s.log.Warn().Msg("Discarding malformed stats cache entry")
		case !errors.Is(err, redis.Nil):
			s.log.Warn().Err(err).Msg("Stats cache read failed")
		}
	}

	stats, err := s.source.GetDashboardStats(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil && s.ttl > 0 {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.rdb.Set(ctx, key, raw, s.ttl).Err(); err != nil {
				s.log.Warn().Err(err).Msg("Stats cache write failed")
			}
		}
	}
	return stats, nil
}

// Invalidate drops the cached counters.
func (s *StatsService) Invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, config.CacheKey.DashboardStatsKey()).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Stats cache invalidation failed")
	}
}
