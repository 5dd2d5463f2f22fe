package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shramik/admin-backend/internal/config"
	"github.com/shramik/admin-backend/internal/logger"
	"github.com/shramik/admin-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStats struct {
	calls int
	stats model.DashboardStats
	err   error
}

func (s *stubStats) GetDashboardStats(context.Context) (*model.DashboardStats, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := s.stats
	return &out, nil
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestStatsServiceCaches(t *testing.T) {
	mr, rdb := newRedis(t)
	src := &stubStats{stats: model.DashboardStats{TotalUsers: 2, TotalWorkers: 5, ActiveWorkers: 4, InactiveWorkers: 1}}
	svc := NewStatsService(src, rdb, 30*time.Second, logger.Discard())
	ctx := context.Background()

	first, err := svc.GetDashboardStats(ctx)
	require.NoError(t, err)
	second, err := svc.GetDashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.calls)
	assert.True(t, mr.Exists(config.CacheKey.DashboardStatsKey()))

	mr.FastForward(31 * time.Second)
	_, err = svc.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestStatsServiceInvalidate(t *testing.T) {
	mr, rdb := newRedis(t)
	src := &stubStats{stats: model.DashboardStats{TotalUsers: 1}}
	svc := NewStatsService(src, rdb, time.Minute, logger.Discard())
	ctx := context.Background()

	_, err := svc.GetDashboardStats(ctx)
	require.NoError(t, err)

	svc.Invalidate(ctx)
	assert.False(t, mr.Exists(config.CacheKey.DashboardStatsKey()))

	src.stats.TotalUsers = 2
	got, err := svc.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalUsers)
}

func TestStatsServiceFallsBackWhenRedisDown(t *testing.T) {
	mr, rdb := newRedis(t)
	src := &stubStats{stats: model.DashboardStats{TotalWorkers: 3}}
	svc := NewStatsService(src, rdb, time.Minute, logger.Discard())
	mr.Close()

	got, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalWorkers)
}

func TestStatsServiceIgnoresMalformedEntry(t *testing.T) {
	mr, rdb := newRedis(t)
	require.NoError(t, mr.Set(config.CacheKey.DashboardStatsKey(), "{not json"))
	src := &stubStats{stats: model.DashboardStats{TotalUsers: 7}}
	svc := NewStatsService(src, rdb, time.Minute, logger.Discard())

	got, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, got.TotalUsers)
	assert.Equal(t, 1, src.calls)
}

func TestStatsServiceWithoutRedis(t *testing.T) {
	src := &stubStats{err: errors.New("db down")}
	svc := NewStatsService(src, nil, time.Minute, logger.Discard())

	_, err := svc.GetDashboardStats(context.Background())
	assert.EqualError(t, err, "db down")
	svc.Invalidate(context.Background())
}
