package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shramik/admin-backend/internal/config"
	"github.com/shramik/admin-backend/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func limitedEngine(l Limiter) *gin.Engine {
	r := gin.New()
	r.Use(RateLimit(l, logger.Discard()))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func hit(r http.Handler, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRedisLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	l := NewRedisLimiter(rdb, 3, time.Minute)
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	r := limitedEngine(l)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"))
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.2"), "other clients have their own budget")

	now = now.Add(time.Minute)
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"), "next window starts fresh")
}

func TestRedisLimiterSetsExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	l := NewRedisLimiter(rdb, 10, time.Minute)
	ok, err := l.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	require.True(t, ok)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Equal(t, time.Minute, mr.TTL(keys[0]))
}

func TestRedisLimiterRestoresMissingExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	l := NewRedisLimiter(rdb, 10, time.Minute)
	now := time.Date(2026, 5, 1, 10, 0, 30, 0, time.UTC)
	l.now = func() time.Time { return now }

	// A counter left behind without a TTL.
	key := config.CacheKey.RateLimitKey("10.0.0.1", now.UnixNano()/int64(time.Minute))
	require.NoError(t, mr.Set(key, "4"))
	require.Zero(t, mr.TTL(key))

	ok, err := l.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "5", got)
	assert.Equal(t, time.Minute, mr.TTL(key))
}

func TestRateLimitFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer rdb.Close()
	mr.Close()

	r := limitedEngine(NewRedisLimiter(rdb, 1, time.Minute))
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"))
}

type brokenLimiter struct{}

func (brokenLimiter) Allow(context.Context, string) (bool, error) { return false, errors.New("boom") }

func TestRateLimitFailsOpenOnLimiterError(t *testing.T) {
	assert.Equal(t, http.StatusOK, hit(limitedEngine(brokenLimiter{}), "10.0.0.1"))
}

func TestMemoryLimiter(t *testing.T) {
	l := NewMemoryLimiter(2, time.Minute)
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "a")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, _ := l.Allow(ctx, "a")
	assert.False(t, ok)

	now = now.Add(time.Minute)
	ok, _ = l.Allow(ctx, "a")
	assert.True(t, ok, "tokens refill after an interval")

	now = now.Add(10 * time.Minute)
	_, _ = l.Allow(ctx, "b")
	l.mu.Lock()
	_, stale := l.visitors["a"]
	l.mu.Unlock()
	assert.False(t, stale, "idle visitors are swept")
}

func TestNewLimiterPicksBackend(t *testing.T) {
	assert.IsType(t, &MemoryLimiter{}, NewLimiter(nil, 10))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	assert.IsType(t, &RedisLimiter{}, NewLimiter(rdb, 10))
}
