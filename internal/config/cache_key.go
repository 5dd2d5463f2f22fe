package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// DashboardStatsKey returns the cache key for the aggregated user/worker counters.
func (r *CacheKeyStruct) DashboardStatsKey() string {
	return "stats:dashboard"
}

// RateLimitKey returns the fixed-window counter key for a client IP.
func (r *CacheKeyStruct) RateLimitKey(ip string, window int64) string {
	return fmt.Sprintf("rl:%s:%d", ip, window)
}

var CacheKey = NewCacheKeyStruct()
