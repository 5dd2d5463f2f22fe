package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shramik/admin-backend/internal/response"
)

const healthTimeout = 2 * time.Second

// Pinger is anything that can report reachability, such as *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports process and dependency health.
type HealthHandler struct {
	db        Pinger
	rdb       *redis.Client
	startTime time.Time
}

// NewHealthHandler creates a new HealthHandler. db and rdb may be nil.
func NewHealthHandler(db Pinger, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, rdb: rdb, startTime: time.Now()}
}

// Health godoc
// GET /health
// Returns "ok" when every configured dependency answers, "degraded" with 503 otherwise.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	checks := gin.H{}
	healthy := true

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			checks["database"] = "down"
			healthy = false
		} else {
			checks["database"] = "up"
		}
	}
	if h.rdb != nil {
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			checks["redis"] = "down"
			healthy = false
		} else {
			checks["redis"] = "up"
		}
	}

	status, code := "ok", http.StatusOK
	if !healthy {
		status, code = "degraded", http.StatusServiceUnavailable
	}

	response.Success(c, code, gin.H{
		"status": status,
		"checks": checks,
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
	})
}
