package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shramik/admin-backend/internal/response"
	"github.com/shramik/admin-backend/internal/service"
)

// StatsHandler handles the admin dashboard counters.
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats godoc
// GET /users/stats
// Returns user and worker totals, active/inactive split and 30-day signups.
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetDashboardStats(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, stats)
}
