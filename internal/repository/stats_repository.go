package repository

import (
	"context"

	"github.com/shramik/admin-backend/internal/database"
	"github.com/shramik/admin-backend/internal/model"
)

// StatsRepository computes dashboard counters.
type StatsRepository struct {
	db database.DB
}

// NewStatsRepository creates a new StatsRepository.
func NewStatsRepository(db database.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetDashboardStats retrieves all counters in a single round trip.
func (r *StatsRepository) GetDashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	s := &model.DashboardStats{}
	err := r.db.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM workers),
			(SELECT COUNT(*) FROM workers WHERE is_active),
			(SELECT COUNT(*) FROM workers WHERE NOT is_active),
			(SELECT COUNT(*) FROM users WHERE created_at >= NOW() - INTERVAL '30 days'),
			(SELECT COUNT(*) FROM workers WHERE created_at >= NOW() - INTERVAL '30 days')`,
	).Scan(&s.TotalUsers, &s.TotalWorkers, &s.ActiveWorkers, &s.InactiveWorkers, &s.UsersLast30Days, &s.WorkersLast30Days)
	if err != nil {
		return nil, err
	}
	return s, nil
}
