package service

import (
	"context"

	"github.com/shramik/admin-backend/internal/model"
)

// UserStore is the persistence contract for admin users.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ListPaginated(ctx context.Context, search string, limit, offset int) ([]model.User, int, error)
	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int64) error
}

// WorkerStore is the persistence contract for workers.
type WorkerStore interface {
	GetByID(ctx context.Context, id int64) (*model.Worker, error)
	GetByPhone(ctx context.Context, phone string) (*model.Worker, error)
	ListPaginated(ctx context.Context, f model.WorkerFilter, limit, offset int) ([]model.Worker, int, error)
	Create(ctx context.Context, w *model.Worker) error
	Update(ctx context.Context, w *model.Worker) error
	ToggleStatus(ctx context.Context, id int64) (*model.Worker, error)
	Delete(ctx context.Context, id int64) error
}

// StatsSource computes dashboard counters.
type StatsSource interface {
	GetDashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

// CacheInvalidator is notified after every account mutation.
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}
