package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shramik/admin-backend/internal/model"
)

// MemoryUserRepository is an in-memory user store for tests.
// It enforces the same email uniqueness as the users table.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]model.User
}

// NewMemoryUserRepository builds an empty in-memory user store.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[int64]model.User)}
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) ListPaginated(_ context.Context, search string, limit, offset int) ([]model.User, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []model.User
	for _, u := range r.users {
		if containsFold(u.Email, search) || containsFold(u.Name, search) {
			matched = append(matched, u)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	return window(matched, limit, offset), len(matched), nil
}

func (r *MemoryUserRepository) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	r.nextID++
	now := time.Now()
	u.ID, u.CreatedAt, u.UpdatedAt = r.nextID, now, now
	r.users[u.ID] = *u
	return nil
}

func (r *MemoryUserRepository) Update(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[u.ID]
	if !ok {
		return ErrNotFound
	}
	for id, existing := range r.users {
		if id != u.ID && existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	u.CreatedAt, u.UpdatedAt = stored.CreatedAt, time.Now()
	r.users[u.ID] = *u
	return nil
}

func (r *MemoryUserRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	return nil
}

// MemoryWorkerRepository is an in-memory worker store for tests. It enforces
// phone number uniqueness.
type MemoryWorkerRepository struct {
	mu      sync.RWMutex
	nextID  int64
	workers map[int64]model.Worker
}

// NewMemoryWorkerRepository builds an empty in-memory worker store.
func NewMemoryWorkerRepository() *MemoryWorkerRepository {
	return &MemoryWorkerRepository{workers: make(map[int64]model.Worker)}
}

func (r *MemoryWorkerRepository) GetByID(_ context.Context, id int64) (*model.Worker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.workers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &w, nil
}

func (r *MemoryWorkerRepository) GetByPhone(_ context.Context, phone string) (*model.Worker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.workers {
		if w.PhoneNumber == phone {
			return &w, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryWorkerRepository) ListPaginated(_ context.Context, f model.WorkerFilter, limit, offset int) ([]model.Worker, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	phone := model.NormalizePhone(f.Search)
	var matched []model.Worker
	for _, w := range r.workers {
		if f.IsActive != nil && w.IsActive != *f.IsActive {
			continue
		}
		if containsFold(w.FirstName, f.Search) || containsFold(w.LastName, f.Search) || (phone != "" && strings.Contains(w.PhoneNumber, phone)) {
			matched = append(matched, w)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	return window(matched, limit, offset), len(matched), nil
}

func (r *MemoryWorkerRepository) Create(_ context.Context, w *model.Worker) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.workers {
		if existing.PhoneNumber == w.PhoneNumber {
			return ErrDuplicatePhone
		}
	}
	r.nextID++
	now := time.Now()
	w.ID, w.CreatedAt, w.UpdatedAt = r.nextID, now, now
	r.workers[w.ID] = *w
	return nil
}

func (r *MemoryWorkerRepository) Update(_ context.Context, w *model.Worker) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.workers[w.ID]
	if !ok {
		return ErrNotFound
	}
	for id, existing := range r.workers {
		if id != w.ID && existing.PhoneNumber == w.PhoneNumber {
			return ErrDuplicatePhone
		}
	}
	w.CreatedAt, w.UpdatedAt = stored.CreatedAt, time.Now()
	r.workers[w.ID] = *w
	return nil
}

func (r *MemoryWorkerRepository) ToggleStatus(_ context.Context, id int64) (*model.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.workers[id]
	if !ok {
		return nil, ErrNotFound
	}
	w.IsActive = !w.IsActive
	w.UpdatedAt = time.Now()
	r.workers[id] = w
	return &w, nil
}

func (r *MemoryWorkerRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.workers[id]; !ok {
		return ErrNotFound
	}
	delete(r.workers, id)
	return nil
}

// MemoryStatsRepository computes dashboard counters over the in-memory stores.
type MemoryStatsRepository struct {
	users   *MemoryUserRepository
	workers *MemoryWorkerRepository
}

// NewMemoryStatsRepository builds a stats source over the given stores.
func NewMemoryStatsRepository(users *MemoryUserRepository, workers *MemoryWorkerRepository) *MemoryStatsRepository {
	return &MemoryStatsRepository{users: users, workers: workers}
}

func (r *MemoryStatsRepository) GetDashboardStats(_ context.Context) (*model.DashboardStats, error) {
	r.users.mu.RLock()
	defer r.users.mu.RUnlock()
	r.workers.mu.RLock()
	defer r.workers.mu.RUnlock()

	cutoff := time.Now().AddDate(0, 0, -30)
	stats := &model.DashboardStats{TotalUsers: len(r.users.users), TotalWorkers: len(r.workers.workers)}
	for _, u := range r.users.users {
		if u.CreatedAt.After(cutoff) {
			stats.UsersLast30Days++
		}
	}
	for _, w := range r.workers.workers {
		if w.IsActive {
			stats.ActiveWorkers++
		} else {
			stats.InactiveWorkers++
		}
		if w.CreatedAt.After(cutoff) {
			stats.WorkersLast30Days++
		}
	}
	return stats, nil
}

func containsFold(s, sub string) bool {
	return sub == "" || strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func window[T any](items []T, limit, offset int) []T {
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
