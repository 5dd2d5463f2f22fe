package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shramik/admin-backend/internal/model"
	"github.com/shramik/admin-backend/internal/response"
)

// WorkerService handles worker account management.
type WorkerService struct {
	workers WorkerStore
	hasher  PasswordHasher
	cache   CacheInvalidator
	log     zerolog.Logger
}

// NewWorkerService creates a new WorkerService. cache may be nil.
func NewWorkerService(workers WorkerStore, hasher PasswordHasher, cache CacheInvalidator, log zerolog.Logger) *WorkerService {
	return &WorkerService{
		workers: workers,
		hasher:  hasher,
		cache:   cache,
		log:     log.With().Str("component", "worker_service").Logger(),
	}
}

// List returns a page of workers matching f, newest first.
func (s *WorkerService) List(ctx context.Context, f model.WorkerFilter, page, perPage int) ([]model.Worker, *response.Pagination, error) {
	page, perPage, limit, offset := pageWindow(page, perPage)
	f.Search = strings.TrimSpace(f.Search)

	workers, total, err := s.workers.ListPaginated(ctx, f, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	if workers == nil {
		workers = []model.Worker{}
	}
	return workers, buildPagination(page, perPage, total), nil
}

// GetByID retrieves a worker by ID.
func (s *WorkerService) GetByID(ctx context.Context, id int64) (*model.Worker, error) {
	w, err := s.workers.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoErr(err)
	}
	return w, nil
}

// Create registers a worker. Role defaults to WORKER and accounts start active
// unless req says otherwise.
func (s *WorkerService) Create(ctx context.Context, req *model.CreateWorkerRequest) (*model.Worker, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	w := &model.Worker{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PhoneNumber:  model.NormalizePhone(req.PhoneNumber),
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
	}
	if w.Role == "" {
		w.Role = model.RoleWorker
	}
	if req.IsActive != nil {
		w.IsActive = *req.IsActive
	}

	if err := s.workers.Create(ctx, w); err != nil {
		return nil, translateRepoErr(err)
	}

	s.invalidate(ctx)
	s.log.Info().Int64("worker_id", w.ID).Str("role", string(w.Role)).Msg("Worker created")
	return w, nil
}

// Update applies the non-empty fields of req.
func (s *WorkerService) Update(ctx context.Context, id int64, req *model.UpdateWorkerRequest) (*model.Worker, error) {
	w, err := s.workers.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoErr(err)
	}
	wasActive := w.IsActive

	if req.FirstName != "" {
		w.FirstName = strings.TrimSpace(req.FirstName)
	}
	if req.LastName != "" {
		w.LastName = strings.TrimSpace(req.LastName)
	}
	if req.PhoneNumber != "" {
		w.PhoneNumber = model.NormalizePhone(req.PhoneNumber)
	}
	if req.Role != "" {
		w.Role = req.Role
	}
	if req.IsActive != nil {
		w.IsActive = *req.IsActive
	}
	if req.Password != "" {
		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		w.PasswordHash = hash
	}

	if err := s.workers.Update(ctx, w); err != nil {
		return nil, translateRepoErr(err)
	}

	if wasActive != w.IsActive {
		s.invalidate(ctx)
		s.logStatus(w)
	}
	return w, nil
}

// Delete removes a worker account.
func (s *WorkerService) Delete(ctx context.Context, id int64) error {
	if err := s.workers.Delete(ctx, id); err != nil {
		return translateRepoErr(err)
	}
	s.invalidate(ctx)
	s.log.Info().Int64("worker_id", id).Msg("Worker deleted")
	return nil
}

// ToggleStatus flips is_active. Existing tokens of a deactivated worker stop
// validating immediately.
func (s *WorkerService) ToggleStatus(ctx context.Context, id int64) (*model.Worker, error) {
	w, err := s.workers.ToggleStatus(ctx, id)
	if err != nil {
		return nil, translateRepoErr(err)
	}
	s.invalidate(ctx)
	s.logStatus(w)
	return w, nil
}

func (s *WorkerService) logStatus(w *model.Worker) {
	if w.IsActive {
		s.log.Info().Int64("worker_id", w.ID).Msg("Worker activated")
		return
	}
	s.log.Warn().Int64("worker_id", w.ID).Msg("Worker deactivated")
}

func (s *WorkerService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
