package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shramik/admin-backend/internal/model"
	"github.com/shramik/admin-backend/internal/response"
)

// UserService handles admin account management.
type UserService struct {
	users  UserStore
	hasher PasswordHasher
	cache  CacheInvalidator
	log    zerolog.Logger
}

// NewUserService creates a new UserService. cache may be nil.
func NewUserService(users UserStore, hasher PasswordHasher, cache CacheInvalidator, log zerolog.Logger) *UserService {
	return &UserService{
		users:  users,
		hasher: hasher,
		cache:  cache,
		log:    log.With().Str("component", "user_service").Logger(),
	}
}

// List returns a page of admin users, newest first.
func (s *UserService) List(ctx context.Context, search string, page, perPage int) ([]model.User, *response.Pagination, error) {
	page, perPage, limit, offset := pageWindow(page, perPage)

	users, total, err := s.users.ListPaginated(ctx, strings.TrimSpace(search), limit, offset)
	if err != nil {
		return nil, nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, buildPagination(page, perPage, total), nil
}

// GetByID retrieves an admin user by ID.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoErr(err)
	}
	return u, nil
}

// Create registers a new administrator. The role is always ADMIN.
func (s *UserService) Create(ctx context.Context, actor *Identity, req *model.CreateUserRequest) (*model.User, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		Email:        normalizeEmail(req.Email),
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, translateRepoErr(err)
	}

	s.invalidate(ctx)
	s.log.Info().Int64("user_id", u.ID).Int64("actor_id", actorID(actor)).Msg("Admin created")
	return u, nil
}

// Update applies the non-empty fields of req. A new password is rehashed;
// the role is written back as ADMIN regardless of what was stored.
func (s *UserService) Update(ctx context.Context, id int64, req *model.UpdateUserRequest) (*model.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoErr(err)
	}

	if req.Email != "" {
		u.Email = normalizeEmail(req.Email)
	}
	if req.Name != "" {
		u.Name = strings.TrimSpace(req.Name)
	}
	if req.Password != "" {
		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = hash
	}
	u.Role = model.RoleAdmin

	if err := s.users.Update(ctx, u); err != nil {
		return nil, translateRepoErr(err)
	}
	return u, nil
}

// Delete removes an admin account. An admin cannot delete themself.
func (s *UserService) Delete(ctx context.Context, actor *Identity, id int64) error {
	if actor != nil && actor.UserType == model.UserTypeUser && actor.ID == id {
		return fmt.Errorf("%w: cannot delete own account", ErrForbidden)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return translateRepoErr(err)
	}

	s.invalidate(ctx)
	s.log.Info().Int64("user_id", id).Int64("actor_id", actorID(actor)).Msg("Admin deleted")
	return nil
}

func (s *UserService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func actorID(actor *Identity) int64 {
	if actor == nil {
		return 0
	}
	return actor.ID
}
