package service

import (
	"context"
	"testing"
	"time"

	"github.com/shramik/admin-backend/internal/config"
	"github.com/shramik/admin-backend/internal/logger"
	"github.com/shramik/admin-backend/internal/model"
	"github.com/shramik/admin-backend/internal/repository"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

type fixture struct {
	users   *repository.MemoryUserRepository
	workers *repository.MemoryWorkerRepository
	hasher  PasswordHasher
	auth    *AuthService
	userSvc *UserService
	workSvc *WorkerService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := &config.Config{JWTSecret: testSecret, JWTExpiry: time.Hour}
	users := repository.NewMemoryUserRepository()
	workers := repository.NewMemoryWorkerRepository()
	hasher := NewBcryptHasher(bcrypt.MinCost)
	log := logger.Discard()

	return &fixture{
		users:   users,
		workers: workers,
		hasher:  hasher,
		auth:    NewAuthService(cfg, users, workers, hasher, log),
		userSvc: NewUserService(users, hasher, nil, log),
		workSvc: NewWorkerService(workers, hasher, nil, log),
	}
}

func (f *fixture) createAdmin(t *testing.T, email, password string) *model.User {
	t.Helper()
	u, err := f.userSvc.Create(context.Background(), nil, &model.CreateUserRequest{
		Email: email, Name: "Admin " + email, Password: password,
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) createWorker(t *testing.T, phone, password string, active bool) *model.Worker {
	t.Helper()
	w, err := f.workSvc.Create(context.Background(), &model.CreateWorkerRequest{
		FirstName: "Ravi", LastName: "Kumar", PhoneNumber: phone, Password: password, IsActive: &active,
	})
	require.NoError(t, err)
	return w
}

type countingInvalidator struct{ calls int }

func (c *countingInvalidator) Invalidate(context.Context) { c.calls++ }
