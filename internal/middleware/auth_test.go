package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shramik/admin-backend/internal/config"
	"github.com/shramik/admin-backend/internal/logger"
	"github.com/shramik/admin-backend/internal/model"
	"github.com/shramik/admin-backend/internal/repository"
	"github.com/shramik/admin-backend/internal/response"
	"github.com/shramik/admin-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	engine      *gin.Engine
	adminToken  string
	workerToken string
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	ctx := context.Background()

	users := repository.NewMemoryUserRepository()
	workers := repository.NewMemoryWorkerRepository()
	admin := &model.User{Email: "a@x.com", Name: "Admin", PasswordHash: "x", Role: model.RoleAdmin}
	require.NoError(t, users.Create(ctx, admin))
	worker := &model.Worker{FirstName: "Ravi", PhoneNumber: "+919876543210", PasswordHash: "x", Role: model.RoleSupervisor, IsActive: true}
	require.NoError(t, workers.Create(ctx, worker))

	cfg := &config.Config{JWTSecret: "mw-secret", JWTExpiry: time.Hour}
	auth := service.NewAuthService(cfg, users, workers, service.NewBcryptHasher(4), logger.Discard())

	adminToken, err := auth.IssueToken(admin)
	require.NoError(t, err)
	workerToken, err := auth.IssueToken(worker)
	require.NoError(t, err)

	r := gin.New()
	r.Use(response.RequestIDMiddleware())
	r.GET("/me", RequireAuth(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, GetIdentity(c))
	})
	r.GET("/admin", RequireAuth(auth), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	return &authFixture{engine: r, adminToken: adminToken, workerToken: workerToken}
}

func (f *authFixture) do(path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) response.ErrCode {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return body.Error.Code
}

func TestRequireAuth(t *testing.T) {
	f := newAuthFixture(t)

	w := f.do("/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, response.ErrTokenRequired, errorCode(t, w))

	w = f.do("/me", "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do("/me", "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, response.ErrTokenInvalid, errorCode(t, w))

	w = f.do("/me", "bearer "+f.workerToken)
	require.Equal(t, http.StatusOK, w.Code)
	var identity service.Identity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &identity))
	assert.Equal(t, model.UserTypeWorker, identity.UserType)
	assert.Equal(t, model.RoleSupervisor, identity.Role)
}

func TestRequireAdmin(t *testing.T) {
	f := newAuthFixture(t)

	assert.Equal(t, http.StatusNoContent, f.do("/admin", "Bearer "+f.adminToken).Code)

	w := f.do("/admin", "Bearer "+f.workerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, response.ErrAdminAccessOnly, errorCode(t, w))
}

// unreachableUsers fails every lookup the way a dropped database connection does.
type unreachableUsers struct {
	*repository.MemoryUserRepository
}

func (unreachableUsers) GetByID(context.Context, int64) (*model.User, error) {
	return nil, errors.New("connection refused")
}

func TestRequireAuthStoreOutage(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	admin := &model.User{Email: "a@x.com", Name: "Admin", PasswordHash: "x", Role: model.RoleAdmin}
	require.NoError(t, users.Create(ctx, admin))

	cfg := &config.Config{JWTSecret: "mw-secret", JWTExpiry: time.Hour}
	auth := service.NewAuthService(cfg, unreachableUsers{users}, repository.NewMemoryWorkerRepository(), service.NewBcryptHasher(4), logger.Discard())
	token, err := auth.IssueToken(admin)
	require.NoError(t, err)

	var logged []string
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Next()
		logged = c.Errors.Errors()
	})
	r.GET("/me", RequireAuth(auth), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, response.ErrInternal, errorCode(t, w))
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "connection refused")
}

func TestRequireAdminWithoutIdentity(t *testing.T) {
	r := gin.New()
	r.GET("/", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
