package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shramik/admin-backend/internal/middleware"
	"github.com/shramik/admin-backend/internal/model"
	"github.com/shramik/admin-backend/internal/response"
	"github.com/shramik/admin-backend/internal/service"
	"github.com/shramik/admin-backend/internal/validator"
)

// UserHandler handles admin account management.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers godoc
// GET /users
// Lists administrators with pagination, optionally filtered by ?search.
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, perPage := pageParams(c)

	users, pagination, err := h.userService.List(c.Request.Context(), c.Query("search"), page, perPage)
	if err != nil {
		failService(c, err, userCodes)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"users": users}, pagination)
}

// GetUser godoc
// GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		failService(c, err, userCodes)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// CreateUser godoc
// POST /users
// Creates a new administrator. The role is always ADMIN.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.userService.Create(c.Request.Context(), middleware.GetIdentity(c), &req)
	if err != nil {
		failService(c, err, userCodes)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

// UpdateUser godoc
// PUT /users/:id
// Updates name, email or password of an administrator.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, &req)
	if err != nil {
		failService(c, err, userCodes)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// DeleteUser godoc
// DELETE /users/:id
// Deletes an administrator. Deleting one's own account is refused.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.userService.Delete(c.Request.Context(), middleware.GetIdentity(c), id)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			response.Fail(c, http.StatusForbidden, response.ErrCannotDeleteSelf)
			return
		}
		failService(c, err, userCodes)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "User deleted successfully"})
}
