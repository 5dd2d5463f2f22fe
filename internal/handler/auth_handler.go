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

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// POST /auth/login
// Validates email + password of an administrator, returns JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.authService.VerifyAdmin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

// WorkerLogin godoc
// POST /auth/worker-login
// Validates phone number + password of a worker, returns JWT.
// Failures keep the {success:false} body in data alongside the error.
func (h *AuthHandler) WorkerLogin(c *gin.Context) {
	var req model.WorkerLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	worker, err := h.authService.VerifyWorker(c.Request.Context(), req.PhoneNumber, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			failWorkerLogin(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		case errors.Is(err, service.ErrInactiveAccount):
			failWorkerLogin(c, http.StatusForbidden, response.ErrAccountInactive)
		default:
			_ = c.Error(err)
			failWorkerLogin(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	token, err := h.authService.IssueToken(worker)
	if err != nil {
		_ = c.Error(err)
		failWorkerLogin(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success":  true,
		"message":  "Login successful",
		"token":    token,
		"userType": model.UserTypeWorker,
		"worker":   worker,
	})
}

func failWorkerLogin(c *gin.Context, status int, code response.ErrCode) {
	response.FailWithData(c, status, code, gin.H{
		"success": false,
		"message": response.GetMessage(code),
		"token":   nil,
		"worker":  nil,
	})
}

// Validate godoc
// POST /auth/validate
// Verifies a token and returns the live identity behind it.
func (h *AuthHandler) Validate(c *gin.Context) {
	var req model.ValidateTokenRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	identity, err := h.authService.ValidateToken(c.Request.Context(), req.Token)
	if err != nil {
		status, code := http.StatusUnauthorized, response.ErrTokenInvalid
		if !errors.Is(err, service.ErrInvalidToken) {
			_ = c.Error(err)
			status, code = http.StatusInternalServerError, response.ErrInternal
		}
		response.FailWithData(c, status, code, gin.H{
			"success": false,
			"message": response.GetMessage(code),
			"user":    nil,
		})
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Token is valid",
		"user":    identity,
	})
}

// Me godoc
// GET /auth/me
// Returns the identity of the current token holder, admin or worker.
func (h *AuthHandler) Me(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	if identity == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": identity})
}
