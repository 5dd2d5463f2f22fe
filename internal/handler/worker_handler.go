package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shramik/admin-backend/internal/model"
	"github.com/shramik/admin-backend/internal/response"
	"github.com/shramik/admin-backend/internal/service"
	"github.com/shramik/admin-backend/internal/validator"
)

// WorkerHandler handles admin-facing worker management.
type WorkerHandler struct {
	workerService *service.WorkerService
}

// NewWorkerHandler creates a new WorkerHandler.
func NewWorkerHandler(workerService *service.WorkerService) *WorkerHandler {
	return &WorkerHandler{workerService: workerService}
}

// ListWorkers godoc
// GET /workers
// Lists workers with pagination, optionally filtered by ?search and ?is_active.
func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	page, perPage := pageParams(c)

	filter := model.WorkerFilter{Search: c.Query("search")}
	if raw := c.Query("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidFilter)
			return
		}
		filter.IsActive = &active
	}

	workers, pagination, err := h.workerService.List(c.Request.Context(), filter, page, perPage)
	if err != nil {
		failService(c, err, workerCodes)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"workers": workers}, pagination)
}

// GetWorker godoc
// GET /workers/:id
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	worker, err := h.workerService.GetByID(c.Request.Context(), id)
	if err != nil {
		failService(c, err, workerCodes)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"worker": worker})
}

// CreateWorker godoc
// POST /workers
// Creates a new worker. Role defaults to WORKER, status to active.
func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	var req model.CreateWorkerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	worker, err := h.workerService.Create(c.Request.Context(), &req)
	if err != nil {
		failService(c, err, workerCodes)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"worker": worker})
}

// UpdateWorker godoc
// PUT /workers/:id
// Updates a worker's details, and optionally their password.
func (h *WorkerHandler) UpdateWorker(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateWorkerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	worker, err := h.workerService.Update(c.Request.Context(), id, &req)
	if err != nil {
		failService(c, err, workerCodes)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"worker": worker})
}

// ToggleWorkerStatus godoc
// PUT /workers/:id/toggle-status
// Flips a worker between active and inactive. Deactivation revokes their tokens.
func (h *WorkerHandler) ToggleWorkerStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	worker, err := h.workerService.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		failService(c, err, workerCodes)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"worker": worker})
}

// DeleteWorker godoc
// DELETE /workers/:id
func (h *WorkerHandler) DeleteWorker(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.workerService.Delete(c.Request.Context(), id); err != nil {
		failService(c, err, workerCodes)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Worker deleted successfully"})
}
