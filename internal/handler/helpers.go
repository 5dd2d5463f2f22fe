package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shramik/admin-backend/internal/response"
	"github.com/shramik/admin-backend/internal/service"
)

// parseID reads the :id path parameter. On failure it writes a 400 and
// returns false.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}

// pageParams reads ?page and ?per_page; the service clamps them.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	return page, perPage
}

// resourceCodes names the error codes a resource uses for missing and
// duplicate records.
type resourceCodes struct {
	notFound response.ErrCode
	conflict response.ErrCode
}

var (
	userCodes   = resourceCodes{notFound: response.ErrUserNotFound, conflict: response.ErrEmailTaken}
	workerCodes = resourceCodes{notFound: response.ErrWorkerNotFound, conflict: response.ErrPhoneTaken}
)

// failService maps a service error to a status and code. Unknown errors are
// attached to the context for the request logger and reported as 500.
func failService(c *gin.Context, err error, codes resourceCodes) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, codes.notFound)
	case errors.Is(err, service.ErrConflict):
		response.Fail(c, http.StatusConflict, codes.conflict)
	case errors.Is(err, service.ErrForbidden):
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
	default:
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
