package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(h gin.HandlerFunc, reqID string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", h)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if reqID != "" {
		req.Header.Set("X-Request-ID", reqID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSuccessEnvelope(t *testing.T) {
	w := serve(func(c *gin.Context) {
		SuccessWithPagination(c, http.StatusOK, gin.H{"users": []string{}}, &Pagination{Page: 1, PerPage: 10, TotalItems: 0})
	}, "req-1")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotContains(t, body, "error")
	assert.Contains(t, body, "pagination")
	assert.Equal(t, "req-1", body["metadata"].(map[string]any)["request_id"])
}

func TestFailEnvelopes(t *testing.T) {
	w := serve(func(c *gin.Context) {
		FailWithFields(c, http.StatusBadRequest, ErrValidation, map[string]string{"email": "email is required"})
	}, "")

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Nil(t, body.Data)
	assert.Equal(t, ErrValidation, body.Error.Code)
	assert.Equal(t, GetMessage(ErrValidation), body.Error.Message)
	assert.Equal(t, "email is required", body.Error.Fields["email"])
	assert.NotEmpty(t, body.Metadata.RequestID)

	w = serve(func(c *gin.Context) {
		FailWithData(c, http.StatusUnauthorized, ErrTokenInvalid, gin.H{"success": false})
	}, "")
	var withData struct {
		Data  map[string]any
		Error ErrorBody
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &withData))
	assert.Equal(t, false, withData.Data["success"])
	assert.Equal(t, ErrTokenInvalid, withData.Error.Code)
}

func TestAbortFailStopsChain(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	reached := false
	r.GET("/", func(c *gin.Context) { AbortFail(c, http.StatusTooManyRequests, ErrRateLimitExceeded) }, func(c *gin.Context) { reached = true })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.False(t, reached)
}

func TestRequestIDMiddleware(t *testing.T) {
	echo := func(c *gin.Context) { Success(c, http.StatusOK, nil) }

	w := serve(echo, "edge-7f3a.01_b")
	assert.Equal(t, "edge-7f3a.01_b", w.Header().Get(HeaderRequestID))

	for _, bad := range []string{"bad id\nforged=1", strings.Repeat("a", maxRequestIDLen+1), "<script>"} {
		w = serve(echo, bad)
		got := w.Header().Get(HeaderRequestID)
		assert.NotEqual(t, bad, got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err, "replaced with a generated id")
	}

	w = serve(echo, "")
	_, err := uuid.Parse(w.Header().Get(HeaderRequestID))
	assert.NoError(t, err)
}

func TestGetMessageUnknownCode(t *testing.T) {
	assert.Equal(t, "An unexpected error occurred.", GetMessage("NOPE"))
}
