package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unicrud/internal/app/models/dto"
	"github.com/yigit/unicrud/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
		wantMsg    string
	}{
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found"},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found"},
		{"bad request", apperrors.NewBadRequestError("malformed JSON"), http.StatusBadRequest, dto.ErrorCodeBadRequest, "Invalid request"},
		{"export failed", fmt.Errorf("%w: sheet Courses: disk full", apperrors.ErrExportFailed), http.StatusInternalServerError, dto.ErrorCodeExportFailed, "Export failed"},
		{"rate limited", apperrors.ErrRateLimited, http.StatusTooManyRequests, dto.ErrorCodeRateLimited, "Too many requests"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeError(t, w)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantMsg, resp.Error.Message)
			assert.Empty(t, resp.RequestID)
		})
	}
}

func TestHandleAPIError_BadRequestCarriesDecodeError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	HandleAPIError(c, fmt.Errorf("Invalid course data: %w", apperrors.NewBadRequestError("unexpected EOF")))

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeBadRequest, resp.Error.Code)
	assert.Equal(t, "Invalid course data: unexpected EOF", resp.Error.Details)
}

func TestHandleAPIError_DebugInfoOutsideReleaseMode(t *testing.T) {
	serve := func() dto.ErrorResponse {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		HandleAPIError(c, errors.New("boom"))
		return decodeError(t, w)
	}

	assert.Equal(t, "boom", serve().Error.DebugInfo)

	gin.SetMode(gin.ReleaseMode)
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })
	assert.Empty(t, serve().Error.DebugInfo)
}

func TestHandleAPIError_EchoesRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(zerolog.Nop()))
	router.GET("/courses/:code", func(c *gin.Context) {
		HandleAPIError(c, apperrors.ErrCourseNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/courses/CSE0000", nil)
	req.Header.Set(RequestIDHeader, "req-404")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "req-404", decodeError(t, w).RequestID)
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(zerolog.Nop()))
	var seen string
	router.GET("/", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestRequestID_ReusesIncomingHeader(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(zerolog.Nop()))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRequestLogger_WritesAccessLog(t *testing.T) {
	var buf bytes.Buffer
	router := gin.New()
	router.Use(RequestID(zerolog.New(&buf)), RequestLogger())
	router.GET("/api/courses/:code", func(c *gin.Context) {
		HandleAPIError(c, apperrors.ErrCourseNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/courses/CSE0000", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/courses/CSE0000", entry["path"])
	assert.EqualValues(t, http.StatusNotFound, entry["status"])
}

func TestRateLimit(t *testing.T) {
	router := gin.New()
	router.Use(RateLimit(0.001, 2))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
