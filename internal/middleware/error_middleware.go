package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/unicrud/internal/app/models/dto"
	"github.com/yigit/unicrud/internal/pkg/apperrors"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	var (
		status int
		detail *dto.ErrorDetail
	)

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		// err carries the resource-specific message, e.g. "course not found"
		status = http.StatusNotFound
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, capitalize(err.Error()))
	case errors.Is(err, apperrors.ErrBadRequest):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Invalid request").WithDetails(err.Error())
	case errors.Is(err, apperrors.ErrRateLimited):
		status = http.StatusTooManyRequests
		detail = dto.NewErrorDetail(dto.ErrorCodeRateLimited, "Too many requests").WithSeverity(dto.ErrorSeverityWarning)
	case errors.Is(err, apperrors.ErrExportFailed):
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("Export failed")
		status = http.StatusInternalServerError
		detail = withDebugInfo(dto.NewErrorDetail(dto.ErrorCodeExportFailed, "Export failed"), err)
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("Unhandled API error")
		status = http.StatusInternalServerError
		detail = withDebugInfo(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"), err)
	}

	resp := dto.NewErrorResponse(detail)
	resp.RequestID = GetRequestID(c)
	c.JSON(status, resp)
}

// withDebugInfo exposes the underlying error outside release mode only
func withDebugInfo(detail *dto.ErrorDetail, err error) *dto.ErrorDetail {
	if gin.Mode() == gin.ReleaseMode {
		return detail
	}
	return detail.WithDebugInfo("%v", err)
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
