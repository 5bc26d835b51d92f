package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unicrud/internal/middleware"
	"github.com/yigit/unicrud/internal/pkg/apperrors"
	"github.com/yigit/unicrud/internal/pkg/spreadsheet"
)

// badBody answers 400 for a request body that could not be decoded
func badBody(ctx *gin.Context, message string, err error) {
	middleware.HandleAPIError(ctx, fmt.Errorf("%s: %w", message, apperrors.NewBadRequestError(err.Error())))
}

// writeWorkbook renders the whole workbook before the first byte is written
func writeWorkbook(ctx *gin.Context, filename string, sheet spreadsheet.Sheet) {
	var buf bytes.Buffer
	if err := spreadsheet.Write(&buf, sheet); err != nil {
		middleware.HandleAPIError(ctx, fmt.Errorf("%w: sheet %s: %w", apperrors.ErrExportFailed, sheet.Name, err))
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, spreadsheet.ContentType, buf.Bytes())
}
