package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"lifeorg/backend/internal/service"
	"lifeorg/backend/pkg/response"
)

const (
	contentTypeICS  = "text/calendar"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportHandler export module HTTP handlers.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportCalendar downloads one month of the caller's schedule as iCalendar.
// GET /api/v1/export/calendar?month=YYYY-MM&kind=
func (h *ExportHandler) ExportCalendar(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		response.BadRequest(c, 10001, "month required")
		return
	}
	kind := c.Query("kind")

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.CalendarICS(c.Request.Context(), userID, month, kind)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownload(c, contentTypeICS, filename, buf.Bytes())
}

// ExportWeek downloads one week of the caller's entries as a spreadsheet.
// GET /api/v1/export/week?weekStart=YYYY-MM-DD
func (h *ExportHandler) ExportWeek(c *gin.Context) {
	weekStart := c.Query("weekStart")
	if weekStart == "" {
		response.BadRequest(c, 10001, "weekStart required")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.WeekXLSX(c.Request.Context(), userID, weekStart)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownload(c, contentTypeXLSX, filename, buf.Bytes())
}

func writeDownload(c *gin.Context, contentType, filename string, data []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, data)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportMonthInvalid):
		response.BadRequest(c, 18001, "month must be YYYY-MM")
	case errors.Is(err, service.ErrExportWeekInvalid):
		response.BadRequest(c, 18002, "weekStart must be YYYY-MM-DD")
	default:
		response.InternalError(c)
	}
}
