package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"lifeorg/backend/internal/dto"
	"lifeorg/backend/internal/service"
	"lifeorg/backend/pkg/response"
)

// ScheduleHandler schedule entry HTTP handlers.
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// ListEntries lists the caller's entries plus the current week's summary.
// GET /api/v1/schedule/entries?kind=&from=&to=
func (h *ScheduleHandler) ListEntries(c *gin.Context) {
	var req dto.EntryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.scheduleSvc.List(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, result)
}

// CreateEntry inserts an entry and reports the post-insert weekly total with
// any advisory.
// POST /api/v1/schedule/entries
func (h *ScheduleHandler) CreateEntry(c *gin.Context) {
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.scheduleSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.Created(c, result)
}

// UpdateEntry rewrites one entry.
// PUT /api/v1/schedule/entries/:id
func (h *ScheduleHandler) UpdateEntry(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "entry id required")
		return
	}

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	entry, advisory, err := h.scheduleSvc.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, gin.H{"entry": entry, "advisory": advisory})
}

// DeleteEntry removes one entry.
// DELETE /api/v1/schedule/entries/:id
func (h *ScheduleHandler) DeleteEntry(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "entry id required")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.scheduleSvc.Delete(c.Request.Context(), userID, id); err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEntryNotFound):
		response.NotFound(c, 16001, "schedule entry not found")
	case errors.Is(err, service.ErrEntryDateInvalid):
		response.BadRequest(c, 16002, "entry date must be YYYY-MM-DD")
	case errors.Is(err, service.ErrEntryTooLong):
		response.BadRequest(c, 16003, "entry exceeds the maximum allowed duration")
	default:
		response.InternalError(c)
	}
}
