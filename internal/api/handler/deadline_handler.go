package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"lifeorg/backend/internal/dto"
	"lifeorg/backend/internal/service"
	"lifeorg/backend/pkg/response"
)

// DeadlineHandler deadline module HTTP handlers.
type DeadlineHandler struct {
	deadlineSvc service.DeadlineService
}

// NewDeadlineHandler creates a DeadlineHandler.
func NewDeadlineHandler(deadlineSvc service.DeadlineService) *DeadlineHandler {
	return &DeadlineHandler{deadlineSvc: deadlineSvc}
}

// ListDeadlines lists the caller's deadlines soonest first.
// GET /api/v1/deadlines
func (h *DeadlineHandler) ListDeadlines(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	deadlines, err := h.deadlineSvc.List(c.Request.Context(), userID)
	if err != nil {
		h.handleDeadlineError(c, err)
		return
	}

	response.OK(c, gin.H{"list": deadlines})
}

// CreateDeadline creates a deadline for the caller.
// POST /api/v1/deadlines
func (h *DeadlineHandler) CreateDeadline(c *gin.Context) {
	var req dto.CreateDeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	d, err := h.deadlineSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleDeadlineError(c, err)
		return
	}

	response.Created(c, d)
}

// UpdateDeadline partially updates one of the caller's deadlines.
// PATCH /api/v1/deadlines/:id
func (h *DeadlineHandler) UpdateDeadline(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "deadline id required")
		return
	}

	var req dto.UpdateDeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	d, err := h.deadlineSvc.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		h.handleDeadlineError(c, err)
		return
	}

	response.OK(c, d)
}

// DeleteDeadline deletes one of the caller's deadlines.
// DELETE /api/v1/deadlines/:id
func (h *DeadlineHandler) DeleteDeadline(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "deadline id required")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.deadlineSvc.Delete(c.Request.Context(), userID, id); err != nil {
		h.handleDeadlineError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *DeadlineHandler) handleDeadlineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDeadlineNotFound):
		response.NotFound(c, 14001, "deadline not found")
	case errors.Is(err, service.ErrDeadlineDateInvalid):
		response.BadRequest(c, 14002, "due date must be YYYY-MM-DD")
	default:
		response.InternalError(c)
	}
}
