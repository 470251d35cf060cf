package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"lifeorg/backend/internal/dto"
	"lifeorg/backend/internal/service"
	"lifeorg/backend/pkg/response"
)

// AnnouncementHandler announcement module HTTP handlers. Reads are open to
// every signed-in user; writes sit behind the admin role middleware.
type AnnouncementHandler struct {
	announcementSvc service.AnnouncementService
}

// NewAnnouncementHandler creates an AnnouncementHandler.
func NewAnnouncementHandler(announcementSvc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementSvc: announcementSvc}
}

// ListAnnouncements lists every announcement newest first.
// GET /api/v1/announcements
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	announcements, err := h.announcementSvc.List(c.Request.Context())
	if err != nil {
		h.handleAnnouncementError(c, err)
		return
	}

	response.OK(c, gin.H{"list": announcements})
}

// GetAnnouncement returns one announcement.
// GET /api/v1/announcements/:id
func (h *AnnouncementHandler) GetAnnouncement(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "announcement id required")
		return
	}

	a, err := h.announcementSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleAnnouncementError(c, err)
		return
	}

	response.OK(c, a)
}

// CreateAnnouncement posts a new announcement.
// POST /api/v1/announcements (admin)
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	authorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	a, err := h.announcementSvc.Create(c.Request.Context(), authorID, &req)
	if err != nil {
		h.handleAnnouncementError(c, err)
		return
	}

	response.Created(c, a)
}

// UpdateAnnouncement edits an announcement.
// PATCH /api/v1/announcements/:id (admin)
func (h *AnnouncementHandler) UpdateAnnouncement(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "announcement id required")
		return
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	a, err := h.announcementSvc.Update(c.Request.Context(), callerID, id, &req)
	if err != nil {
		h.handleAnnouncementError(c, err)
		return
	}

	response.OK(c, a)
}

// DeleteAnnouncement removes an announcement.
// DELETE /api/v1/announcements/:id (admin)
func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "announcement id required")
		return
	}

	if err := h.announcementSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleAnnouncementError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *AnnouncementHandler) handleAnnouncementError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAnnouncementNotFound):
		response.NotFound(c, 15001, "announcement not found")
	default:
		response.InternalError(c)
	}
}
