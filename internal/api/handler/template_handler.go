package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"lifeorg/backend/internal/dto"
	"lifeorg/backend/internal/service"
	"lifeorg/backend/pkg/response"
)

// TemplateHandler recurring template HTTP handlers.
type TemplateHandler struct {
	templateSvc service.TemplateService
}

// NewTemplateHandler creates a TemplateHandler.
func NewTemplateHandler(templateSvc service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateSvc: templateSvc}
}

// ListTemplates lists the caller's templates in week order.
// GET /api/v1/schedule/templates?kind=
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	var req dto.TemplateListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	templates, err := h.templateSvc.List(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.OK(c, gin.H{"list": templates})
}

// CreateTemplate creates a recurring rule.
// POST /api/v1/schedule/templates
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	tpl, err := h.templateSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.Created(c, tpl)
}

// DeleteTemplate removes a recurring rule. Already-persisted entries are
// untouched.
// DELETE /api/v1/schedule/templates/:id
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "template id required")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.templateSvc.Delete(c.Request.Context(), userID, id); err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.OK(c, nil)
}

// GenerateOccurrences expands the caller's templates for a month or a week.
// GET /api/v1/schedule/templates/generate?month=YYYY-MM | weekStart=YYYY-MM-DD
func (h *TemplateHandler) GenerateOccurrences(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.templateSvc.Generate(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *TemplateHandler) handleTemplateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTemplateNotFound):
		response.NotFound(c, 17001, "schedule template not found")
	case errors.Is(err, service.ErrTemplateDateInvalid):
		response.BadRequest(c, 17002, "template dates invalid")
	case errors.Is(err, service.ErrTemplateSubjectEmpty):
		response.BadRequest(c, 17005, "study templates need a subject")
	case errors.Is(err, service.ErrGenerateTargetNeeded):
		response.BadRequest(c, 17003, "either month or weekStart must be provided")
	case errors.Is(err, service.ErrGenerateTargetBad):
		response.BadRequest(c, 17004, "provide one of month (YYYY-MM) or weekStart (YYYY-MM-DD)")
	default:
		response.InternalError(c)
	}
}
