package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"lifeorg/backend/internal/dto"
	"lifeorg/backend/internal/service"
	"lifeorg/backend/pkg/response"
)

// AdminHandler admin module HTTP handlers. The whole group sits behind
// RoleAuth("admin").
type AdminHandler struct {
	adminSvc service.AdminService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// Stats returns platform totals.
// GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminSvc.Stats(c.Request.Context())
	if err != nil {
		h.handleAdminError(c, err)
		return
	}

	response.OK(c, stats)
}

// ListUsers lists every account.
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminSvc.ListUsers(c.Request.Context())
	if err != nil {
		h.handleAdminError(c, err)
		return
	}

	response.OK(c, gin.H{"list": users})
}

// AssignRole changes a user's role.
// PUT /api/v1/admin/users/:id/role
func (h *AdminHandler) AssignRole(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "user id required")
		return
	}

	var req dto.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	adminID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.adminSvc.AssignRole(c.Request.Context(), adminID, id, &req); err != nil {
		h.handleAdminError(c, err)
		return
	}

	response.OK(c, nil)
}

// ResetPassword sets a user's password.
// PUT /api/v1/admin/users/:id/reset-password
func (h *AdminHandler) ResetPassword(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "user id required")
		return
	}

	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	adminID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.adminSvc.ResetPassword(c.Request.Context(), adminID, id, &req); err != nil {
		h.handleAdminError(c, err)
		return
	}

	response.OK(c, nil)
}

// AddStarterTasks seeds the onboarding checklist for a user.
// POST /api/v1/admin/users/:id/starter-tasks
func (h *AdminHandler) AddStarterTasks(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "user id required")
		return
	}

	adminID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.adminSvc.AddStarterTasks(c.Request.Context(), adminID, id)
	if err != nil {
		h.handleAdminError(c, err)
		return
	}

	response.OK(c, result)
}

// RemoveStarterTasks deletes a user's seeded starter tasks.
// DELETE /api/v1/admin/users/:id/starter-tasks
func (h *AdminHandler) RemoveStarterTasks(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "user id required")
		return
	}

	result, err := h.adminSvc.RemoveStarterTasks(c.Request.Context(), id)
	if err != nil {
		h.handleAdminError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *AdminHandler) handleAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 12001, "user not found")
	default:
		response.InternalError(c)
	}
}
