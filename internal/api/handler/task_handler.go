package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"lifeorg/backend/internal/dto"
	"lifeorg/backend/internal/service"
	"lifeorg/backend/pkg/response"
)

// TaskHandler task module HTTP handlers.
type TaskHandler struct {
	taskSvc service.TaskService
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(taskSvc service.TaskService) *TaskHandler {
	return &TaskHandler{taskSvc: taskSvc}
}

// ListTasks lists the caller's tasks with search, filter and pagination.
// GET /api/v1/tasks?q=&status=&page=&limit=
func (h *TaskHandler) ListTasks(c *gin.Context) {
	var req dto.TaskListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	tasks, total, err := h.taskSvc.List(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = 20
	}
	response.OKPage(c, tasks, total, page, limit)
}

// CreateTask creates a task for the caller.
// POST /api/v1/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	task, err := h.taskSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}

	response.Created(c, task)
}

// GetTask returns one of the caller's tasks.
// GET /api/v1/tasks/:id
func (h *TaskHandler) GetTask(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "task id required")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	task, err := h.taskSvc.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}

	response.OK(c, task)
}

// UpdateTask partially updates one of the caller's tasks.
// PUT /api/v1/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "task id required")
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	task, err := h.taskSvc.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}

	response.OK(c, task)
}

// DeleteTask deletes one of the caller's tasks.
// DELETE /api/v1/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "task id required")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.taskSvc.Delete(c.Request.Context(), userID, id); err != nil {
		h.handleTaskError(c, err)
		return
	}

	response.OK(c, nil)
}

// TaskSummary returns progress counts for the caller's tasks.
// GET /api/v1/tasks/summary
func (h *TaskHandler) TaskSummary(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	sum, err := h.taskSvc.Summary(c.Request.Context(), userID)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}

	response.OK(c, sum)
}

func (h *TaskHandler) handleTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		response.NotFound(c, 13001, "task not found")
	case errors.Is(err, service.ErrTaskDateInvalid):
		response.BadRequest(c, 13002, "due date must be YYYY-MM-DD")
	default:
		response.InternalError(c)
	}
}
