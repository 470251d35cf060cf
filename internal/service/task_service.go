package service

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"lifeorg/backend/internal/dto"
	"lifeorg/backend/internal/model"
	"lifeorg/backend/internal/repository"
	"lifeorg/backend/internal/scheduling"
)

// ── task module business errors ──

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskDateInvalid = errors.New("due date must be YYYY-MM-DD")
)

// TaskService personal task business interface.
type TaskService interface {
	List(ctx context.Context, userID string, req *dto.TaskListRequest) ([]dto.TaskResponse, int64, error)
	Create(ctx context.Context, userID string, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetByID(ctx context.Context, userID, id string) (*dto.TaskResponse, error)
	Update(ctx context.Context, userID, id string, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	Delete(ctx context.Context, userID, id string) error
	Summary(ctx context.Context, userID string) (*dto.TaskSummaryResponse, error)
}

type taskService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTaskService creates a TaskService instance.
func NewTaskService(repo *repository.Repository, logger *zap.Logger) TaskService {
	return &taskService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *taskService) List(ctx context.Context, userID string, req *dto.TaskListRequest) ([]dto.TaskResponse, int64, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = 20
	}

	filter := repository.TaskFilter{Query: req.Query, Status: req.Status}
	tasks, total, err := s.repo.Task.List(ctx, userID, filter, (page-1)*limit, limit)
	if err != nil {
		s.logger.Error("listing tasks", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		result = append(result, taskResponse(&tasks[i]))
	}
	return result, total, nil
}

// ────────────────────── Create ──────────────────────

func (s *taskService) Create(ctx context.Context, userID string, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	task := &model.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      model.TaskStatusPending,
	}
	if req.DueDate != "" {
		due, err := time.Parse(scheduling.DateLayout, req.DueDate)
		if err != nil {
			return nil, ErrTaskDateInvalid
		}
		task.DueDate = &due
	}
	task.CreatedBy = &userID
	task.UpdatedBy = &userID

	if err := s.repo.Task.Create(ctx, task); err != nil {
		s.logger.Error("creating task", zap.Error(err))
		return nil, err
	}

	resp := taskResponse(task)
	return &resp, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *taskService) GetByID(ctx context.Context, userID, id string) (*dto.TaskResponse, error) {
	task, err := s.repo.Task.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("querying task", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	resp := taskResponse(task)
	return &resp, nil
}

// ────────────────────── Update ──────────────────────

func (s *taskService) Update(ctx context.Context, userID, id string, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.repo.Task.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("querying task", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			task.DueDate = nil
		} else {
			due, err := time.Parse(scheduling.DateLayout, *req.DueDate)
			if err != nil {
				return nil, ErrTaskDateInvalid
			}
			task.DueDate = &due
		}
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	task.UpdatedBy = &userID

	if err := s.repo.Task.Update(ctx, task); err != nil {
		s.logger.Error("updating task", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := taskResponse(task)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *taskService) Delete(ctx context.Context, userID, id string) error {
	rows, err := s.repo.Task.Delete(ctx, id, userID)
	if err != nil {
		s.logger.Error("deleting task", zap.String("id", id), zap.Error(err))
		return err
	}
	if rows == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// ────────────────────── Summary ──────────────────────

func (s *taskService) Summary(ctx context.Context, userID string) (*dto.TaskSummaryResponse, error) {
	sum, err := s.repo.Task.Summary(ctx, userID)
	if err != nil {
		s.logger.Error("summarizing tasks", zap.Error(err))
		return nil, err
	}

	percent := 0
	if sum.Total > 0 {
		percent = int(math.Round(float64(sum.Completed) / float64(sum.Total) * 100))
	}

	return &dto.TaskSummaryResponse{
		Total:     sum.Total,
		Completed: sum.Completed,
		Pending:   sum.Total - sum.Completed,
		Percent:   percent,
	}, nil
}

// ── helpers ──

func taskResponse(t *model.Task) dto.TaskResponse {
	resp := dto.TaskResponse{
		ID:          t.TaskID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		IsStarter:   t.IsStarter,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
	if t.DueDate != nil {
		resp.DueDate = t.DueDate.Format(scheduling.DateLayout)
	}
	return resp
}
