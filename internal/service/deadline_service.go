package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"lifeorg/backend/internal/dto"
	"lifeorg/backend/internal/model"
	"lifeorg/backend/internal/repository"
	"lifeorg/backend/internal/scheduling"
)

// ── deadline module business errors ──

var (
	ErrDeadlineNotFound    = errors.New("deadline not found")
	ErrDeadlineDateInvalid = errors.New("due date must be YYYY-MM-DD")
)

// DeadlineService deadline business interface.
type DeadlineService interface {
	List(ctx context.Context, userID string) ([]dto.DeadlineResponse, error)
	Create(ctx context.Context, userID string, req *dto.CreateDeadlineRequest) (*dto.DeadlineResponse, error)
	Update(ctx context.Context, userID, id string, req *dto.UpdateDeadlineRequest) (*dto.DeadlineResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type deadlineService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDeadlineService creates a DeadlineService instance.
func NewDeadlineService(repo *repository.Repository, logger *zap.Logger) DeadlineService {
	return &deadlineService{repo: repo, logger: logger}
}

func (s *deadlineService) List(ctx context.Context, userID string) ([]dto.DeadlineResponse, error) {
	deadlines, err := s.repo.Deadline.List(ctx, userID)
	if err != nil {
		s.logger.Error("listing deadlines", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DeadlineResponse, 0, len(deadlines))
	for i := range deadlines {
		result = append(result, deadlineResponse(&deadlines[i]))
	}
	return result, nil
}

func (s *deadlineService) Create(ctx context.Context, userID string, req *dto.CreateDeadlineRequest) (*dto.DeadlineResponse, error) {
	due, err := time.Parse(scheduling.DateLayout, req.DueDate)
	if err != nil {
		return nil, ErrDeadlineDateInvalid
	}

	d := &model.Deadline{
		UserID:   userID,
		Title:    req.Title,
		Category: coerce(req.Category, model.DeadlineCategories, "other"),
		DueDate:  due,
		Notes:    req.Notes,
		Priority: coerce(req.Priority, model.DeadlinePriorities, "medium"),
		Status:   "upcoming",
	}
	d.CreatedBy = &userID
	d.UpdatedBy = &userID

	if err := s.repo.Deadline.Create(ctx, d); err != nil {
		s.logger.Error("creating deadline", zap.Error(err))
		return nil, err
	}

	resp := deadlineResponse(d)
	return &resp, nil
}

func (s *deadlineService) Update(ctx context.Context, userID, id string, req *dto.UpdateDeadlineRequest) (*dto.DeadlineResponse, error) {
	d, err := s.repo.Deadline.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeadlineNotFound
		}
		s.logger.Error("querying deadline", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		d.Title = *req.Title
	}
	if req.Category != nil {
		d.Category = coerce(*req.Category, model.DeadlineCategories, "other")
	}
	if req.DueDate != nil {
		due, err := time.Parse(scheduling.DateLayout, *req.DueDate)
		if err != nil {
			return nil, ErrDeadlineDateInvalid
		}
		d.DueDate = due
	}
	if req.Notes != nil {
		d.Notes = *req.Notes
	}
	if req.Priority != nil {
		d.Priority = coerce(*req.Priority, model.DeadlinePriorities, "medium")
	}
	if req.Status != nil {
		d.Status = coerce(*req.Status, model.DeadlineStatuses, "upcoming")
	}
	d.UpdatedBy = &userID

	if err := s.repo.Deadline.Update(ctx, d); err != nil {
		s.logger.Error("updating deadline", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := deadlineResponse(d)
	return &resp, nil
}

func (s *deadlineService) Delete(ctx context.Context, userID, id string) error {
	rows, err := s.repo.Deadline.Delete(ctx, id, userID)
	if err != nil {
		s.logger.Error("deleting deadline", zap.String("id", id), zap.Error(err))
		return err
	}
	if rows == 0 {
		return ErrDeadlineNotFound
	}
	return nil
}

// ── helpers ──

// coerce folds value into the allowed set, falling back to def. Unknown
// values are accepted and normalized rather than rejected.
func coerce(value string, allowed []string, def string) string {
	for _, a := range allowed {
		if value == a {
			return value
		}
	}
	return def
}

func deadlineResponse(d *model.Deadline) dto.DeadlineResponse {
	return dto.DeadlineResponse{
		ID:       d.DeadlineID,
		Title:    d.Title,
		Category: d.Category,
		DueDate:  d.DueDate.Format(scheduling.DateLayout),
		Notes:    d.Notes,
		Priority: d.Priority,
		Status:   d.Status,
	}
}
