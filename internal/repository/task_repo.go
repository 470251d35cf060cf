package repository

import (
	"context"

	"gorm.io/gorm"

	"lifeorg/backend/internal/model"
)

// TaskFilter narrows task listings.
type TaskFilter struct {
	Query  string // substring match on title/description
	Status string // "all" | "pending" | "completed"
}

// TaskSummary per-owner status counts.
type TaskSummary struct {
	Total     int64
	Completed int64
}

// TaskRepository task data access.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	BatchCreate(ctx context.Context, tasks []model.Task) error
	GetByID(ctx context.Context, id, userID string) (*model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id, userID string) (int64, error)
	List(ctx context.Context, userID string, filter TaskFilter, offset, limit int) ([]model.Task, int64, error)
	Summary(ctx context.Context, userID string) (*TaskSummary, error)
	DeleteStarter(ctx context.Context, userID string) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountCompleted(ctx context.Context) (int64, error)
}

type taskRepo struct {
	db *gorm.DB
}

// NewTaskRepo creates the GORM-backed TaskRepository.
func NewTaskRepo(db *gorm.DB) TaskRepository {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepo) BatchCreate(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tasks).Error
}

func (r *taskRepo) GetByID(ctx context.Context, id, userID string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Where("task_id = ? AND user_id = ?", id, userID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepo) Update(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *taskRepo) Delete(ctx context.Context, id, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("task_id = ? AND user_id = ?", id, userID).
		Delete(&model.Task{})
	return res.RowsAffected, res.Error
}

func (r *taskRepo) List(ctx context.Context, userID string, filter TaskFilter, offset, limit int) ([]model.Task, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.Task{}).Where("user_id = ?", userID)

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		db = db.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	switch filter.Status {
	case model.TaskStatusCompleted:
		db = db.Where("status = ?", model.TaskStatusCompleted)
	case model.TaskStatusPending:
		db = db.Where("status <> ?", model.TaskStatusCompleted)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []model.Task
	err := db.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&tasks).Error
	return tasks, total, err
}

func (r *taskRepo) Summary(ctx context.Context, userID string) (*TaskSummary, error) {
	var s TaskSummary
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ?", userID).
		Count(&s.Total).Error
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ? AND status = ?", userID, model.TaskStatusCompleted).
		Count(&s.Completed).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *taskRepo) DeleteStarter(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND is_starter = ?", userID, true).
		Delete(&model.Task{})
	return res.RowsAffected, res.Error
}

func (r *taskRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).Count(&n).Error
	return n, err
}

func (r *taskRepo) CountCompleted(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("status = ?", model.TaskStatusCompleted).
		Count(&n).Error
	return n, err
}
