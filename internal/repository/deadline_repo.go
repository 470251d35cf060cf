package repository

import (
	"context"

	"gorm.io/gorm"

	"lifeorg/backend/internal/model"
)

// DeadlineRepository deadline data access, owner-scoped.
type DeadlineRepository interface {
	Create(ctx context.Context, d *model.Deadline) error
	GetByID(ctx context.Context, id, userID string) (*model.Deadline, error)
	Update(ctx context.Context, d *model.Deadline) error
	Delete(ctx context.Context, id, userID string) (int64, error)
	List(ctx context.Context, userID string) ([]model.Deadline, error)
	Count(ctx context.Context) (int64, error)
}

type deadlineRepo struct {
	db *gorm.DB
}

// NewDeadlineRepo creates the GORM-backed DeadlineRepository.
func NewDeadlineRepo(db *gorm.DB) DeadlineRepository {
	return &deadlineRepo{db: db}
}

func (r *deadlineRepo) Create(ctx context.Context, d *model.Deadline) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *deadlineRepo) GetByID(ctx context.Context, id, userID string) (*model.Deadline, error) {
	var d model.Deadline
	err := r.db.WithContext(ctx).
		Where("deadline_id = ? AND user_id = ?", id, userID).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *deadlineRepo) Update(ctx context.Context, d *model.Deadline) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *deadlineRepo) Delete(ctx context.Context, id, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("deadline_id = ? AND user_id = ?", id, userID).
		Delete(&model.Deadline{})
	return result.RowsAffected, result.Error
}

// List returns the user's deadlines soonest first.
func (r *deadlineRepo) List(ctx context.Context, userID string) ([]model.Deadline, error) {
	var deadlines []model.Deadline
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date ASC, created_at ASC").
		Find(&deadlines).Error
	return deadlines, err
}

func (r *deadlineRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Deadline{}).Count(&n).Error
	return n, err
}
