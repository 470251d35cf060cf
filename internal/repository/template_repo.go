package repository

import (
	"context"

	"gorm.io/gorm"

	"lifeorg/backend/internal/model"
)

// TemplateRepository recurring schedule template data access, owner-scoped.
type TemplateRepository interface {
	Create(ctx context.Context, t *model.ScheduleTemplate) error
	GetByID(ctx context.Context, id, userID string) (*model.ScheduleTemplate, error)
	Update(ctx context.Context, t *model.ScheduleTemplate) error
	Delete(ctx context.Context, id, userID string) (int64, error)
	List(ctx context.Context, userID, kind string) ([]model.ScheduleTemplate, error)
}

type templateRepo struct {
	db *gorm.DB
}

// NewTemplateRepo creates the GORM-backed TemplateRepository.
func NewTemplateRepo(db *gorm.DB) TemplateRepository {
	return &templateRepo{db: db}
}

func (r *templateRepo) Create(ctx context.Context, t *model.ScheduleTemplate) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *templateRepo) GetByID(ctx context.Context, id, userID string) (*model.ScheduleTemplate, error) {
	var t model.ScheduleTemplate
	err := r.db.WithContext(ctx).
		Where("template_id = ? AND user_id = ?", id, userID).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *templateRepo) Update(ctx context.Context, t *model.ScheduleTemplate) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *templateRepo) Delete(ctx context.Context, id, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("template_id = ? AND user_id = ?", id, userID).
		Delete(&model.ScheduleTemplate{})
	return result.RowsAffected, result.Error
}

// List returns the user's templates in week order; kind narrows to work or
// study when non-empty.
func (r *templateRepo) List(ctx context.Context, userID, kind string) ([]model.ScheduleTemplate, error) {
	db := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if kind != "" {
		db = db.Where("kind = ?", kind)
	}
	var templates []model.ScheduleTemplate
	err := db.Order("weekday ASC, start_time ASC").Find(&templates).Error
	return templates, err
}
