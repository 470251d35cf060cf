package repository

import (
	"context"

	"gorm.io/gorm"

	"lifeorg/backend/internal/model"
)

// AnnouncementRepository announcement data access. Announcements are global:
// reads are not owner-scoped, writes go through the admin role check upstream.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *model.Announcement) error
	GetByID(ctx context.Context, id string) (*model.Announcement, error)
	Update(ctx context.Context, a *model.Announcement) error
	Delete(ctx context.Context, id string) (int64, error)
	List(ctx context.Context) ([]model.Announcement, error)
	Count(ctx context.Context) (int64, error)
}

type announcementRepo struct {
	db *gorm.DB
}

// NewAnnouncementRepo creates the GORM-backed AnnouncementRepository.
func NewAnnouncementRepo(db *gorm.DB) AnnouncementRepository {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) Create(ctx context.Context, a *model.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *announcementRepo) GetByID(ctx context.Context, id string) (*model.Announcement, error) {
	var a model.Announcement
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("announcement_id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *announcementRepo) Update(ctx context.Context, a *model.Announcement) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *announcementRepo) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("announcement_id = ?", id).
		Delete(&model.Announcement{})
	return result.RowsAffected, result.Error
}

// List returns every announcement newest first, author preloaded for the
// byline.
func (r *announcementRepo) List(ctx context.Context) ([]model.Announcement, error) {
	var announcements []model.Announcement
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Find(&announcements).Error
	return announcements, err
}

func (r *announcementRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Announcement{}).Count(&n).Error
	return n, err
}
