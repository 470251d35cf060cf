package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"lifeorg/backend/internal/model"
)

// EntryFilter narrows entry listings. Zero values mean "no constraint".
type EntryFilter struct {
	Kind string
	From time.Time
	To   time.Time
}

// EntryRepository concrete schedule entry data access, owner-scoped.
type EntryRepository interface {
	Create(ctx context.Context, e *model.ScheduleEntry) error
	GetByID(ctx context.Context, id, userID string) (*model.ScheduleEntry, error)
	Update(ctx context.Context, e *model.ScheduleEntry) error
	Delete(ctx context.Context, id, userID string) (int64, error)
	List(ctx context.Context, userID string, filter EntryFilter) ([]model.ScheduleEntry, error)
	ListInRange(ctx context.Context, userID, kind string, start, end time.Time) ([]model.ScheduleEntry, error)
}

type entryRepo struct {
	db *gorm.DB
}

// NewEntryRepo creates the GORM-backed EntryRepository.
func NewEntryRepo(db *gorm.DB) EntryRepository {
	return &entryRepo{db: db}
}

func (r *entryRepo) Create(ctx context.Context, e *model.ScheduleEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *entryRepo) GetByID(ctx context.Context, id, userID string) (*model.ScheduleEntry, error) {
	var e model.ScheduleEntry
	err := r.db.WithContext(ctx).
		Where("entry_id = ? AND user_id = ?", id, userID).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *entryRepo) Update(ctx context.Context, e *model.ScheduleEntry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *entryRepo) Delete(ctx context.Context, id, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("entry_id = ? AND user_id = ?", id, userID).
		Delete(&model.ScheduleEntry{})
	return result.RowsAffected, result.Error
}

func (r *entryRepo) List(ctx context.Context, userID string, filter EntryFilter) ([]model.ScheduleEntry, error) {
	db := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Kind != "" {
		db = db.Where("kind = ?", filter.Kind)
	}
	if !filter.From.IsZero() {
		db = db.Where("entry_date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		db = db.Where("entry_date <= ?", filter.To)
	}
	var entries []model.ScheduleEntry
	err := db.Order("entry_date ASC, start_time ASC").Find(&entries).Error
	return entries, err
}

// ListInRange returns one kind's entries inside [start, end] inclusive, the
// shape the weekly totals are computed from.
func (r *entryRepo) ListInRange(ctx context.Context, userID, kind string, start, end time.Time) ([]model.ScheduleEntry, error) {
	var entries []model.ScheduleEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ? AND entry_date >= ? AND entry_date <= ?",
			userID, kind, start, end).
		Order("entry_date ASC, start_time ASC").
		Find(&entries).Error
	return entries, err
}
