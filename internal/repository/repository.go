package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates every entity repository.
type Repository struct {
	db *gorm.DB

	User         UserRepository
	Task         TaskRepository
	Deadline     DeadlineRepository
	Announcement AnnouncementRepository
	Template     TemplateRepository
	Entry        EntryRepository
}

// NewRepository builds the aggregate over one gorm connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:           db,
		User:         NewUserRepo(db),
		Task:         NewTaskRepo(db),
		Deadline:     NewDeadlineRepo(db),
		Announcement: NewAnnouncementRepo(db),
		Template:     NewTemplateRepo(db),
		Entry:        NewEntryRepo(db),
	}
}

// BeginTx opens a transaction; pair with WithTx to run repositories inside it.
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	tx := r.db.WithContext(ctx).Begin()
	return tx, tx.Error
}

// WithTx returns a repository aggregate bound to an open transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}
