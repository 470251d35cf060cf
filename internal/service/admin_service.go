package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lifeorg/backend/internal/dto"
	"lifeorg/backend/internal/model"
	"lifeorg/backend/internal/repository"
)

// AdminService platform administration business interface.
type AdminService interface {
	Stats(ctx context.Context) (*dto.AdminStatsResponse, error)
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	AssignRole(ctx context.Context, adminID, userID string, req *dto.AssignRoleRequest) error
	ResetPassword(ctx context.Context, adminID, userID string, req *dto.ResetPasswordRequest) error
	AddStarterTasks(ctx context.Context, adminID, userID string) (*dto.StarterTasksResponse, error)
	RemoveStarterTasks(ctx context.Context, userID string) (*dto.StarterTasksResponse, error)
}

type adminService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAdminService creates an AdminService instance.
func NewAdminService(repo *repository.Repository, logger *zap.Logger) AdminService {
	return &adminService{repo: repo, logger: logger}
}

// ────────────────────── Stats ──────────────────────

func (s *adminService) Stats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	var (
		stats dto.AdminStatsResponse
		err   error
	)
	if stats.TotalUsers, err = s.repo.User.Count(ctx); err != nil {
		s.logger.Error("counting users", zap.Error(err))
		return nil, err
	}
	if stats.TotalTasks, err = s.repo.Task.Count(ctx); err != nil {
		s.logger.Error("counting tasks", zap.Error(err))
		return nil, err
	}
	if stats.CompletedTasks, err = s.repo.Task.CountCompleted(ctx); err != nil {
		s.logger.Error("counting completed tasks", zap.Error(err))
		return nil, err
	}
	if stats.TotalAnnouncements, err = s.repo.Announcement.Count(ctx); err != nil {
		s.logger.Error("counting announcements", zap.Error(err))
		return nil, err
	}
	if stats.TotalDeadlines, err = s.repo.Deadline.Count(ctx); err != nil {
		s.logger.Error("counting deadlines", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

// ────────────────────── ListUsers ──────────────────────

func (s *adminService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("listing users", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, userResponse(&users[i]))
	}
	return result, nil
}

// ────────────────────── AssignRole ──────────────────────

func (s *adminService) AssignRole(ctx context.Context, adminID, userID string, req *dto.AssignRoleRequest) error {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("querying user", zap.Error(err))
		return err
	}

	user.Role = req.Role
	user.UpdatedBy = &adminID
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("updating role", zap.Error(err))
		return err
	}

	s.logger.Info("role changed",
		zap.String("user_id", userID),
		zap.String("role", req.Role),
		zap.String("changed_by", adminID))
	return nil
}

// ────────────────────── ResetPassword ──────────────────────

func (s *adminService) ResetPassword(ctx context.Context, adminID, userID string, req *dto.ResetPasswordRequest) error {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("querying user", zap.Error(err))
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hashing password", zap.Error(err))
		return err
	}

	user.PasswordHash = string(hash)
	user.UpdatedBy = &adminID
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("resetting password", zap.Error(err))
		return err
	}

	s.logger.Info("password reset",
		zap.String("user_id", userID),
		zap.String("reset_by", adminID))
	return nil
}

// ────────────────────── AddStarterTasks ──────────────────────

// AddStarterTasks seeds the onboarding checklist for a user, all-or-nothing.
// Each item's due date is today plus its own offset.
func (s *adminService) AddStarterTasks(ctx context.Context, adminID, userID string) (*dto.StarterTasksResponse, error) {
	if _, err := s.repo.User.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("querying user", zap.Error(err))
		return nil, err
	}

	today := time.Now()
	tasks := make([]model.Task, 0, len(starterTasks))
	for _, st := range starterTasks {
		due := today.AddDate(0, 0, st.DueDays)
		task := model.Task{
			UserID:      userID,
			Title:       st.Title,
			Description: st.Description,
			DueDate:     &due,
			Status:      model.TaskStatusPending,
			IsStarter:   true,
		}
		task.CreatedBy = &adminID
		task.UpdatedBy = &adminID
		tasks = append(tasks, task)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("starting transaction", zap.Error(err))
		return nil, err
	}

	txRepo := s.repo.WithTx(tx)
	if err := txRepo.Task.BatchCreate(ctx, tasks); err != nil {
		tx.Rollback()
		s.logger.Error("seeding starter tasks", zap.Error(err))
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		s.logger.Error("committing starter tasks", zap.Error(err))
		return nil, err
	}

	return &dto.StarterTasksResponse{Inserted: len(tasks)}, nil
}

// ────────────────────── RemoveStarterTasks ──────────────────────

func (s *adminService) RemoveStarterTasks(ctx context.Context, userID string) (*dto.StarterTasksResponse, error) {
	deleted, err := s.repo.Task.DeleteStarter(ctx, userID)
	if err != nil {
		s.logger.Error("removing starter tasks", zap.Error(err))
		return nil, err
	}
	return &dto.StarterTasksResponse{Deleted: int(deleted)}, nil
}
