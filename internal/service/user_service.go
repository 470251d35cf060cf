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
)

var ErrUserNotFound = errors.New("user not found")

// UserService profile and dashboard business interface.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	Dashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates a UserService instance.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("querying user", zap.Error(err))
		return nil, err
	}
	resp := userResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("querying user", zap.Error(err))
		return nil, err
	}

	user.FullName = req.FullName
	user.UpdatedBy = &userID
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("updating profile", zap.Error(err))
		return nil, err
	}

	resp := userResponse(user)
	return &resp, nil
}

// Dashboard returns the account snapshot plus role-specific starting points.
func (s *userService) Dashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("querying user", zap.Error(err))
		return nil, err
	}

	resp := &dto.DashboardResponse{User: userResponse(user)}
	switch user.Role {
	case model.RoleAdmin:
		resp.Actions = []string{"Manage users", "Post announcements", "View reports"}
	default:
		resp.NextSteps = []string{"View tasks", "Add deadlines", "Upload documents"}
	}
	return resp, nil
}

// userResponse maps a user row to its public view.
func userResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.UserID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
