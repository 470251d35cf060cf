package service

import (
	"go.uber.org/zap"

	"lifeorg/backend/config"
	"lifeorg/backend/internal/repository"
	"lifeorg/backend/pkg/jwt"
	"lifeorg/backend/pkg/redis"
)

// Service aggregates every business service.
type Service struct {
	Auth         AuthService
	User         UserService
	Task         TaskService
	Deadline     DeadlineService
	Announcement AnnouncementService
	Schedule     ScheduleService
	Template     TemplateService
	Admin        AdminService
	Export       ExportService
}

// NewService creates the service aggregate. rdb may be nil when Redis is
// unavailable; token revocation then degrades to expiry-only.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:         NewUserService(repo, logger),
		Task:         NewTaskService(repo, logger),
		Deadline:     NewDeadlineService(repo, logger),
		Announcement: NewAnnouncementService(repo, logger),
		Schedule:     NewScheduleService(cfg, repo, logger),
		Template:     NewTemplateService(cfg, repo, logger),
		Admin:        NewAdminService(repo, logger),
		Export:       NewExportService(cfg, repo, logger),
	}
}
