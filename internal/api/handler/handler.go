package handler

import "lifeorg/backend/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Task         *TaskHandler
	Deadline     *DeadlineHandler
	Announcement *AnnouncementHandler
	Schedule     *ScheduleHandler
	Template     *TemplateHandler
	Admin        *AdminHandler
	Export       *ExportHandler
}

// NewHandler creates the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		User:         NewUserHandler(svc.User),
		Task:         NewTaskHandler(svc.Task),
		Deadline:     NewDeadlineHandler(svc.Deadline),
		Announcement: NewAnnouncementHandler(svc.Announcement),
		Schedule:     NewScheduleHandler(svc.Schedule),
		Template:     NewTemplateHandler(svc.Template),
		Admin:        NewAdminHandler(svc.Admin),
		Export:       NewExportHandler(svc.Export),
	}
}
