package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifeorg/backend/config"
	"lifeorg/backend/internal/api/handler"
	"lifeorg/backend/internal/api/middleware"
	"lifeorg/backend/internal/model"
	"lifeorg/backend/pkg/jwt"
	"lifeorg/backend/pkg/redis"
)

// Setup builds the Gin engine with all middleware and routes.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// auth (public, rate limited)
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 20, time.Minute))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
		}

		// everything below requires a valid access token
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.User.GetProfile)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// profile + dashboard
			authorized.GET("/profile/me", h.User.GetProfile)
			authorized.PUT("/profile/me", h.User.UpdateProfile)
			authorized.GET("/dashboard/me", h.User.Dashboard)

			// tasks
			tasks := authorized.Group("/tasks")
			{
				tasks.GET("", h.Task.ListTasks)
				tasks.GET("/summary", h.Task.TaskSummary)
				tasks.POST("", h.Task.CreateTask)
				tasks.GET("/:id", h.Task.GetTask)
				tasks.PUT("/:id", h.Task.UpdateTask)
				tasks.DELETE("/:id", h.Task.DeleteTask)
			}

			// deadlines
			deadlines := authorized.Group("/deadlines")
			{
				deadlines.GET("", h.Deadline.ListDeadlines)
				deadlines.POST("", h.Deadline.CreateDeadline)
				deadlines.PATCH("/:id", h.Deadline.UpdateDeadline)
				deadlines.DELETE("/:id", h.Deadline.DeleteDeadline)
			}

			// announcements: reads for everyone, writes for admins
			announcements := authorized.Group("/announcements")
			{
				announcements.GET("", h.Announcement.ListAnnouncements)
				announcements.GET("/:id", h.Announcement.GetAnnouncement)
				announcements.POST("", middleware.RoleAuth(model.RoleAdmin), h.Announcement.CreateAnnouncement)
				announcements.PATCH("/:id", middleware.RoleAuth(model.RoleAdmin), h.Announcement.UpdateAnnouncement)
				announcements.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Announcement.DeleteAnnouncement)
			}

			// schedule entries and templates
			schedule := authorized.Group("/schedule")
			{
				schedule.GET("/entries", h.Schedule.ListEntries)
				schedule.POST("/entries", h.Schedule.CreateEntry)
				schedule.PUT("/entries/:id", h.Schedule.UpdateEntry)
				schedule.DELETE("/entries/:id", h.Schedule.DeleteEntry)

				schedule.GET("/templates", h.Template.ListTemplates)
				schedule.POST("/templates", h.Template.CreateTemplate)
				schedule.DELETE("/templates/:id", h.Template.DeleteTemplate)
				schedule.GET("/templates/generate", h.Template.GenerateOccurrences)
			}

			// exports
			export := authorized.Group("/export")
			{
				export.GET("/calendar", h.Export.ExportCalendar)
				export.GET("/week", h.Export.ExportWeek)
			}

			// admin
			admin := authorized.Group("/admin")
			admin.Use(middleware.RoleAuth(model.RoleAdmin))
			{
				admin.GET("/stats", h.Admin.Stats)
				admin.GET("/users", h.Admin.ListUsers)
				admin.PUT("/users/:id/role", h.Admin.AssignRole)
				admin.PUT("/users/:id/reset-password", h.Admin.ResetPassword)
				admin.POST("/users/:id/starter-tasks", h.Admin.AddStarterTasks)
				admin.DELETE("/users/:id/starter-tasks", h.Admin.RemoveStarterTasks)
			}
		}
	}

	return r
}
