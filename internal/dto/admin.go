package dto

// ── admin module DTOs ──

// AdminStatsResponse platform totals.
type AdminStatsResponse struct {
	TotalUsers         int64 `json:"total_users"`
	TotalTasks         int64 `json:"total_tasks"`
	CompletedTasks     int64 `json:"completed_tasks"`
	TotalAnnouncements int64 `json:"total_announcements"`
	TotalDeadlines     int64 `json:"total_deadlines"`
}

// AssignRoleRequest change a user's role.
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=newcomer admin"`
}

// ResetPasswordRequest admin sets a user's password.
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6,max=72"`
}

// StarterTasksResponse seeding/removal result.
type StarterTasksResponse struct {
	Inserted int `json:"inserted,omitempty"`
	Deleted  int `json:"deleted,omitempty"`
}
