package dto

// ── user / profile DTOs ──

// UserResponse public view of an account.
type UserResponse struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// UpdateProfileRequest rename own account.
type UpdateProfileRequest struct {
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
}

// DashboardResponse current-user snapshot with role-specific hints.
type DashboardResponse struct {
	User      UserResponse `json:"user"`
	NextSteps []string     `json:"next_steps,omitempty"`
	Actions   []string     `json:"actions,omitempty"`
}
