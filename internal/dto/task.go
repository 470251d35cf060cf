package dto

// ── task module DTOs ──

// TaskListRequest search + filter + pagination.
type TaskListRequest struct {
	Query  string `form:"q"`
	Status string `form:"status" binding:"omitempty,oneof=all pending completed"`
	Page   int    `form:"page"   binding:"omitempty,min=1"`
	Limit  int    `form:"limit"  binding:"omitempty,min=1,max=50"`
}

// CreateTaskRequest new task.
type CreateTaskRequest struct {
	Title       string `json:"title"       binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	DueDate     string `json:"due_date"    binding:"omitempty"` // YYYY-MM-DD
}

// UpdateTaskRequest partial task update.
type UpdateTaskRequest struct {
	Title       *string `json:"title"       binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"      binding:"omitempty,oneof=pending completed"`
}

// TaskResponse one task.
type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	Status      string `json:"status"`
	IsStarter   bool   `json:"is_starter"`
	CreatedAt   string `json:"created_at"`
}

// TaskSummaryResponse progress-bar numbers.
type TaskSummaryResponse struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Pending   int64 `json:"pending"`
	Percent   int   `json:"percent"`
}
