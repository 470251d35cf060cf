package dto

// ── deadline module DTOs ──

// CreateDeadlineRequest new deadline. Category and priority outside the
// allowed sets are coerced to defaults, not rejected.
type CreateDeadlineRequest struct {
	Title    string `json:"title"    binding:"required,min=1,max=200"`
	Category string `json:"category" binding:"omitempty,max=20"`
	DueDate  string `json:"due_date" binding:"required"` // YYYY-MM-DD
	Notes    string `json:"notes"    binding:"omitempty,max=1000"`
	Priority string `json:"priority" binding:"omitempty,max=10"`
}

// UpdateDeadlineRequest partial deadline update.
type UpdateDeadlineRequest struct {
	Title    *string `json:"title"    binding:"omitempty,min=1,max=200"`
	Category *string `json:"category" binding:"omitempty,max=20"`
	DueDate  *string `json:"due_date"`
	Notes    *string `json:"notes"    binding:"omitempty,max=1000"`
	Priority *string `json:"priority" binding:"omitempty,max=10"`
	Status   *string `json:"status"   binding:"omitempty,max=20"`
}

// DeadlineResponse one deadline.
type DeadlineResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	DueDate  string `json:"due_date"`
	Notes    string `json:"notes,omitempty"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
}
