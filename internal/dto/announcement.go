package dto

// ── announcement module DTOs ──

// CreateAnnouncementRequest admin-posted notice.
type CreateAnnouncementRequest struct {
	Title    string `json:"title"    binding:"required,min=1,max=200"`
	Message  string `json:"message"  binding:"required,min=1,max=2000"`
	Category string `json:"category" binding:"omitempty,max=20"`
}

// UpdateAnnouncementRequest partial edit.
type UpdateAnnouncementRequest struct {
	Title    *string `json:"title"    binding:"omitempty,min=1,max=200"`
	Message  *string `json:"message"  binding:"omitempty,min=1,max=2000"`
	Category *string `json:"category" binding:"omitempty,max=20"`
}

// AnnouncementResponse one announcement with its author's display name.
type AnnouncementResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Category   string `json:"category"`
	AuthorName string `json:"author_name,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
