package dto

// ── schedule entry DTOs ──

// EntryListRequest owner's entries, optionally bounded by date.
type EntryListRequest struct {
	Kind string `form:"kind" binding:"omitempty,oneof=work study"`
	From string `form:"from" binding:"omitempty"` // YYYY-MM-DD
	To   string `form:"to"   binding:"omitempty"` // YYYY-MM-DD
}

// CreateEntryRequest new shift or study session.
type CreateEntryRequest struct {
	Kind      string `json:"kind"       binding:"required,oneof=work study"`
	EntryDate string `json:"entry_date" binding:"required"` // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:MM
	EndTime   string `json:"end_time"   binding:"required"` // HH:MM
	Workplace string `json:"workplace"  binding:"omitempty,max=100"`
	Role      string `json:"role"       binding:"omitempty,max=100"`
	Subject   string `json:"subject"    binding:"omitempty,max=100"`
	Notes     string `json:"notes"      binding:"omitempty,max=500"`
}

// UpdateEntryRequest full entry rewrite; every field is resubmitted.
type UpdateEntryRequest struct {
	EntryDate string `json:"entry_date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time"   binding:"required"`
	Workplace string `json:"workplace"  binding:"omitempty,max=100"`
	Role      string `json:"role"       binding:"omitempty,max=100"`
	Subject   string `json:"subject"    binding:"omitempty,max=100"`
	Notes     string `json:"notes"      binding:"omitempty,max=500"`
}

// EntryResponse one persisted entry; duration is derived for display.
type EntryResponse struct {
	ID              string  `json:"id"`
	Kind            string  `json:"kind"`
	EntryDate       string  `json:"entry_date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Workplace       *string `json:"workplace,omitempty"`
	Role            *string `json:"role,omitempty"`
	Subject         *string `json:"subject,omitempty"`
	Notes           string  `json:"notes,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
	DurationText    string  `json:"duration_text"`
}

// WeeklySummary aggregate over one Monday–Sunday window.
type WeeklySummary struct {
	WeekStart    string `json:"week_start"`
	WeekEnd      string `json:"week_end"`
	TotalMinutes int    `json:"total_minutes"`
	TotalText    string `json:"total_text"`
}

// Advisory informational message attached to a write; never blocks it.
type Advisory struct {
	Code               string `json:"code"`
	Message            string `json:"message"`
	WeekStart          string `json:"week_start"`
	WeekEnd            string `json:"week_end"`
	WeeklyTotalMinutes int    `json:"weekly_total_minutes"`
	WeeklyTotalText    string `json:"weekly_total_text"`
}

// EntryListResponse list plus the current week's summary.
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
	Weekly  WeeklySummary   `json:"weekly"`
}

// CreateEntryResponse insert result with the post-insert weekly total and an
// optional advisory.
type CreateEntryResponse struct {
	ID                 string    `json:"id"`
	WeeklyTotalMinutes int       `json:"weekly_total_minutes"`
	WeeklyTotalText    string    `json:"weekly_total_text"`
	Advisory           *Advisory `json:"advisory,omitempty"`
}

// ── schedule template DTOs ──

// TemplateListRequest owner's templates.
type TemplateListRequest struct {
	Kind string `form:"kind" binding:"omitempty,oneof=work study"`
}

// CreateTemplateRequest new recurring rule.
type CreateTemplateRequest struct {
	Kind      string `json:"kind"       binding:"required,oneof=work study"`
	Workplace string `json:"workplace"  binding:"omitempty,max=100"`
	Role      string `json:"role"       binding:"omitempty,max=100"`
	Subject   string `json:"subject"    binding:"omitempty,max=100"`
	Weekday   int    `json:"weekday"    binding:"required,min=1,max=7"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time"   binding:"required"`
	StartDate string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date"   binding:"required"` // YYYY-MM-DD
	Notes     string `json:"notes"      binding:"omitempty,max=500"`
}

// TemplateResponse one recurring rule.
type TemplateResponse struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"`
	Workplace *string `json:"workplace,omitempty"`
	Role      *string `json:"role,omitempty"`
	Subject   *string `json:"subject,omitempty"`
	Weekday   int     `json:"weekday"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Notes     string  `json:"notes,omitempty"`
}

// GenerateRequest expansion target: exactly one of Month / WeekStart.
type GenerateRequest struct {
	Month     string `form:"month"     binding:"omitempty"` // YYYY-MM
	WeekStart string `form:"weekStart" binding:"omitempty"` // YYYY-MM-DD (Monday)
	Kind      string `form:"kind"      binding:"omitempty,oneof=work study"`
}

// OccurrenceResponse one generated calendar event.
type OccurrenceResponse struct {
	Type       string  `json:"type"` // always "template"
	TemplateID string  `json:"template_id"`
	Kind       string  `json:"kind"`
	Date       string  `json:"date"`
	Workplace  *string `json:"workplace,omitempty"`
	Role       *string `json:"role,omitempty"`
	Subject    *string `json:"subject,omitempty"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Notes      string  `json:"notes,omitempty"`
	WeekNumber int     `json:"week_number"`
}

// GenerateResponse expansion result, ascending by date.
type GenerateResponse struct {
	Month     string               `json:"month,omitempty"`
	WeekStart string               `json:"week_start,omitempty"`
	Events    []OccurrenceResponse `json:"events"`
}
