package model

import "time"

// Schedule kinds. Work entries carry workplace/role labels, study entries a
// subject label; everything else about the two is identical.
const (
	ScheduleKindWork  = "work"
	ScheduleKindStudy = "study"
)

// ScheduleTemplate recurring weekly rule.
// Weekday is ISO (1=Monday … 7=Sunday); the validity window
// [StartDate, EndDate] is inclusive on both ends.
type ScheduleTemplate struct {
	TemplateID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"template_id"`
	UserID     string    `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Kind       string    `gorm:"type:varchar(10);not null"                      json:"kind"` // work | study
	Workplace  *string   `gorm:"type:varchar(100)"                              json:"workplace,omitempty"`
	Role       *string   `gorm:"type:varchar(100)"                              json:"role,omitempty"`
	Subject    *string   `gorm:"type:varchar(100)"                              json:"subject,omitempty"`
	Weekday    int       `gorm:"type:smallint;not null"                         json:"weekday"` // 1-7
	StartTime  string    `gorm:"type:time;not null"                             json:"start_time"`
	EndTime    string    `gorm:"type:time;not null"                             json:"end_time"`
	StartDate  time.Time `gorm:"type:date;not null"                             json:"start_date"`
	EndDate    time.Time `gorm:"type:date;not null"                             json:"end_date"`
	Notes      string    `gorm:"type:varchar(500)"                              json:"notes,omitempty"`
	BaseModel

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

func (ScheduleTemplate) TableName() string { return "schedule_templates" }

// ScheduleEntry concrete shift or study session.
// An entry whose end time-of-day is ≤ its start time-of-day spans into the
// next calendar day; duration is always derived, never stored.
type ScheduleEntry struct {
	EntryID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"entry_id"`
	UserID    string    `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Kind      string    `gorm:"type:varchar(10);not null"                      json:"kind"` // work | study
	EntryDate time.Time `gorm:"type:date;not null;index"                       json:"entry_date"`
	StartTime string    `gorm:"type:time;not null"                             json:"start_time"`
	EndTime   string    `gorm:"type:time;not null"                             json:"end_time"`
	Workplace *string   `gorm:"type:varchar(100)"                              json:"workplace,omitempty"`
	Role      *string   `gorm:"type:varchar(100)"                              json:"role,omitempty"`
	Subject   *string   `gorm:"type:varchar(100)"                              json:"subject,omitempty"`
	Notes     string    `gorm:"type:varchar(500)"                              json:"notes,omitempty"`
	BaseModel

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

func (ScheduleEntry) TableName() string { return "schedule_entries" }
