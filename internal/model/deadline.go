package model

import "time"

// Deadline tracked proceeding with a due date.
type Deadline struct {
	DeadlineID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"deadline_id"`
	UserID     string    `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Title      string    `gorm:"type:varchar(200);not null"                     json:"title"`
	Category   string    `gorm:"type:varchar(20);not null;default:'other'"      json:"category"`
	DueDate    time.Time `gorm:"type:date;not null"                             json:"due_date"`
	Notes      string    `gorm:"type:varchar(1000)"                             json:"notes,omitempty"`
	Priority   string    `gorm:"type:varchar(10);not null;default:'medium'"     json:"priority"` // low | medium | high
	Status     string    `gorm:"type:varchar(20);not null;default:'upcoming'"   json:"status"`   // upcoming | done
	BaseModel

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

func (Deadline) TableName() string { return "deadlines" }

// DeadlineCategories is the closed category set; anything else is coerced to
// "other" rather than rejected.
var DeadlineCategories = []string{
	"immigration", "housing", "employment", "health", "finance", "education", "other",
}

// DeadlinePriorities is the closed priority set; unknown values coerce to
// "medium".
var DeadlinePriorities = []string{"low", "medium", "high"}

// DeadlineStatuses is the closed status set; unknown values coerce to
// "upcoming".
var DeadlineStatuses = []string{"upcoming", "done"}
