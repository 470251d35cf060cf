package model

import "time"

// Task personal to-do item, backed by the tasks table.
type Task struct {
	TaskID      string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"task_id"`
	UserID      string     `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Title       string     `gorm:"type:varchar(200);not null"                     json:"title"`
	Description string     `gorm:"type:varchar(1000)"                             json:"description,omitempty"`
	DueDate     *time.Time `gorm:"type:date"                                      json:"due_date,omitempty"`
	Status      string     `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"` // pending | completed
	IsStarter   bool       `gorm:"not null;default:false"                         json:"is_starter"`
	BaseModel

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

func (Task) TableName() string { return "tasks" }

const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)
