package model

// User account, backed by the users table.
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	FullName     string `gorm:"type:varchar(100);not null"                     json:"full_name"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'newcomer'"   json:"role"` // newcomer | admin
	BaseModel
}

func (User) TableName() string { return "users" }

// Known roles.
const (
	RoleNewcomer = "newcomer"
	RoleAdmin    = "admin"
)
