package model

// Announcement admin-posted notice visible to all users.
type Announcement struct {
	AnnouncementID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"announcement_id"`
	Title          string `gorm:"type:varchar(200);not null"                     json:"title"`
	Message        string `gorm:"type:varchar(2000);not null"                    json:"message"`
	Category       string `gorm:"type:varchar(20);not null;default:'general'"    json:"category"`
	AuthorID       string `gorm:"type:uuid;not null"                             json:"author_id"`
	BaseModel

	Author *User `gorm:"foreignKey:AuthorID;references:UserID" json:"author,omitempty"`
}

func (Announcement) TableName() string { return "announcements" }

// AnnouncementCategories is the closed category set; unknown values coerce to
// "general".
var AnnouncementCategories = []string{
	"immigration", "housing", "employment", "health", "finance", "education", "general",
}
