package contact

import "time"

const (
	StatusNew  = "new"
	StatusRead = "read"
)

type ContactMessage struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	FirstName   string  `gorm:"type:text;not null" json:"first_name"`
	LastName    string  `gorm:"type:text;not null" json:"last_name"`
	PhoneNumber *string `gorm:"type:text" json:"phone_number,omitempty"`
	Email       string  `gorm:"type:text;not null" json:"email"`
	Message     *string `gorm:"type:text" json:"message,omitempty"`
	CvURL       *string `gorm:"column:cv_url;type:text" json:"cv_url,omitempty"`

	IsRead bool   `gorm:"not null;default:false" json:"is_read"`
	Status string `gorm:"type:varchar(20);not null;default:'new';index" json:"status"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
