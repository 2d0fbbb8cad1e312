package models

import "time"

// AdminUser is a back-office credential row. Authentication is stateless:
// a signed token carries {id, username, role}, no server-side sessions.
type AdminUser struct {
	ID         uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username   string     `gorm:"size:255;not null;uniqueIndex" json:"username"`
	Email      string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password   string     `gorm:"size:255;not null" json:"-"`
	Role       string     `gorm:"size:50;not null;default:admin" json:"role"`
	ResetToken *string    `gorm:"size:64;index" json:"-"`
	CreatedAt  time.Time  `json:"created_at"`
	LastLogin  *time.Time `json:"last_login"`
}

// Inquiry is one submission from the public contact form.
type Inquiry struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Subject   string    `gorm:"size:255" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"size:20;not null;default:new;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Inquiry statuses.
const (
	InquiryStatusNew        = "new"
	InquiryStatusInProgress = "in_progress"
	InquiryStatusClosed     = "closed"
)

// TableName overrides the table name for AdminUser
func (AdminUser) TableName() string {
	return "admin_users"
}

// TableName overrides the table name for Inquiry
func (Inquiry) TableName() string {
	return "inquiries"
}
