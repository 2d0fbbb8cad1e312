// Package models defines the GORM models behind the public site and the
// admin back-office. Every mutable resource keeps a companion *_history
// table holding append-only JSON snapshots (see internal/audit).
package models

import (
	"time"

	"gorm.io/gorm"
)

// Row statuses shared by the catalog resources.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Service represents one service offering on the marketing site.
type Service struct {
	ID          uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Icon        string         `gorm:"size:100" json:"icon"`
	Category    string         `gorm:"size:100;index" json:"category"`
	Price       *float64       `gorm:"type:decimal(10,2)" json:"price"`
	Featured    bool           `gorm:"not null;default:false;index" json:"featured"`
	Status      string         `gorm:"size:20;not null;default:active;index" json:"status"`
	SubServices JSON           `json:"sub_services"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

// Course represents one training course sold through the site.
type Course struct {
	ID               uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Title            string         `gorm:"size:255;not null" json:"title"`
	Description      string         `gorm:"type:text" json:"description"`
	Category         string         `gorm:"size:100;index" json:"category"`
	Price            *float64       `gorm:"type:decimal(10,2)" json:"price"`
	Duration         string         `gorm:"size:50" json:"duration"`
	Level            string         `gorm:"size:50" json:"level"`
	Featured         bool           `gorm:"not null;default:false;index" json:"featured"`
	Status           string         `gorm:"size:20;not null;default:active;index" json:"status"`
	Modules          int            `gorm:"not null;default:1" json:"modules"`
	EnrolledStudents int            `gorm:"not null;default:0" json:"enrolled_students"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

// Update represents an announcement published on the site.
type Update struct {
	ID        uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Type      string         `gorm:"size:50;not null" json:"type"`
	Priority  string         `gorm:"size:20;not null" json:"priority"`
	Status    string         `gorm:"size:20;not null;default:draft;index" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

// Update statuses. Updates go through a draft/published cycle instead of
// the active/inactive pair the catalog rows use.
const (
	UpdateStatusDraft     = "draft"
	UpdateStatusPublished = "published"
	UpdateStatusArchived  = "archived"
)

// TeamMember represents one person on the about page.
type TeamMember struct {
	ID           uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Role         string         `gorm:"size:100;not null" json:"role"`
	Bio          string         `gorm:"type:text" json:"bio"`
	PhotoURL     string         `gorm:"size:500" json:"photo_url"`
	DisplayOrder int            `gorm:"not null;default:0;index" json:"display_order"`
	Status       string         `gorm:"size:20;not null;default:active;index" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

// RowID returns the primary key. It lets generic service code address rows
// without reflection.
func (s Service) RowID() uint64 { return s.ID }

func (c Course) RowID() uint64     { return c.ID }
func (u Update) RowID() uint64     { return u.ID }
func (t TeamMember) RowID() uint64 { return t.ID }

// TableName overrides the table name for Service
func (Service) TableName() string {
	return "services"
}

// TableName overrides the table name for Course
func (Course) TableName() string {
	return "courses"
}

// TableName overrides the table name for Update
func (Update) TableName() string {
	return "updates"
}

// TableName overrides the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
