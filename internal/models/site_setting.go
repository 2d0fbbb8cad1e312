package models

import "time"

// SiteSetting is one configuration blob keyed by scope (e.g. "footer").
// Saves replace the whole settings object for the scope atomically.
type SiteSetting struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Scope     string    `gorm:"size:100;not null;uniqueIndex" json:"scope"`
	Settings  JSON      `gorm:"not null" json:"settings"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SEOMeta holds the per-route metadata rendered into page heads.
type SEOMeta struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Route         string    `gorm:"size:255;not null;uniqueIndex" json:"route"`
	Title         string    `gorm:"size:255" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	Keywords      string    `gorm:"type:text" json:"keywords"`
	OGTitle       string    `gorm:"size:255" json:"og_title"`
	OGDescription string    `gorm:"type:text" json:"og_description"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName overrides the table name for SiteSetting
func (SiteSetting) TableName() string {
	return "site_settings"
}

// TableName overrides the table name for SEOMeta
func (SEOMeta) TableName() string {
	return "seo_meta"
}
