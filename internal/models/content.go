package models

import "time"

// ContentBlock is one editable piece of copy on the public site, keyed by
// the unique (section, component, field) triple. Blocks are grouped by
// section for bulk retrieval and restore.
type ContentBlock struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Section   string    `gorm:"size:100;not null;uniqueIndex:uniq_block,priority:1;index" json:"section"`
	Component string    `gorm:"size:100;not null;uniqueIndex:uniq_block,priority:2" json:"component"`
	Field     string    `gorm:"size:100;not null;uniqueIndex:uniq_block,priority:3" json:"field"`
	Value     string    `gorm:"type:text" json:"value"`
	Type      string    `gorm:"size:20;not null;default:text" json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContentSection holds display metadata for a section of managed blocks.
type ContentSection struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	SectionID string    `gorm:"size:100;not null;uniqueIndex" json:"section_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Order     int       `gorm:"column:section_order;not null;default:0" json:"order"`
	Visible   bool      `gorm:"not null;default:true" json:"visible"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name for ContentBlock
func (ContentBlock) TableName() string {
	return "content_blocks"
}

// TableName overrides the table name for ContentSection
func (ContentSection) TableName() string {
	return "content_sections"
}
