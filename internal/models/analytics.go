package models

import "time"

// AnalyticsEvent is one client-side event captured from the public site.
// Rows are insert-only; the admin dashboard reads windowed aggregates.
type AnalyticsEvent struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	EventType string    `gorm:"size:100;not null;index" json:"event_type"`
	EventData JSON      `json:"event_data"`
	UserAgent string    `gorm:"type:text" json:"user_agent"`
	IPAddress string    `gorm:"size:45" json:"ip_address"`
	SessionID string    `gorm:"size:255;index" json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name for AnalyticsEvent
func (AnalyticsEvent) TableName() string {
	return "analytics_events"
}
