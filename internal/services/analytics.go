package services

import (
	"errors"
	"strings"
	"time"

	"github.com/quantalyze/backoffice/internal/models"
	"gorm.io/gorm"
)

// ErrInvalidEvent is returned when an event arrives without a type.
var ErrInvalidEvent = errors.New("event type is required")

// TrackEvent stores one client-side event. Only the type is required; the
// rest is whatever context the client attached.
func TrackEvent(db *gorm.DB, event *models.AnalyticsEvent) error {
	event.EventType = strings.TrimSpace(event.EventType)
	if event.EventType == "" {
		return ErrInvalidEvent
	}
	return db.Create(event).Error
}

// AnalyticsSummary aggregates site activity over a trailing window.
type AnalyticsSummary struct {
	TotalEvents        int64                   `json:"total_events"`
	UniqueSessions     int64                   `json:"unique_sessions"`
	UniqueVisitors     int64                   `json:"unique_visitors"`
	ContactSubmissions int64                   `json:"contact_submissions"`
	NewsletterSignups  int64                   `json:"newsletter_signups"`
	RecentActivity     []models.AnalyticsEvent `json:"recent_activity"`
}

// GetAnalyticsSummary reports activity for the last N days (default 30).
func GetAnalyticsSummary(db *gorm.DB, days int) (*AnalyticsSummary, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)
	summary := &AnalyticsSummary{}

	err := db.Model(&models.AnalyticsEvent{}).Where("created_at >= ?", since).
		Count(&summary.TotalEvents).Error
	if err != nil {
		return nil, err
	}
	err = db.Model(&models.AnalyticsEvent{}).Where("created_at >= ?", since).
		Distinct("session_id").Count(&summary.UniqueSessions).Error
	if err != nil {
		return nil, err
	}
	err = db.Model(&models.AnalyticsEvent{}).Where("created_at >= ?", since).
		Distinct("ip_address").Count(&summary.UniqueVisitors).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.Inquiry{}).Where("created_at >= ?", since).
		Count(&summary.ContactSubmissions).Error
	if err != nil {
		return nil, err
	}
	err = db.Model(&models.NewsletterSubscriber{}).Where("created_at >= ?", since).
		Count(&summary.NewsletterSignups).Error
	if err != nil {
		return nil, err
	}

	err = db.Where("created_at >= ?", since).
		Order("created_at DESC, id DESC").Limit(10).
		Find(&summary.RecentActivity).Error
	if err != nil {
		return nil, err
	}
	return summary, nil
}
