package services

import (
	"testing"
	"time"

	"github.com/quantalyze/backoffice/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeLifecycle(t *testing.T) {
	db := setupTestDB(t)

	result, err := Subscribe(db, "Reader@Example.com", "Reader", []string{"seo"})
	require.NoError(t, err)
	assert.False(t, result.Reactivated)

	// The address is stored lowercased, so case variants are duplicates.
	_, err = Subscribe(db, "reader@example.com", "", nil)
	assert.ErrorIs(t, err, ErrAlreadySubscribed)

	var sub models.NewsletterSubscriber
	require.NoError(t, db.First(&sub).Error)
	assert.Equal(t, "reader@example.com", sub.Email)
	assert.Equal(t, models.SubscriberStatusActive, sub.Status)

	require.NoError(t, UpdateSubscriberStatus(db, sub.ID, models.SubscriberStatusUnsubscribed))

	result, err = Subscribe(db, "reader@example.com", "", nil)
	require.NoError(t, err)
	assert.True(t, result.Reactivated)

	var count int64
	require.NoError(t, db.Model(&models.NewsletterSubscriber{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "reactivation must not duplicate the row")

	require.NoError(t, db.First(&sub).Error)
	assert.Equal(t, models.SubscriberStatusActive, sub.Status)
}

func TestSubscribeValidatesEmail(t *testing.T) {
	db := setupTestDB(t)

	for _, email := range []string{"", "   ", "not-an-email"} {
		_, err := Subscribe(db, email, "", nil)
		assert.ErrorIs(t, err, ErrInvalidSubscriber)
	}

	var count int64
	require.NoError(t, db.Model(&models.NewsletterSubscriber{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateSubscriberStatusValidation(t *testing.T) {
	db := setupTestDB(t)

	assert.ErrorIs(t, UpdateSubscriberStatus(db, 1, "vip"), ErrInvalidStatus)
	assert.ErrorIs(t, UpdateSubscriberStatus(db, 99, models.SubscriberStatusActive), ErrNotFound)
}

func TestTrackEventRequiresType(t *testing.T) {
	db := setupTestDB(t)

	err := TrackEvent(db, &models.AnalyticsEvent{EventType: "   "})
	assert.ErrorIs(t, err, ErrInvalidEvent)

	var count int64
	require.NoError(t, db.Model(&models.AnalyticsEvent{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAnalyticsSummaryWindow(t *testing.T) {
	db := setupTestDB(t)

	for _, e := range []models.AnalyticsEvent{
		{EventType: "page_view", SessionID: "s1", IPAddress: "10.0.0.1"},
		{EventType: "page_view", SessionID: "s1", IPAddress: "10.0.0.1"},
		{EventType: "cta_click", SessionID: "s2", IPAddress: "10.0.0.2"},
	} {
		require.NoError(t, TrackEvent(db, &e))
	}

	// An event from outside the window must not count.
	old := models.AnalyticsEvent{
		EventType: "page_view",
		SessionID: "s0",
		IPAddress: "10.0.0.9",
		CreatedAt: time.Now().AddDate(0, 0, -60),
	}
	require.NoError(t, db.Create(&old).Error)

	require.NoError(t, CreateInquiry(db, &models.Inquiry{
		Name: "Lead", Email: "lead@example.com", Message: "Hi",
	}))
	_, err := Subscribe(db, "reader@example.com", "", nil)
	require.NoError(t, err)

	summary, err := GetAnalyticsSummary(db, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalEvents)
	assert.Equal(t, int64(2), summary.UniqueSessions)
	assert.Equal(t, int64(2), summary.UniqueVisitors)
	assert.Equal(t, int64(1), summary.ContactSubmissions)
	assert.Equal(t, int64(1), summary.NewsletterSignups)
	require.Len(t, summary.RecentActivity, 3)
	assert.Equal(t, "cta_click", summary.RecentActivity[0].EventType)
}
