package services

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/quantalyze/backoffice/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrInvalidSubscriber is returned when a signup has no usable email.
var ErrInvalidSubscriber = errors.New("a valid email is required")

// ErrAlreadySubscribed flags a duplicate signup for an active subscriber.
var ErrAlreadySubscribed = errors.New("email is already subscribed")

// SubscribeResult tells the caller whether a signup created a new subscriber
// or reactivated one who had unsubscribed.
type SubscribeResult struct {
	Reactivated bool
}

// Subscribe adds an email to the newsletter list. A previously unsubscribed
// address is reactivated instead of duplicated; an active one is rejected.
func Subscribe(db *gorm.DB, email, name string, preferences []string) (SubscribeResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return SubscribeResult{}, ErrInvalidSubscriber
	}

	var existing models.NewsletterSubscriber
	err := db.Where("email = ?", email).First(&existing).Error
	switch {
	case err == nil:
		if existing.Status == models.SubscriberStatusUnsubscribed {
			err := db.Model(&existing).Update("status", models.SubscriberStatusActive).Error
			return SubscribeResult{Reactivated: true}, err
		}
		return SubscribeResult{}, ErrAlreadySubscribed
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return SubscribeResult{}, err
	}

	if preferences == nil {
		preferences = []string{}
	}
	prefs, err := json.Marshal(preferences)
	if err != nil {
		return SubscribeResult{}, err
	}

	sub := models.NewsletterSubscriber{
		Email:       email,
		Name:        strings.TrimSpace(name),
		Preferences: models.JSON{JSON: datatypes.JSON(prefs)},
		Status:      models.SubscriberStatusActive,
	}
	return SubscribeResult{}, db.Create(&sub).Error
}

// ListSubscribers returns the mailing list for the admin dashboard, newest
// first.
func ListSubscribers(db *gorm.DB, status string) ([]models.NewsletterSubscriber, error) {
	q := db.Model(&models.NewsletterSubscriber{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var rows []models.NewsletterSubscriber
	err := q.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

// UpdateSubscriberStatus moves a subscriber between active and unsubscribed.
func UpdateSubscriberStatus(db *gorm.DB, id uint64, status string) error {
	switch status {
	case models.SubscriberStatusActive, models.SubscriberStatusUnsubscribed:
	default:
		return ErrInvalidStatus
	}
	res := db.Model(&models.NewsletterSubscriber{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
