package models

import "time"

// NewsletterSubscriber is one mailing-list signup from the public site.
// Unsubscribing flips status instead of deleting the row, so a returning
// subscriber keeps their preferences.
type NewsletterSubscriber struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Email       string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Name        string    `gorm:"size:255" json:"name"`
	Preferences JSON      `json:"preferences"`
	Status      string    `gorm:"size:20;not null;default:active;index" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Subscriber statuses.
const (
	SubscriberStatusActive       = "active"
	SubscriberStatusUnsubscribed = "unsubscribed"
)

// TableName overrides the table name for NewsletterSubscriber
func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}
