package database

import (
	"fmt"
	"log"

	"github.com/quantalyze/backoffice/internal/audit"
	"github.com/quantalyze/backoffice/internal/models"
	"gorm.io/gorm"
)

// HistoryTables lists the append-only snapshot tables kept next to their
// resource tables. They share one row shape (audit.Entry).
var HistoryTables = []string{
	"services_history",
	"courses_history",
	"updates_history",
	"team_members_history",
	"content_blocks_history",
	"site_settings_history",
	"seo_meta_history",
}

// AutoMigrate runs automatic migrations for all models and their history
// tables. It runs once at process start and is idempotent: re-running it on
// an up-to-date schema changes nothing and surfaces no error.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Service{},
		&models.Course{},
		&models.Update{},
		&models.TeamMember{},
		&models.ContentBlock{},
		&models.ContentSection{},
		&models.SiteSetting{},
		&models.SEOMeta{},
		&models.Inquiry{},
		&models.NewsletterSubscriber{},
		&models.AnalyticsEvent{},
		&models.AdminUser{},
	)
	if err != nil {
		return fmt.Errorf("migrate models: %w", err)
	}

	for _, table := range HistoryTables {
		if err := db.Table(table).AutoMigrate(&audit.Entry{}); err != nil {
			return fmt.Errorf("migrate %s: %w", table, err)
		}
	}

	return nil
}

// EnsureColumn adds a column to a model's table when it is missing. Columns
// appended after first release go through here so that databases migrated by
// older builds catch up on boot. Failures are logged and swallowed: a
// metadata probe must never take the service down, and "already exists" is
// success.
func EnsureColumn(db *gorm.DB, model any, column string) {
	migrator := db.Migrator()
	if migrator.HasColumn(model, column) {
		return
	}
	if err := migrator.AddColumn(model, column); err != nil {
		log.Printf("ensure column %q: %v (continuing)", column, err)
	}
}
