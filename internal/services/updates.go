package services

import (
	"github.com/quantalyze/backoffice/internal/audit"
	"github.com/quantalyze/backoffice/internal/models"
	"gorm.io/gorm"
)

var UpdatesAudit = &audit.Logger{
	Table: "updates_history",
	State: rowStateFor[models.Update](),
}

func ListUpdates(db *gorm.DB, opts ListOptions) ([]models.Update, error) {
	// Announcements publish through a draft cycle, so "active" for anonymous
	// callers means published.
	if !opts.Admin {
		opts.Status = models.UpdateStatusPublished
		opts.Admin = true
		opts.IncludeDeleted = false
	}
	return listRows[models.Update](db, opts, "created_at DESC")
}

func GetUpdate(db *gorm.DB, id uint64, includeDeleted bool) (*models.Update, error) {
	return getRow[models.Update](db, id, includeDeleted)
}

func CreateUpdate(db *gorm.DB, upd *models.Update) error {
	return createRow(db, UpdatesAudit, upd)
}

func UpdateUpdate(db *gorm.DB, id uint64, updates map[string]any) error {
	return updateRow[models.Update](db, UpdatesAudit, id, updates)
}

func DeleteUpdate(db *gorm.DB, id uint64) error {
	return softDeleteRow[models.Update](db, UpdatesAudit, id, models.UpdateStatusArchived)
}

func RestoreUpdate(db *gorm.DB, id uint64) error {
	return restoreRow[models.Update](db, UpdatesAudit, id, models.UpdateStatusDraft)
}
