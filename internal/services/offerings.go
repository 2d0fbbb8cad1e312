package services

import (
	"github.com/quantalyze/backoffice/internal/audit"
	"github.com/quantalyze/backoffice/internal/models"
	"gorm.io/gorm"
)

// ServicesAudit records every mutation of the services catalog into
// services_history.
var ServicesAudit = &audit.Logger{
	Table: "services_history",
	State: rowStateFor[models.Service](),
}

func ListServices(db *gorm.DB, opts ListOptions) ([]models.Service, error) {
	return listRows[models.Service](db, opts, "featured DESC, created_at DESC")
}

func GetService(db *gorm.DB, id uint64, includeDeleted bool) (*models.Service, error) {
	return getRow[models.Service](db, id, includeDeleted)
}

func CreateService(db *gorm.DB, svc *models.Service) error {
	return createRow(db, ServicesAudit, svc)
}

func UpdateService(db *gorm.DB, id uint64, updates map[string]any) error {
	return updateRow[models.Service](db, ServicesAudit, id, updates)
}

func DeleteService(db *gorm.DB, id uint64) error {
	return softDeleteRow[models.Service](db, ServicesAudit, id, models.StatusInactive)
}

func RestoreService(db *gorm.DB, id uint64) error {
	return restoreRow[models.Service](db, ServicesAudit, id, models.StatusActive)
}
