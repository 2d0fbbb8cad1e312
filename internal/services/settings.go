package services

import (
	"encoding/json"
	"errors"

	"github.com/quantalyze/backoffice/data"
	"github.com/quantalyze/backoffice/internal/audit"
	"github.com/quantalyze/backoffice/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsAudit scopes site settings history by settings scope ("footer",
// "general", ...). One row per scope, one snapshot per save.
var SettingsAudit = &audit.Logger{
	Table: "site_settings_history",
	State: func(tx *gorm.DB, scope string) (any, error) {
		var row models.SiteSetting
		err := tx.Where("scope = ?", scope).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return map[string]any{"scope": scope}, nil
		}
		if err != nil {
			return nil, err
		}
		return row, nil
	},
}

// GetSettings returns the stored settings blob for a scope. A scope that was
// never saved falls back to the compiled-in defaults where one exists.
func GetSettings(db *gorm.DB, scope string) (json.RawMessage, error) {
	var row models.SiteSetting
	err := db.Where("scope = ?", scope).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if scope == "footer" {
			return json.RawMessage(data.DefaultFooterSettings), nil
		}
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(row.Settings.JSON), nil
}

// SaveSettings replaces the blob for a scope, bracketed by
// upsert_before/upsert_after snapshots.
func SaveSettings(db *gorm.DB, scope string, settings json.RawMessage) error {
	return SettingsAudit.Bracket(db, scope, "upsert", func(tx *gorm.DB) error {
		row := models.SiteSetting{
			Scope:    scope,
			Settings: models.JSON{JSON: datatypes.JSON(settings)},
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "scope"}},
			DoUpdates: clause.AssignmentColumns([]string{"settings", "updated_at"}),
		}).Create(&row).Error
	})
}

// RestoreSettings puts a scope back to the snapshot stored under historyID.
// The entry must belong to the scope being restored.
func RestoreSettings(db *gorm.DB, scope string, historyID uint64) error {
	entry, err := SettingsAudit.Get(db, historyID, scope)
	if err != nil {
		return err
	}

	var snapshot models.SiteSetting
	if err := json.Unmarshal(entry.Snapshot, &snapshot); err != nil {
		return err
	}
	if len(snapshot.Settings.JSON) == 0 {
		// Snapshot taken before the scope first existed.
		return ErrNotFound
	}

	return SettingsAudit.Bracket(db, scope, "restore", func(tx *gorm.DB) error {
		row := models.SiteSetting{
			Scope:    scope,
			Settings: snapshot.Settings,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "scope"}},
			DoUpdates: clause.AssignmentColumns([]string{"settings", "updated_at"}),
		}).Create(&row).Error
	})
}
