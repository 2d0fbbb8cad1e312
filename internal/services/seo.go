package services

import (
	"encoding/json"
	"errors"

	"github.com/quantalyze/backoffice/internal/audit"
	"github.com/quantalyze/backoffice/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SEOAudit scopes SEO metadata history by page route.
var SEOAudit = &audit.Logger{
	Table: "seo_meta_history",
	State: func(tx *gorm.DB, scope string) (any, error) {
		var row models.SEOMeta
		err := tx.Where("route = ?", scope).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return map[string]any{"route": scope}, nil
		}
		if err != nil {
			return nil, err
		}
		return row, nil
	},
}

// GetSEOMeta returns the metadata for one route, or every route when route
// is empty.
func GetSEOMeta(db *gorm.DB, route string) ([]models.SEOMeta, error) {
	q := db.Model(&models.SEOMeta{})
	if route != "" {
		q = q.Where("route = ?", route)
	}
	var rows []models.SEOMeta
	err := q.Order("route ASC").Find(&rows).Error
	return rows, err
}

// SaveSEOMeta upserts the metadata for one route with an
// upsert_before/upsert_after pair.
func SaveSEOMeta(db *gorm.DB, meta *models.SEOMeta) error {
	return SEOAudit.Bracket(db, meta.Route, "upsert", func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "route"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "description", "keywords", "og_title", "og_description", "updated_at",
			}),
		}).Create(meta).Error
	})
}

// RestoreSEOMeta puts a route back to the snapshot stored under historyID.
func RestoreSEOMeta(db *gorm.DB, route string, historyID uint64) error {
	entry, err := SEOAudit.Get(db, historyID, route)
	if err != nil {
		return err
	}

	var snapshot models.SEOMeta
	if err := json.Unmarshal(entry.Snapshot, &snapshot); err != nil {
		return err
	}
	if snapshot.Route == "" {
		return ErrNotFound
	}

	return SEOAudit.Bracket(db, route, "restore", func(tx *gorm.DB) error {
		snapshot.ID = 0
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "route"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "description", "keywords", "og_title", "og_description", "updated_at",
			}),
		}).Create(&snapshot).Error
	})
}
