// content.go
//
// Back-office data service for the Quantalyze marketing site
// Copyright (c) 2026 Quantalyze Digital <admin@quantalyze.co.in>
//
// This file is part of quantalyze-backoffice.
// quantalyze-backoffice is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// quantalyze-backoffice is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with quantalyze-backoffice.
// If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"encoding/json"

	"github.com/quantalyze/backoffice/internal/audit"
	"github.com/quantalyze/backoffice/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContentAudit scopes content history by section rather than by row id. One
// snapshot covers every block of the section, so a whole-section save still
// produces exactly one before/after pair.
var ContentAudit = &audit.Logger{
	Table: "content_blocks_history",
	State: sectionState,
}

func sectionState(tx *gorm.DB, scope string) (any, error) {
	var blocks []models.ContentBlock
	err := tx.Where("section = ?", scope).
		Order("component ASC, field ASC").
		Find(&blocks).Error
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

// BlockInput is one editable text block as the admin UI posts it.
type BlockInput struct {
	Component string `json:"component"`
	Field     string `json:"field"`
	Value     string `json:"value"`
	Type      string `json:"type"`
}

// GroupedContent nests blocks section -> component -> field for the public
// site to consume in one read.
type GroupedContent map[string]map[string]map[string]string

// GetContent returns the grouped block values, optionally narrowed to one
// section.
func GetContent(db *gorm.DB, section string) (GroupedContent, error) {
	q := db.Model(&models.ContentBlock{})
	if section != "" {
		q = q.Where("section = ?", section)
	}
	var blocks []models.ContentBlock
	if err := q.Order("section ASC, component ASC, field ASC").Find(&blocks).Error; err != nil {
		return nil, err
	}

	grouped := GroupedContent{}
	for _, b := range blocks {
		if grouped[b.Section] == nil {
			grouped[b.Section] = map[string]map[string]string{}
		}
		if grouped[b.Section][b.Component] == nil {
			grouped[b.Section][b.Component] = map[string]string{}
		}
		grouped[b.Section][b.Component][b.Field] = b.Value
	}
	return grouped, nil
}

// SaveSectionBlocks upserts a batch of blocks for one section. The whole
// batch runs in one transaction with a single upsert_before/upsert_after
// pair, so partial writes never reach the history.
func SaveSectionBlocks(db *gorm.DB, section string, blocks []BlockInput) error {
	return ContentAudit.Bracket(db, section, "upsert", func(tx *gorm.DB) error {
		for _, in := range blocks {
			blockType := in.Type
			if blockType == "" {
				blockType = "text"
			}
			block := models.ContentBlock{
				Section:   section,
				Component: in.Component,
				Field:     in.Field,
				Value:     in.Value,
				Type:      blockType,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "section"}, {Name: "component"}, {Name: "field"},
				},
				DoUpdates: clause.AssignmentColumns([]string{"value", "type", "updated_at"}),
			}).Create(&block).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// RestoreSection replaces a section's blocks with the snapshot stored under
// historyID. The entry must belong to the section being restored.
func RestoreSection(db *gorm.DB, section string, historyID uint64) error {
	entry, err := ContentAudit.Get(db, historyID, section)
	if err != nil {
		return err
	}

	var snapshot []models.ContentBlock
	if err := json.Unmarshal(entry.Snapshot, &snapshot); err != nil {
		return err
	}

	return ContentAudit.Bracket(db, section, "restore", func(tx *gorm.DB) error {
		if err := tx.Where("section = ?", section).Delete(&models.ContentBlock{}).Error; err != nil {
			return err
		}
		for _, block := range snapshot {
			block.ID = 0
			if err := tx.Create(&block).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteContentBlock removes one block for good. The section snapshot pair
// still records what the section looked like around the removal.
func DeleteContentBlock(db *gorm.DB, id uint64) error {
	var block models.ContentBlock
	if err := db.Where("id = ?", id).First(&block).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return ContentAudit.Bracket(db, block.Section, "delete", func(tx *gorm.DB) error {
		return tx.Delete(&models.ContentBlock{}, block.ID).Error
	})
}

// ListSections returns the section registry in display order.
func ListSections(db *gorm.DB) ([]models.ContentSection, error) {
	var sections []models.ContentSection
	err := db.Order("section_order ASC").Find(&sections).Error
	return sections, err
}

// SaveSection upserts one section registry row keyed by section_id.
func SaveSection(db *gorm.DB, section *models.ContentSection) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "section_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "section_order", "visible", "updated_at"}),
	}).Create(section).Error
}
