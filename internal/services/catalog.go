// catalog.go
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

// Package services implements the business operations behind the HTTP
// handlers: typed CRUD per resource, soft-delete/restore semantics, and the
// before/after history bracketing every mutation runs under.
package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/quantalyze/backoffice/internal/audit"
	"github.com/quantalyze/backoffice/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when the addressed row does not exist (or is
// soft-deleted, for operations that only touch live rows).
var ErrNotFound = errors.New("not found")

// ListOptions filters a catalog listing. Anonymous callers are always
// narrowed to live, active rows no matter what they ask for.
type ListOptions struct {
	Status         string
	Category       string
	Featured       *bool
	IncludeDeleted bool
	Admin          bool
}

type catalogRow interface {
	RowID() uint64
}

// rowStateFor builds an audit state reader that snapshots a row by id,
// including soft-deleted rows. A missing row snapshots as a bare id so that
// delete/create brackets stay well-formed.
func rowStateFor[T any]() func(tx *gorm.DB, scope string) (any, error) {
	return func(tx *gorm.DB, scope string) (any, error) {
		var row T
		err := tx.Unscoped().Where("id = ?", scope).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return map[string]any{"id": scope}, nil
		}
		if err != nil {
			return nil, err
		}
		return row, nil
	}
}

func scopeID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// listRows runs a filtered catalog listing.
func listRows[T any](db *gorm.DB, opts ListOptions, order string) ([]T, error) {
	var model T
	q := db.Model(&model)

	if !opts.Admin {
		// Anonymous callers only ever see live, active rows.
		opts.Status = models.StatusActive
		opts.IncludeDeleted = false
	}
	if opts.IncludeDeleted {
		q = q.Unscoped()
	}
	if opts.Status != "" {
		q = q.Where("status = ?", opts.Status)
	}
	if opts.Category != "" {
		q = q.Where("category = ?", opts.Category)
	}
	if opts.Featured != nil {
		q = q.Where("featured = ?", *opts.Featured)
	}

	var rows []T
	err := q.Order(order).Find(&rows).Error
	return rows, err
}

// getRow fetches one row by id. includeDeleted also resolves soft-deleted
// rows, which restore needs.
func getRow[T any](db *gorm.DB, id uint64, includeDeleted bool) (*T, error) {
	q := db
	if includeDeleted {
		q = q.Unscoped()
	}
	var row T
	err := q.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// createRow inserts a row and logs a single "create" snapshot of the new
// state, both in one transaction.
func createRow[T catalogRow](db *gorm.DB, lg *audit.Logger, row *T) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		return lg.Log(tx, scopeID((*row).RowID()), "create")
	})
}

// updateRow applies a partial update to a live row, bracketed by
// update_before/update_after snapshots. Columns absent from updates stay
// untouched.
func updateRow[T any](db *gorm.DB, lg *audit.Logger, id uint64, updates map[string]any) error {
	return lg.Bracket(db, scopeID(id), "update", func(tx *gorm.DB) error {
		var model T
		var n int64
		if err := tx.Model(&model).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return tx.Model(&model).Where("id = ?", id).Updates(updates).Error
	})
}

// softDeleteRow marks a live row deleted without removing it.
func softDeleteRow[T any](db *gorm.DB, lg *audit.Logger, id uint64, inactiveStatus string) error {
	return lg.Bracket(db, scopeID(id), "delete", func(tx *gorm.DB) error {
		var model T
		res := tx.Model(&model).Where("id = ?", id).Updates(map[string]any{
			"status":     inactiveStatus,
			"deleted_at": time.Now(),
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// restoreRow clears a soft delete, leaving every other column as it was
// before the delete.
func restoreRow[T any](db *gorm.DB, lg *audit.Logger, id uint64, activeStatus string) error {
	return lg.Bracket(db, scopeID(id), "restore", func(tx *gorm.DB) error {
		var model T
		res := tx.Unscoped().Model(&model).Where("id = ?", id).Updates(map[string]any{
			"status":     activeStatus,
			"deleted_at": nil,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
