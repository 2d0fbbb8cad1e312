// audit.go
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

// Package audit appends JSON snapshots of resource state to per-resource
// history tables. History is strictly additive: this package never issues
// an UPDATE or DELETE against a history table, and restores re-apply a past
// snapshot as new current state through the same bracketing discipline.
package audit

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a history entry does not exist for the
// requested id and scope pair.
var ErrNotFound = errors.New("history entry not found")

// Default and maximum history page sizes.
const (
	DefaultListLimit = 20
	MaxListLimit     = 200
)

// Entry is one immutable snapshot row in a *_history table.
type Entry struct {
	ID        uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Scope     string         `gorm:"size:255;not null;index" json:"scope"`
	Action    string         `gorm:"size:50;not null;index" json:"action"`
	Snapshot  datatypes.JSON `gorm:"not null" json:"snapshot"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
}

// Logger writes snapshots of one resource into its history table.
// State reads the resource's current full state for a scope; it runs inside
// the same transaction as the mutation it brackets.
type Logger struct {
	Table string
	State func(tx *gorm.DB, scope string) (any, error)
}

// Log reads the current state for scope and appends it under the given action.
func (l *Logger) Log(tx *gorm.DB, scope, action string) error {
	state, err := l.State(tx, scope)
	if err != nil {
		return fmt.Errorf("audit state %s/%s: %w", l.Table, scope, err)
	}

	snapshot, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("audit marshal %s/%s: %w", l.Table, scope, err)
	}

	entry := Entry{
		Scope:    scope,
		Action:   action,
		Snapshot: snapshot,
	}
	if err := tx.Table(l.Table).Create(&entry).Error; err != nil {
		return fmt.Errorf("audit insert %s/%s: %w", l.Table, scope, err)
	}
	return nil
}

// Bracket runs the mutation fn between "<op>_before" and "<op>_after"
// snapshots, all inside one transaction. Either all three steps commit or
// none do.
func (l *Logger) Bracket(db *gorm.DB, scope, op string, fn func(tx *gorm.DB) error) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := l.Log(tx, scope, op+"_before"); err != nil {
			return err
		}
		if err := fn(tx); err != nil {
			return err
		}
		return l.Log(tx, scope, op+"_after")
	})
}

// List returns the most recent entries for a scope, newest first.
// The limit is clamped to 1..MaxListLimit; zero or negative means the default.
func (l *Logger) List(db *gorm.DB, scope string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	var entries []Entry
	err := db.Table(l.Table).
		Where("scope = ?", scope).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Get returns one entry, validating that it belongs to the given scope.
func (l *Logger) Get(db *gorm.DB, id uint64, scope string) (*Entry, error) {
	var entry Entry
	err := db.Table(l.Table).
		Where("id = ? AND scope = ?", id, scope).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// Count returns the number of entries recorded for a scope.
func (l *Logger) Count(db *gorm.DB, scope string) (int64, error) {
	var n int64
	err := db.Table(l.Table).Where("scope = ?", scope).Count(&n).Error
	return n, err
}
