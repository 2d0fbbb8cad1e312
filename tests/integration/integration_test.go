// integration_test.go
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

package integration_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/quantalyze/backoffice/internal/config"
	"github.com/quantalyze/backoffice/internal/database"
	"github.com/quantalyze/backoffice/internal/models"
	"github.com/quantalyze/backoffice/internal/services"
	"github.com/quantalyze/backoffice/tests/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestWithMariaDB runs the catalog lifecycle against a real MariaDB
// container. The JSON history snapshots and soft-delete scoping behave
// differently enough across engines to be worth the round trip.
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	if !helpers.DockerAvailable(ctx) {
		t.Skip("Docker is not available")
	}

	mariadb, err := helpers.StartMariaDB(ctx)
	require.NoError(t, err)
	defer func() {
		if err := mariadb.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	cfg := &config.Config{
		AppEnv:            "development",
		DBType:            "mariadb",
		DBHost:            mariadb.Host,
		DBPort:            mariadb.Port,
		DBName:            mariadb.Name,
		DBUser:            mariadb.User,
		DBPassword:        mariadb.Password,
		DBConnectionLimit: 5,
		AdminUsername:     "Admin",
		AdminEmail:        "admin@example.com",
	}

	db, err := database.Connect(cfg)
	require.NoError(t, err)
	defer database.Close(db)

	require.NoError(t, database.AutoMigrate(db))
	// Migrations are idempotent; a second boot must not fail.
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.Seed(db, cfg))

	t.Run("SeededData", func(t *testing.T) {
		testSeededData(t, db)
	})
	t.Run("CatalogLifecycle", func(t *testing.T) {
		testCatalogLifecycle(t, db)
	})
	t.Run("ContentSnapshots", func(t *testing.T) {
		testContentSnapshots(t, db)
	})
}

func testSeededData(t *testing.T, db *gorm.DB) {
	rows, err := services.ListServices(db, services.ListOptions{Admin: true})
	require.NoError(t, err)
	assert.NotEmpty(t, rows)

	raw, err := services.GetSettings(db, "footer")
	require.NoError(t, err)
	assert.NotEmpty(t, raw)

	var admins int64
	require.NoError(t, db.Model(&models.AdminUser{}).Count(&admins).Error)
	assert.EqualValues(t, 1, admins)
}

func testCatalogLifecycle(t *testing.T, db *gorm.DB) {
	svc := models.Service{Title: "Integration Service", Description: "real database round trip"}
	require.NoError(t, services.CreateService(db, &svc))

	require.NoError(t, services.UpdateService(db, svc.ID, map[string]any{"featured": true}))
	require.NoError(t, services.DeleteService(db, svc.ID))

	_, err := services.GetService(db, svc.ID, false)
	assert.ErrorIs(t, err, services.ErrNotFound)

	require.NoError(t, services.RestoreService(db, svc.ID))
	got, err := services.GetService(db, svc.ID, false)
	require.NoError(t, err)
	assert.True(t, got.Featured)
	assert.Equal(t, models.StatusActive, got.Status)

	entries, err := services.ServicesAudit.List(db, strconv.FormatUint(svc.ID, 10), 50)
	require.NoError(t, err)
	// create + 3 bracketed mutations.
	assert.Len(t, entries, 7)
}

func testContentSnapshots(t *testing.T, db *gorm.DB) {
	blocks := []services.BlockInput{
		{Component: "banner", Field: "headline", Value: "v1"},
	}
	require.NoError(t, services.SaveSectionBlocks(db, "hero", blocks))

	entries, err := services.ContentAudit.List(db, "hero", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	target := entries[0]

	blocks[0].Value = "v2"
	require.NoError(t, services.SaveSectionBlocks(db, "hero", blocks))

	require.NoError(t, services.RestoreSection(db, "hero", target.ID))
	grouped, err := services.GetContent(db, "hero")
	require.NoError(t, err)
	assert.Equal(t, "v1", grouped["hero"]["banner"]["headline"])
}
