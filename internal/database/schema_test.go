package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/quantalyze/backoffice/internal/config"
	"github.com/quantalyze/backoffice/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestAutoMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, AutoMigrate(db))
	// A second run on an up-to-date schema must be a no-op, not an error.
	require.NoError(t, AutoMigrate(db))

	for _, table := range append([]string{"services", "courses", "content_blocks", "site_settings", "newsletter_subscribers", "analytics_events", "admin_users"}, HistoryTables...) {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestEnsureColumnIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, AutoMigrate(db))

	// Present column: repeated calls change nothing and never error out.
	for i := 0; i < 3; i++ {
		EnsureColumn(db, &models.Service{}, "sub_services")
	}
	assert.True(t, db.Migrator().HasColumn(&models.Service{}, "sub_services"))
}

func TestEnsureColumnAddsMissingColumn(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, AutoMigrate(db))

	require.NoError(t, db.Migrator().DropColumn(&models.Course{}, "enrolled_students"))
	require.False(t, db.Migrator().HasColumn(&models.Course{}, "enrolled_students"))

	EnsureColumn(db, &models.Course{}, "enrolled_students")
	assert.True(t, db.Migrator().HasColumn(&models.Course{}, "enrolled_students"))
}

func TestConnectSQLiteAndPing(t *testing.T) {
	cfg := &config.Config{
		DBType:     "sqlite",
		SQLitePath: t.TempDir() + "/test.db",
	}

	db, err := Connect(cfg)
	require.NoError(t, err)
	defer Close(db)

	assert.NoError(t, TestConnection(db))
}

func TestConnectRejectsUnknownEngine(t *testing.T) {
	_, err := Connect(&config.Config{DBType: "oracle"})
	assert.Error(t, err)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, AutoMigrate(db))

	cfg := &config.Config{
		AppEnv:        "development",
		AdminUsername: "Admin",
		AdminEmail:    "admin@example.com",
	}

	require.NoError(t, Seed(db, cfg))
	require.NoError(t, Seed(db, cfg))

	var admins int64
	require.NoError(t, db.Model(&models.AdminUser{}).Count(&admins).Error)
	assert.Equal(t, int64(1), admins)

	var services int64
	require.NoError(t, db.Model(&models.Service{}).Count(&services).Error)
	assert.Greater(t, services, int64(0))

	var settings int64
	require.NoError(t, db.Model(&models.SiteSetting{}).Count(&settings).Error)
	assert.Equal(t, int64(1), settings)
}

func TestSeedHashesPassword(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, AutoMigrate(db))

	cfg := &config.Config{
		AppEnv:        "development",
		AdminUsername: "Admin",
		AdminEmail:    "admin@example.com",
		AdminPassword: "s3cret-pw",
	}
	require.NoError(t, Seed(db, cfg))

	var admin models.AdminUser
	require.NoError(t, db.First(&admin).Error)
	assert.NotEqual(t, "s3cret-pw", admin.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("s3cret-pw")))
}

func TestSeedRequiresPasswordInProduction(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, AutoMigrate(db))

	cfg := &config.Config{
		AppEnv:        "production",
		AdminUsername: "Admin",
		AdminEmail:    "admin@example.com",
	}
	assert.Error(t, Seed(db, cfg))
}
