package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaultsToEmbeddedEngine(t *testing.T) {
	t.Setenv("DB_TYPE", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}

func TestLoadPicksNetworkedEngineWhenHostSet(t *testing.T) {
	t.Setenv("DB_TYPE", "")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "backoffice")
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "mysql", cfg.DBType)
}

func TestLoadRequiresCredentialsForNetworkedEngine(t *testing.T) {
	t.Setenv("DB_TYPE", "mysql")
	t.Setenv("DB_HOST", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresSecretInProduction(t *testing.T) {
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestAnonWritePolicy(t *testing.T) {
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("APP_ENV", "development")
	t.Setenv("ANON_WRITE_RESOURCES", "services, content")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.True(t, cfg.AllowsAnonymousWrites("services"))
	assert.True(t, cfg.AllowsAnonymousWrites("content"))
	assert.False(t, cfg.AllowsAnonymousWrites("courses"))
}
