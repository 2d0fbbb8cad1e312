package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port   string
	AppEnv string // development or production

	// Database configuration
	DBType            string // mysql, mariadb, postgres, sqlite, sqlserver
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int
	SQLitePath        string

	// Auth configuration
	JWTSecret string
	TokenTTL  time.Duration

	// Resources whose plain write endpoints skip the admin gate.
	// The original site shipped with anonymous writes on a couple of
	// endpoints; keeping that behavior is now an explicit choice here
	// instead of an accident.
	AnonWriteResources []string

	// Seed admin account (created only when admin_users is empty)
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "3000"),
		AppEnv:             getEnv("APP_ENV", "development"),
		DBType:             getEnv("DB_TYPE", ""),
		DBHost:             getEnv("DB_HOST", ""),
		DBPort:             getEnv("DB_PORT", "3306"),
		DBName:             getEnv("DB_NAME", "quantalyze"),
		DBUser:             getEnv("DB_USER", ""),
		DBPassword:         getEnv("DB_PASSWORD", ""),
		DBConnectionLimit:  getEnvAsInt("DB_CONNECTION_LIMIT", 10),
		SQLitePath:         getEnv("SQLITE_PATH", "backoffice.db"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		TokenTTL:           getEnvAsDuration("TOKEN_TTL", 24*time.Hour),
		AnonWriteResources: splitList(getEnv("ANON_WRITE_RESOURCES", "")),
		AdminUsername:      getEnv("ADMIN_USERNAME", "Admin"),
		AdminEmail:         getEnv("ADMIN_EMAIL", "admin@quantalyze.co.in"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", ""),
	}

	// No DB_TYPE configured: use the networked engine when a host is
	// provisioned, otherwise fall back to the embedded file engine.
	if cfg.DBType == "" {
		if cfg.DBHost != "" {
			cfg.DBType = "mysql"
		} else {
			cfg.DBType = "sqlite"
		}
	}

	if cfg.DBType != "sqlite" {
		if cfg.DBHost == "" {
			return nil, fmt.Errorf("DB_HOST is required for %s", cfg.DBType)
		}
		if cfg.DBUser == "" {
			return nil, fmt.Errorf("DB_USER is required for %s", cfg.DBType)
		}
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "dev-secret-change-me"
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with the production profile.
// Error responses omit underlying detail in production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// AllowsAnonymousWrites reports whether plain create/update/delete on the
// named resource may run without a bearer token. History and restore
// endpoints are always gated regardless of this setting.
func (c *Config) AllowsAnonymousWrites(resource string) bool {
	for _, r := range c.AnonWriteResources {
		if r == resource {
			return true
		}
	}
	return false
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
