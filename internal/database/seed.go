package database

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quantalyze/backoffice/data"
	"github.com/quantalyze/backoffice/internal/config"
	"github.com/quantalyze/backoffice/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seed brings an empty database to a usable state: a default admin account,
// the service catalogue the marketing site ships with, and the footer
// settings scope. Each step only fires when its table is empty, so Seed is
// safe to run on every boot.
func Seed(db *gorm.DB, cfg *config.Config) error {
	if err := seedAdminUser(db, cfg); err != nil {
		return err
	}
	if err := seedServices(db); err != nil {
		return err
	}
	return seedSiteSettings(db)
}

func seedAdminUser(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed check admin_users: %w", err)
	}
	if count > 0 {
		return nil
	}

	password := cfg.AdminPassword
	if password == "" {
		if cfg.IsProduction() {
			return fmt.Errorf("ADMIN_PASSWORD is required to seed the first admin in production")
		}
		password = "Admin@123"
		log.Printf("Seeding default admin %q with the development password", cfg.AdminUsername)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	admin := models.AdminUser{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	log.Printf("Created admin user %q", admin.Username)
	return nil
}

func seedServices(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed check services: %w", err)
	}
	if count > 0 {
		return nil
	}

	var services []models.Service
	if err := json.Unmarshal([]byte(data.DefaultServices), &services); err != nil {
		return fmt.Errorf("seed parse default services: %w", err)
	}

	if err := db.Create(&services).Error; err != nil {
		return fmt.Errorf("seed insert services: %w", err)
	}

	log.Printf("Seeded %d default services", len(services))
	return nil
}

func seedSiteSettings(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.SiteSetting{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed check site_settings: %w", err)
	}
	if count > 0 {
		return nil
	}

	setting := models.SiteSetting{
		Scope:    "footer",
		Settings: models.JSON{JSON: datatypes.JSON(data.DefaultFooterSettings)},
	}
	if err := db.Create(&setting).Error; err != nil {
		return fmt.Errorf("seed insert site_settings: %w", err)
	}

	log.Printf("Seeded default %q settings scope", setting.Scope)
	return nil
}
