// main.go
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

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/quantalyze/backoffice/internal/auth"
	"github.com/quantalyze/backoffice/internal/config"
	"github.com/quantalyze/backoffice/internal/database"
	"github.com/quantalyze/backoffice/internal/handlers"
	"github.com/quantalyze/backoffice/internal/models"

	_ "github.com/quantalyze/backoffice/docs/api" // Swagger docs
)

// @title Quantalyze Back-Office API
// @version 1.0.0
// @description Data service behind the Quantalyze marketing site and its admin panel
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email admin@quantalyze.co.in

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Local development keeps its settings in a .env file. Absence is fine.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations once at startup. Requests never touch the schema.
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Columns added after the first release. Failures are logged and the
	// server keeps going.
	database.EnsureColumn(db, &models.Service{}, "SubServices")
	database.EnsureColumn(db, &models.Course{}, "EnrolledStudents")

	// Seed the default admin account and starter content
	if err := database.Seed(db, cfg); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	mgr := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("backoffice")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	handlers.Register(app, db, cfg, mgr)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success":   false,
			"message":   "[404] Resource Not Found",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
