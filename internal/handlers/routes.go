// routes.go
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

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/quantalyze/backoffice/internal/auth"
	"github.com/quantalyze/backoffice/internal/config"
	"github.com/quantalyze/backoffice/internal/middleware"
	"github.com/quantalyze/backoffice/internal/types"
	"gorm.io/gorm"
)

// ErrorHandler maps errors that escape a handler onto the response
// envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var ce *types.CustomError
	if errors.As(err, &ce) {
		code = ce.Code
		message = ce.Message
	} else if fe, ok := err.(*fiber.Error); ok {
		code = fe.Code
		message = fe.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// Register wires every API route under /api. Reads are public with optional
// identification, writes go through the per-resource policy, and the admin
// surface always requires a token.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, mgr *auth.Manager) {
	api := app.Group("/api")
	api.Use(middleware.Version())

	health := &HealthHandler{DB: db, Cfg: cfg}
	api.Get("/health", health.GetHealth)

	identify := middleware.Identify(mgr)

	servicesH := &ServicesHandler{DB: db, Cfg: cfg}
	api.Get("/services", identify, servicesH.GetServices)
	api.Post("/services", middleware.Protect(mgr, cfg, "services"), servicesH.CreateService)
	api.Put("/services", middleware.Protect(mgr, cfg, "services"), servicesH.UpdateService)
	api.Delete("/services", middleware.Protect(mgr, cfg, "services"), servicesH.DeleteService)

	coursesH := &CoursesHandler{DB: db, Cfg: cfg}
	api.Get("/courses", identify, coursesH.GetCourses)
	api.Post("/courses", middleware.Protect(mgr, cfg, "courses"), coursesH.CreateCourse)
	api.Put("/courses", middleware.Protect(mgr, cfg, "courses"), coursesH.UpdateCourse)
	api.Delete("/courses", middleware.Protect(mgr, cfg, "courses"), coursesH.DeleteCourse)

	updatesH := &UpdatesHandler{DB: db, Cfg: cfg}
	api.Get("/updates", identify, updatesH.GetUpdates)
	api.Post("/updates", middleware.Protect(mgr, cfg, "updates"), updatesH.CreateUpdate)
	api.Put("/updates", middleware.Protect(mgr, cfg, "updates"), updatesH.UpdateUpdate)
	api.Delete("/updates", middleware.Protect(mgr, cfg, "updates"), updatesH.DeleteUpdate)

	teamH := &TeamHandler{DB: db, Cfg: cfg}
	api.Get("/team", identify, teamH.GetTeam)
	api.Post("/team", middleware.Protect(mgr, cfg, "team"), teamH.CreateTeamMember)
	api.Put("/team", middleware.Protect(mgr, cfg, "team"), teamH.UpdateTeamMember)
	api.Delete("/team", middleware.Protect(mgr, cfg, "team"), teamH.DeleteTeamMember)

	contentH := &ContentHandler{DB: db, Cfg: cfg}
	api.Get("/content", identify, contentH.GetContent)
	api.Put("/content", middleware.Protect(mgr, cfg, "content"), contentH.SaveContent)
	api.Delete("/content", middleware.Protect(mgr, cfg, "content"), contentH.DeleteContentBlock)
	api.Get("/content/sections", identify, contentH.GetSections)
	api.Post("/content/sections", middleware.RequireAdmin(mgr), contentH.SaveSection)

	settingsH := &SettingsHandler{DB: db, Cfg: cfg}
	api.Get("/site-settings", identify, settingsH.GetSettings)
	api.Post("/site-settings", middleware.RequireAdmin(mgr), settingsH.SaveSettings)
	api.Put("/site-settings", middleware.RequireAdmin(mgr), settingsH.RestoreSettings)

	seoH := &SEOHandler{DB: db, Cfg: cfg}
	api.Get("/seo-meta", identify, seoH.GetSEOMeta)
	api.Post("/seo-meta", middleware.RequireAdmin(mgr), seoH.SaveSEOMeta)
	api.Put("/seo-meta", middleware.RequireAdmin(mgr), seoH.SaveSEOMeta)

	contactH := &ContactHandler{DB: db, Cfg: cfg}
	api.Post("/contact", contactH.SubmitInquiry)

	newsletterH := &NewsletterHandler{DB: db, Cfg: cfg}
	api.Post("/newsletter", newsletterH.Subscribe)

	analyticsH := &AnalyticsHandler{DB: db, Cfg: cfg}
	api.Post("/analytics", analyticsH.TrackEvent)

	authH := &AuthHandler{DB: db, Cfg: cfg, Mgr: mgr}
	admin := api.Group("/admin")
	admin.Post("/login", authH.Login)
	admin.Post("/forgot-password", authH.ForgotPassword)
	admin.Get("/verify", middleware.RequireAdmin(mgr), authH.Verify)
	admin.Post("/change-password", middleware.RequireAdmin(mgr), authH.ChangePassword)
	admin.Get("/inquiries", middleware.RequireAdmin(mgr), contactH.GetInquiries)
	admin.Put("/inquiries", middleware.RequireAdmin(mgr), contactH.UpdateInquiry)
	admin.Get("/newsletter", middleware.RequireAdmin(mgr), newsletterH.GetSubscribers)
	admin.Put("/newsletter", middleware.RequireAdmin(mgr), newsletterH.UpdateSubscriber)
	admin.Get("/analytics", middleware.RequireAdmin(mgr), analyticsH.GetAnalytics)
}
