// common.go
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

// Package handlers wires the HTTP surface to the service layer. Handlers
// parse and validate, services do the work, utils shapes the envelope.
package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/quantalyze/backoffice/internal/audit"
	"github.com/quantalyze/backoffice/internal/config"
	"github.com/quantalyze/backoffice/internal/middleware"
	"github.com/quantalyze/backoffice/internal/services"
	"github.com/quantalyze/backoffice/internal/utils"
	"gorm.io/gorm"
)

// queryID parses the id query parameter.
func queryID(c *fiber.Ctx) (uint64, error) {
	raw := c.Query("id")
	if raw == "" {
		return 0, errors.New("id is required")
	}
	return strconv.ParseUint(raw, 10, 64)
}

// queryLimit parses the limit query parameter, 0 when absent. The audit
// layer clamps the value.
func queryLimit(c *fiber.Ctx) int {
	n, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		return 0
	}
	return n
}

// queryBool reads a boolean query parameter, nil when absent.
func queryBool(c *fiber.Ctx, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v := raw == "true" || raw == "1"
	return &v
}

// detail exposes the underlying error text outside production only.
func detail(cfg *config.Config, err error) string {
	if cfg.IsProduction() || err == nil {
		return ""
	}
	return err.Error()
}

// catalogHistory serves the action=history variant of a catalog GET. The
// change log is admin-only even on public routes.
func catalogHistory(c *fiber.Ctx, cfg *config.Config, db *gorm.DB, lg *audit.Logger, resource string) error {
	if middleware.ClaimsFromCtx(c) == nil {
		return utils.UnauthorizedResponse(c)
	}
	id, err := queryID(c)
	if err != nil {
		return utils.ValidationError(c, "A valid id is required for history")
	}
	entries, err := lg.List(db, strconv.FormatUint(id, 10), queryLimit(c))
	if err != nil {
		return failed(c, cfg, err, resource+" history")
	}
	return utils.SuccessResponse(c, fiber.Map{"history": entries})
}

// failed maps a service error onto the response envelope. resource names
// what was being operated on, for the not-found message.
func failed(c *fiber.Ctx, cfg *config.Config, err error, resource string) error {
	if errors.Is(err, services.ErrNotFound) || errors.Is(err, audit.ErrNotFound) {
		return utils.NotFoundResponse(c, resource+" not found")
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error", detail(cfg, err))
}
