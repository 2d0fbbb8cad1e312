// offerings.go
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
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/quantalyze/backoffice/internal/config"
	"github.com/quantalyze/backoffice/internal/middleware"
	"github.com/quantalyze/backoffice/internal/models"
	"github.com/quantalyze/backoffice/internal/services"
	"github.com/quantalyze/backoffice/internal/types"
	"github.com/quantalyze/backoffice/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ServicesHandler handles the services catalog routes
type ServicesHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

type serviceCreateRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Category    string          `json:"category"`
	Price       *float64        `json:"price"`
	Featured    bool            `json:"featured"`
	Status      string          `json:"status"`
	SubServices json.RawMessage `json:"sub_services"`
}

type serviceUpdateRequest struct {
	ID          types.FlexUint64               `json:"id"`
	Restore     bool                           `json:"restore"`
	Title       types.Optional[string]         `json:"title"`
	Description types.Optional[string]         `json:"description"`
	Icon        types.Optional[string]         `json:"icon"`
	Category    types.Optional[string]         `json:"category"`
	Price       types.Optional[float64]        `json:"price"`
	Featured    types.Optional[bool]           `json:"featured"`
	Status      types.Optional[string]         `json:"status"`
	SubServices types.Optional[json.RawMessage] `json:"sub_services"`
}

// GetServices handles GET /api/services
// @Summary List services
// @Description List the services catalog. Admins can filter by status, include soft-deleted rows, or read history with action=history
// @Tags Services
// @Produce json
// @Param status query string false "Filter by status (admin)"
// @Param category query string false "Filter by category"
// @Param featured query boolean false "Filter by featured flag"
// @Param includeDeleted query boolean false "Include soft-deleted rows (admin)"
// @Param action query string false "Set to history for the change log (admin)"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /services [get]
func (h *ServicesHandler) GetServices(c *fiber.Ctx) error {
	admin := middleware.ClaimsFromCtx(c) != nil

	if c.Query("action") == "history" {
		return catalogHistory(c, h.Cfg, h.DB, services.ServicesAudit, "Service")
	}

	opts := services.ListOptions{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Featured: queryBool(c, "featured"),
		Admin:    admin,
	}
	if v := queryBool(c, "includeDeleted"); v != nil {
		opts.IncludeDeleted = *v
	}

	rows, err := services.ListServices(h.DB, opts)
	if err != nil {
		return failed(c, h.Cfg, err, "Services")
	}
	return utils.SuccessResponse(c, fiber.Map{"services": rows})
}

// CreateService handles POST /api/services
// @Summary Create a service
// @Tags Services
// @Accept json
// @Produce json
// @Param body body serviceCreateRequest true "Service to create"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /services [post]
func (h *ServicesHandler) CreateService(c *fiber.Ctx) error {
	var req serviceCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return utils.ValidationError(c, "Title and description are required")
	}

	svc := models.Service{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Category:    req.Category,
		Price:       req.Price,
		Featured:    req.Featured,
		Status:      req.Status,
		SubServices: models.JSON{JSON: datatypes.JSON(req.SubServices)},
	}
	if err := services.CreateService(h.DB, &svc); err != nil {
		return failed(c, h.Cfg, err, "Service")
	}

	c.Status(fiber.StatusCreated)
	return utils.SuccessResponse(c, fiber.Map{"message": "Service created", "id": svc.ID})
}

// UpdateService handles PUT /api/services
// @Summary Update or restore a service
// @Description Applies a partial update. Fields absent from the body are left untouched. With restore=true the soft-deleted service is brought back instead
// @Tags Services
// @Accept json
// @Produce json
// @Param body body serviceUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /services [put]
func (h *ServicesHandler) UpdateService(c *fiber.Ctx) error {
	var req serviceUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(c, "Invalid request body")
	}
	if req.ID == 0 {
		return utils.ValidationError(c, "A valid id is required")
	}

	if req.Restore {
		// Restores stay admin-only even when the resource allows anonymous
		// writes.
		if middleware.ClaimsFromCtx(c) == nil {
			return utils.UnauthorizedResponse(c)
		}
		if err := services.RestoreService(h.DB, uint64(req.ID)); err != nil {
			return failed(c, h.Cfg, err, "Service")
		}
		return utils.SuccessResponse(c, fiber.Map{"message": "Service restored"})
	}

	updates := map[string]any{}
	req.Title.Apply(updates, "title")
	req.Description.Apply(updates, "description")
	req.Icon.Apply(updates, "icon")
	req.Category.Apply(updates, "category")
	req.Price.Apply(updates, "price")
	req.Featured.Apply(updates, "featured")
	req.Status.Apply(updates, "status")
	if req.SubServices.Set {
		if req.SubServices.Null {
			updates["sub_services"] = nil
		} else {
			updates["sub_services"] = models.JSON{JSON: datatypes.JSON(req.SubServices.Value)}
		}
	}
	if len(updates) == 0 {
		return utils.ValidationError(c, "No fields to update")
	}

	if err := services.UpdateService(h.DB, uint64(req.ID), updates); err != nil {
		return failed(c, h.Cfg, err, "Service")
	}
	return utils.SuccessResponse(c, fiber.Map{"message": "Service updated"})
}

// DeleteService handles DELETE /api/services?id=N
// @Summary Soft-delete a service
// @Tags Services
// @Produce json
// @Param id query integer true "Service id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /services [delete]
func (h *ServicesHandler) DeleteService(c *fiber.Ctx) error {
	id, err := queryID(c)
	if err != nil {
		return utils.ValidationError(c, "A valid id is required")
	}
	if err := services.DeleteService(h.DB, id); err != nil {
		return failed(c, h.Cfg, err, "Service")
	}
	return utils.SuccessResponse(c, fiber.Map{"message": "Service deleted"})
}
