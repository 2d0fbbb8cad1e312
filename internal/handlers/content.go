// content.go
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
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/quantalyze/backoffice/internal/config"
	"github.com/quantalyze/backoffice/internal/middleware"
	"github.com/quantalyze/backoffice/internal/models"
	"github.com/quantalyze/backoffice/internal/services"
	"github.com/quantalyze/backoffice/internal/types"
	"github.com/quantalyze/backoffice/internal/utils"
	"gorm.io/gorm"
)

// ContentHandler handles the editable content block routes
type ContentHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

type contentSaveRequest struct {
	Section          string                             `json:"section"`
	RestoreHistoryID types.FlexUint64                   `json:"restoreHistoryId"`
	Blocks           types.FlexList[services.BlockInput] `json:"blocks"`
}

type sectionSaveRequest struct {
	SectionID string `json:"section_id"`
	Name      string `json:"name"`
	Order     int    `json:"order"`
	Visible   *bool  `json:"visible"`
}

// GetContent handles GET /api/content
// @Summary Get site content blocks
// @Description Returns blocks grouped section -> component -> field. With action=history and a section, returns the section change log (admin)
// @Tags Content
// @Produce json
// @Param section query string false "Narrow to one section"
// @Param action query string false "Set to history for the change log (admin)"
// @Success 200 {object} map[string]interface{}
// @Router /content [get]
func (h *ContentHandler) GetContent(c *fiber.Ctx) error {
	section := c.Query("section")

	if c.Query("action") == "history" {
		if middleware.ClaimsFromCtx(c) == nil {
			return utils.UnauthorizedResponse(c)
		}
		if section == "" {
			return utils.ValidationError(c, "A section is required for history")
		}
		entries, err := services.ContentAudit.List(h.DB, section, queryLimit(c))
		if err != nil {
			return failed(c, h.Cfg, err, "Content history")
		}
		return utils.SuccessResponse(c, fiber.Map{"history": entries})
	}

	grouped, err := services.GetContent(h.DB, section)
	if err != nil {
		return failed(c, h.Cfg, err, "Content")
	}
	return utils.SuccessResponse(c, fiber.Map{"content": grouped})
}

// SaveContent handles PUT /api/content
// @Summary Save or restore a content section
// @Description Upserts the posted blocks for a section in one transaction. With restoreHistoryId the section is rolled back to that snapshot instead (admin)
// @Tags Content
// @Accept json
// @Produce json
// @Param body body contentSaveRequest true "Section and blocks, or section and restoreHistoryId"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /content [put]
func (h *ContentHandler) SaveContent(c *fiber.Ctx) error {
	var req contentSaveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(c, "Invalid request body")
	}
	req.Section = strings.TrimSpace(req.Section)
	if req.Section == "" {
		return utils.ValidationError(c, "A section is required")
	}

	if req.RestoreHistoryID != 0 {
		if middleware.ClaimsFromCtx(c) == nil {
			return utils.UnauthorizedResponse(c)
		}
		if err := services.RestoreSection(h.DB, req.Section, uint64(req.RestoreHistoryID)); err != nil {
			return failed(c, h.Cfg, err, "Content history entry")
		}
		return utils.SuccessResponse(c, fiber.Map{"message": "Section restored"})
	}

	if len(req.Blocks) == 0 {
		return utils.ValidationError(c, "At least one block is required")
	}
	for _, b := range req.Blocks {
		if strings.TrimSpace(b.Component) == "" || strings.TrimSpace(b.Field) == "" {
			return utils.ValidationError(c, "Every block needs a component and a field")
		}
	}

	if err := services.SaveSectionBlocks(h.DB, req.Section, req.Blocks); err != nil {
		return failed(c, h.Cfg, err, "Content")
	}
	return utils.SuccessResponse(c, fiber.Map{
		"message": "Saved " + strconv.Itoa(len(req.Blocks)) + " blocks",
	})
}

// DeleteContentBlock handles DELETE /api/content?id=N
// @Summary Delete one content block
// @Tags Content
// @Produce json
// @Param id query integer true "Block id"
// @Success 200 {object} map[string]interface{}
// @Router /content [delete]
func (h *ContentHandler) DeleteContentBlock(c *fiber.Ctx) error {
	id, err := queryID(c)
	if err != nil {
		return utils.ValidationError(c, "A valid id is required")
	}
	if err := services.DeleteContentBlock(h.DB, id); err != nil {
		return failed(c, h.Cfg, err, "Content block")
	}
	return utils.SuccessResponse(c, fiber.Map{"message": "Block deleted"})
}

// GetSections handles GET /api/content/sections
// @Summary List content sections
// @Tags Content
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /content/sections [get]
func (h *ContentHandler) GetSections(c *fiber.Ctx) error {
	sections, err := services.ListSections(h.DB)
	if err != nil {
		return failed(c, h.Cfg, err, "Sections")
	}
	return utils.SuccessResponse(c, fiber.Map{"sections": sections})
}

// SaveSection handles POST /api/content/sections
// @Summary Create or update a content section entry
// @Tags Content
// @Accept json
// @Produce json
// @Param body body sectionSaveRequest true "Section metadata"
// @Success 200 {object} map[string]interface{}
// @Router /content/sections [post]
func (h *ContentHandler) SaveSection(c *fiber.Ctx) error {
	var req sectionSaveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(c, "Invalid request body")
	}
	if strings.TrimSpace(req.SectionID) == "" || strings.TrimSpace(req.Name) == "" {
		return utils.ValidationError(c, "section_id and name are required")
	}

	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}
	section := models.ContentSection{
		SectionID: req.SectionID,
		Name:      req.Name,
		Order:     req.Order,
		Visible:   visible,
	}
	if err := services.SaveSection(h.DB, &section); err != nil {
		return failed(c, h.Cfg, err, "Section")
	}
	return utils.SuccessResponse(c, fiber.Map{"message": "Section saved"})
}
