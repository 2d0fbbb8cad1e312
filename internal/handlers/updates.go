package handlers

import (
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

// UpdatesHandler handles the site announcements routes
type UpdatesHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

type updateCreateRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
}

type updateUpdateRequest struct {
	ID       types.FlexUint64       `json:"id"`
	Restore  bool                   `json:"restore"`
	Title    types.Optional[string] `json:"title"`
	Content  types.Optional[string] `json:"content"`
	Type     types.Optional[string] `json:"type"`
	Priority types.Optional[string] `json:"priority"`
	Status   types.Optional[string] `json:"status"`
}

// GetUpdates handles GET /api/updates. Anonymous callers only see published
// announcements.
// @Summary List announcements
// @Tags Updates
// @Produce json
// @Param status query string false "Filter by status (admin)"
// @Param action query string false "Set to history for the change log (admin)"
// @Success 200 {object} map[string]interface{}
// @Router /updates [get]
func (h *UpdatesHandler) GetUpdates(c *fiber.Ctx) error {
	if c.Query("action") == "history" {
		return catalogHistory(c, h.Cfg, h.DB, services.UpdatesAudit, "Update")
	}

	opts := services.ListOptions{
		Status: c.Query("status"),
		Admin:  middleware.ClaimsFromCtx(c) != nil,
	}
	if v := queryBool(c, "includeDeleted"); v != nil {
		opts.IncludeDeleted = *v
	}

	rows, err := services.ListUpdates(h.DB, opts)
	if err != nil {
		return failed(c, h.Cfg, err, "Updates")
	}
	return utils.SuccessResponse(c, fiber.Map{"updates": rows})
}

// CreateUpdate handles POST /api/updates
// @Summary Create an announcement
// @Tags Updates
// @Accept json
// @Produce json
// @Param body body updateCreateRequest true "Announcement to create"
// @Success 201 {object} map[string]interface{}
// @Router /updates [post]
func (h *UpdatesHandler) CreateUpdate(c *fiber.Ctx) error {
	var req updateCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return utils.ValidationError(c, "Title and content are required")
	}

	upd := models.Update{
		Title:    req.Title,
		Content:  req.Content,
		Type:     req.Type,
		Priority: req.Priority,
		Status:   req.Status,
	}
	if upd.Type == "" {
		upd.Type = "news"
	}
	if upd.Priority == "" {
		upd.Priority = "normal"
	}
	if err := services.CreateUpdate(h.DB, &upd); err != nil {
		return failed(c, h.Cfg, err, "Update")
	}

	c.Status(fiber.StatusCreated)
	return utils.SuccessResponse(c, fiber.Map{"message": "Update created", "id": upd.ID})
}

// UpdateUpdate handles PUT /api/updates
// @Summary Update or restore an announcement
// @Tags Updates
// @Accept json
// @Produce json
// @Param body body updateUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Router /updates [put]
func (h *UpdatesHandler) UpdateUpdate(c *fiber.Ctx) error {
	var req updateUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(c, "Invalid request body")
	}
	if req.ID == 0 {
		return utils.ValidationError(c, "A valid id is required")
	}

	if req.Restore {
		if middleware.ClaimsFromCtx(c) == nil {
			return utils.UnauthorizedResponse(c)
		}
		if err := services.RestoreUpdate(h.DB, uint64(req.ID)); err != nil {
			return failed(c, h.Cfg, err, "Update")
		}
		return utils.SuccessResponse(c, fiber.Map{"message": "Update restored"})
	}

	updates := map[string]any{}
	req.Title.Apply(updates, "title")
	req.Content.Apply(updates, "content")
	req.Type.Apply(updates, "type")
	req.Priority.Apply(updates, "priority")
	req.Status.Apply(updates, "status")
	if len(updates) == 0 {
		return utils.ValidationError(c, "No fields to update")
	}

	if err := services.UpdateUpdate(h.DB, uint64(req.ID), updates); err != nil {
		return failed(c, h.Cfg, err, "Update")
	}
	return utils.SuccessResponse(c, fiber.Map{"message": "Update updated"})
}

// DeleteUpdate handles DELETE /api/updates?id=N
// @Summary Soft-delete an announcement
// @Tags Updates
// @Produce json
// @Param id query integer true "Update id"
// @Success 200 {object} map[string]interface{}
// @Router /updates [delete]
func (h *UpdatesHandler) DeleteUpdate(c *fiber.Ctx) error {
	id, err := queryID(c)
	if err != nil {
		return utils.ValidationError(c, "A valid id is required")
	}
	if err := services.DeleteUpdate(h.DB, id); err != nil {
		return failed(c, h.Cfg, err, "Update")
	}
	return utils.SuccessResponse(c, fiber.Map{"message": "Update deleted"})
}
