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

// TeamHandler handles the team member routes
type TeamHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

type teamCreateRequest struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Bio          string `json:"bio"`
	PhotoURL     string `json:"photo_url"`
	DisplayOrder int    `json:"display_order"`
	Status       string `json:"status"`
}

type teamUpdateRequest struct {
	ID           types.FlexUint64       `json:"id"`
	Restore      bool                   `json:"restore"`
	Name         types.Optional[string] `json:"name"`
	Role         types.Optional[string] `json:"role"`
	Bio          types.Optional[string] `json:"bio"`
	PhotoURL     types.Optional[string] `json:"photo_url"`
	DisplayOrder types.Optional[int]    `json:"display_order"`
	Status       types.Optional[string] `json:"status"`
}

// GetTeam handles GET /api/team
// @Summary List team members
// @Tags Team
// @Produce json
// @Param action query string false "Set to history for the change log (admin)"
// @Success 200 {object} map[string]interface{}
// @Router /team [get]
func (h *TeamHandler) GetTeam(c *fiber.Ctx) error {
	if c.Query("action") == "history" {
		return catalogHistory(c, h.Cfg, h.DB, services.TeamAudit, "Team member")
	}

	opts := services.ListOptions{
		Status: c.Query("status"),
		Admin:  middleware.ClaimsFromCtx(c) != nil,
	}
	if v := queryBool(c, "includeDeleted"); v != nil {
		opts.IncludeDeleted = *v
	}

	rows, err := services.ListTeamMembers(h.DB, opts)
	if err != nil {
		return failed(c, h.Cfg, err, "Team members")
	}
	return utils.SuccessResponse(c, fiber.Map{"team": rows})
}

// CreateTeamMember handles POST /api/team
// @Summary Add a team member
// @Tags Team
// @Accept json
// @Produce json
// @Param body body teamCreateRequest true "Team member to add"
// @Success 201 {object} map[string]interface{}
// @Router /team [post]
func (h *TeamHandler) CreateTeamMember(c *fiber.Ctx) error {
	var req teamCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Role) == "" {
		return utils.ValidationError(c, "Name and role are required")
	}

	member := models.TeamMember{
		Name:         req.Name,
		Role:         req.Role,
		Bio:          req.Bio,
		PhotoURL:     req.PhotoURL,
		DisplayOrder: req.DisplayOrder,
		Status:       req.Status,
	}
	if err := services.CreateTeamMember(h.DB, &member); err != nil {
		return failed(c, h.Cfg, err, "Team member")
	}

	c.Status(fiber.StatusCreated)
	return utils.SuccessResponse(c, fiber.Map{"message": "Team member created", "id": member.ID})
}

// UpdateTeamMember handles PUT /api/team
// @Summary Update or restore a team member
// @Tags Team
// @Accept json
// @Produce json
// @Param body body teamUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Router /team [put]
func (h *TeamHandler) UpdateTeamMember(c *fiber.Ctx) error {
	var req teamUpdateRequest
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
		if err := services.RestoreTeamMember(h.DB, uint64(req.ID)); err != nil {
			return failed(c, h.Cfg, err, "Team member")
		}
		return utils.SuccessResponse(c, fiber.Map{"message": "Team member restored"})
	}

	updates := map[string]any{}
	req.Name.Apply(updates, "name")
	req.Role.Apply(updates, "role")
	req.Bio.Apply(updates, "bio")
	req.PhotoURL.Apply(updates, "photo_url")
	req.DisplayOrder.Apply(updates, "display_order")
	req.Status.Apply(updates, "status")
	if len(updates) == 0 {
		return utils.ValidationError(c, "No fields to update")
	}

	if err := services.UpdateTeamMember(h.DB, uint64(req.ID), updates); err != nil {
		return failed(c, h.Cfg, err, "Team member")
	}
	return utils.SuccessResponse(c, fiber.Map{"message": "Team member updated"})
}

// DeleteTeamMember handles DELETE /api/team?id=N
// @Summary Soft-delete a team member
// @Tags Team
// @Produce json
// @Param id query integer true "Team member id"
// @Success 200 {object} map[string]interface{}
// @Router /team [delete]
func (h *TeamHandler) DeleteTeamMember(c *fiber.Ctx) error {
	id, err := queryID(c)
	if err != nil {
		return utils.ValidationError(c, "A valid id is required")
	}
	if err := services.DeleteTeamMember(h.DB, id); err != nil {
		return failed(c, h.Cfg, err, "Team member")
	}
	return utils.SuccessResponse(c, fiber.Map{"message": "Team member deleted"})
}
