package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/quantalyze/backoffice/internal/config"
	"github.com/quantalyze/backoffice/internal/middleware"
	"github.com/quantalyze/backoffice/internal/services"
	"github.com/quantalyze/backoffice/internal/types"
	"github.com/quantalyze/backoffice/internal/utils"
	"gorm.io/gorm"
)

// SettingsHandler handles the scoped site settings routes
type SettingsHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

type settingsSaveRequest struct {
	Scope    string          `json:"scope"`
	Settings json.RawMessage `json:"settings"`
}

type settingsRestoreRequest struct {
	Scope            string           `json:"scope"`
	RestoreHistoryID types.FlexUint64 `json:"restoreHistoryId"`
}

// GetSettings handles GET /api/site-settings
// @Summary Get site settings for a scope
// @Description Returns the settings blob for a scope, falling back to compiled-in defaults. With action=history, returns the scope change log
// @Tags Settings
// @Produce json
// @Param scope query string false "Settings scope, defaults to footer"
// @Param action query string false "Set to history for the change log"
// @Param limit query integer false "History page size, 1-200"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /site-settings [get]
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	scope := c.Query("scope", "footer")

	if c.Query("action") == "history" {
		if middleware.ClaimsFromCtx(c) == nil {
			return utils.UnauthorizedResponse(c)
		}
		entries, err := services.SettingsAudit.List(h.DB, scope, queryLimit(c))
		if err != nil {
			return failed(c, h.Cfg, err, "Settings history")
		}
		return utils.SuccessResponse(c, fiber.Map{"scope": scope, "history": entries})
	}

	raw, err := services.GetSettings(h.DB, scope)
	if err != nil {
		return failed(c, h.Cfg, err, "Settings scope")
	}
	return utils.SuccessResponse(c, fiber.Map{"scope": scope, "settings": raw})
}

// SaveSettings handles POST /api/site-settings
// @Summary Replace the settings for a scope
// @Tags Settings
// @Accept json
// @Produce json
// @Param body body settingsSaveRequest true "Scope and settings blob"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /site-settings [post]
func (h *SettingsHandler) SaveSettings(c *fiber.Ctx) error {
	var req settingsSaveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(c, "Invalid request body")
	}
	req.Scope = strings.TrimSpace(req.Scope)
	if req.Scope == "" {
		req.Scope = "footer"
	}
	if len(req.Settings) == 0 || !json.Valid(req.Settings) {
		return utils.ValidationError(c, "A valid settings object is required")
	}

	if err := services.SaveSettings(h.DB, req.Scope, req.Settings); err != nil {
		return failed(c, h.Cfg, err, "Settings")
	}
	return utils.SuccessResponse(c, fiber.Map{"message": "Settings saved", "scope": req.Scope})
}

// RestoreSettings handles PUT /api/site-settings
// @Summary Roll a settings scope back to a history snapshot
// @Tags Settings
// @Accept json
// @Produce json
// @Param body body settingsRestoreRequest true "Scope and history entry id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /site-settings [put]
func (h *SettingsHandler) RestoreSettings(c *fiber.Ctx) error {
	var req settingsRestoreRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(c, "Invalid request body")
	}
	req.Scope = strings.TrimSpace(req.Scope)
	if req.Scope == "" {
		req.Scope = "footer"
	}
	if req.RestoreHistoryID == 0 {
		return utils.ValidationError(c, "A valid restoreHistoryId is required")
	}

	if err := services.RestoreSettings(h.DB, req.Scope, uint64(req.RestoreHistoryID)); err != nil {
		return failed(c, h.Cfg, err, "Settings history entry")
	}
	return utils.SuccessResponse(c, fiber.Map{"message": "Settings restored", "scope": req.Scope})
}
