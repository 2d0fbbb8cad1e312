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

// SEOHandler handles the per-route SEO metadata routes
type SEOHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

type seoSaveRequest struct {
	Route            string           `json:"route"`
	RestoreHistoryID types.FlexUint64 `json:"restoreHistoryId"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Keywords         string           `json:"keywords"`
	OGTitle          string           `json:"og_title"`
	OGDescription    string           `json:"og_description"`
}

// GetSEOMeta handles GET /api/seo-meta
// @Summary Get SEO metadata
// @Tags SEO
// @Produce json
// @Param route query string false "Narrow to one page route"
// @Param action query string false "Set to history for the change log"
// @Success 200 {object} map[string]interface{}
// @Router /seo-meta [get]
func (h *SEOHandler) GetSEOMeta(c *fiber.Ctx) error {
	route := c.Query("route")

	if c.Query("action") == "history" {
		if middleware.ClaimsFromCtx(c) == nil {
			return utils.UnauthorizedResponse(c)
		}
		if route == "" {
			return utils.ValidationError(c, "A route is required for history")
		}
		entries, err := services.SEOAudit.List(h.DB, route, queryLimit(c))
		if err != nil {
			return failed(c, h.Cfg, err, "SEO history")
		}
		return utils.SuccessResponse(c, fiber.Map{"route": route, "history": entries})
	}

	rows, err := services.GetSEOMeta(h.DB, route)
	if err != nil {
		return failed(c, h.Cfg, err, "SEO metadata")
	}
	return utils.SuccessResponse(c, fiber.Map{"seo": rows})
}

// SaveSEOMeta handles POST /api/seo-meta and PUT /api/seo-meta. A PUT with
// restoreHistoryId rolls the route back instead of saving.
// @Summary Save or restore SEO metadata for a route
// @Tags SEO
// @Accept json
// @Produce json
// @Param body body seoSaveRequest true "Route metadata, or route and restoreHistoryId"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /seo-meta [post]
func (h *SEOHandler) SaveSEOMeta(c *fiber.Ctx) error {
	var req seoSaveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(c, "Invalid request body")
	}
	req.Route = strings.TrimSpace(req.Route)
	if req.Route == "" {
		return utils.ValidationError(c, "A route is required")
	}

	if req.RestoreHistoryID != 0 {
		if err := services.RestoreSEOMeta(h.DB, req.Route, uint64(req.RestoreHistoryID)); err != nil {
			return failed(c, h.Cfg, err, "SEO history entry")
		}
		return utils.SuccessResponse(c, fiber.Map{"message": "SEO metadata restored", "route": req.Route})
	}

	if strings.TrimSpace(req.Title) == "" {
		return utils.ValidationError(c, "A title is required")
	}

	meta := models.SEOMeta{
		Route:         req.Route,
		Title:         req.Title,
		Description:   req.Description,
		Keywords:      req.Keywords,
		OGTitle:       req.OGTitle,
		OGDescription: req.OGDescription,
	}
	if err := services.SaveSEOMeta(h.DB, &meta); err != nil {
		return failed(c, h.Cfg, err, "SEO metadata")
	}
	return utils.SuccessResponse(c, fiber.Map{"message": "SEO metadata saved", "route": req.Route})
}
