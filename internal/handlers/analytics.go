package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/quantalyze/backoffice/internal/config"
	"github.com/quantalyze/backoffice/internal/models"
	"github.com/quantalyze/backoffice/internal/services"
	"github.com/quantalyze/backoffice/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AnalyticsHandler handles public event capture and the admin activity
// summary
type AnalyticsHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

type trackEventRequest struct {
	EventType string          `json:"event_type"`
	EventData json.RawMessage `json:"event_data"`
	SessionID string          `json:"session_id"`
}

// TrackEvent handles POST /api/analytics
// @Summary Record a client-side event
// @Tags Analytics
// @Accept json
// @Produce json
// @Param body body trackEventRequest true "Event"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /analytics [post]
func (h *AnalyticsHandler) TrackEvent(c *fiber.Ctx) error {
	var req trackEventRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(c, "Invalid request body")
	}

	event := models.AnalyticsEvent{
		EventType: req.EventType,
		EventData: models.JSON{JSON: datatypes.JSON(req.EventData)},
		UserAgent: c.Get(fiber.HeaderUserAgent),
		IPAddress: c.IP(),
		SessionID: req.SessionID,
	}
	if err := services.TrackEvent(h.DB, &event); err != nil {
		if errors.Is(err, services.ErrInvalidEvent) {
			return utils.ValidationError(c, err.Error())
		}
		return failed(c, h.Cfg, err, "Event")
	}

	c.Status(fiber.StatusCreated)
	return utils.SuccessResponse(c, fiber.Map{"message": "Event tracked"})
}

// GetAnalytics handles GET /api/admin/analytics
// @Summary Summarize site activity over a trailing window
// @Tags Analytics
// @Produce json
// @Param days query int false "Window in days (default 30)"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	summary, err := services.GetAnalyticsSummary(h.DB, c.QueryInt("days", 30))
	if err != nil {
		return failed(c, h.Cfg, err, "Analytics")
	}
	return utils.SuccessResponse(c, fiber.Map{"analytics": summary})
}
