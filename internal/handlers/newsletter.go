package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/quantalyze/backoffice/internal/config"
	"github.com/quantalyze/backoffice/internal/services"
	"github.com/quantalyze/backoffice/internal/types"
	"github.com/quantalyze/backoffice/internal/utils"
	"gorm.io/gorm"
)

// NewsletterHandler handles the public signup form and the admin mailing
// list dashboard
type NewsletterHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

type subscribeRequest struct {
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Preferences []string `json:"preferences"`
}

type subscriberStatusRequest struct {
	ID     types.FlexUint64 `json:"id"`
	Status string           `json:"status"`
}

// Subscribe handles POST /api/newsletter
// @Summary Subscribe to the newsletter
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param body body subscribeRequest true "Signup"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /newsletter [post]
func (h *NewsletterHandler) Subscribe(c *fiber.Ctx) error {
	var req subscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(c, "Invalid request body")
	}

	result, err := services.Subscribe(h.DB, req.Email, req.Name, req.Preferences)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSubscriber) {
			return utils.ValidationError(c, err.Error())
		}
		if errors.Is(err, services.ErrAlreadySubscribed) {
			return utils.ErrorResponse(c, fiber.StatusConflict,
				"This email is already subscribed to our newsletter", "")
		}
		return failed(c, h.Cfg, err, "Subscriber")
	}

	if result.Reactivated {
		return utils.SuccessResponse(c, fiber.Map{
			"message":     "Welcome back! You have been re-subscribed to our newsletter",
			"reactivated": true,
		})
	}
	c.Status(fiber.StatusCreated)
	return utils.SuccessResponse(c, fiber.Map{"message": "Successfully subscribed to our newsletter"})
}

// GetSubscribers handles GET /api/admin/newsletter
// @Summary List newsletter subscribers
// @Tags Newsletter
// @Produce json
// @Param status query string false "Filter by subscription status"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/newsletter [get]
func (h *NewsletterHandler) GetSubscribers(c *fiber.Ctx) error {
	rows, err := services.ListSubscribers(h.DB, c.Query("status"))
	if err != nil {
		return failed(c, h.Cfg, err, "Subscribers")
	}
	return utils.SuccessResponse(c, fiber.Map{"subscribers": rows, "count": len(rows)})
}

// UpdateSubscriber handles PUT /api/admin/newsletter
// @Summary Change a subscriber's status
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param body body subscriberStatusRequest true "Subscriber id and new status"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/newsletter [put]
func (h *NewsletterHandler) UpdateSubscriber(c *fiber.Ctx) error {
	var req subscriberStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(c, "Invalid request body")
	}
	if req.ID == 0 || req.Status == "" {
		return utils.ValidationError(c, "An id and status are required")
	}

	if err := services.UpdateSubscriberStatus(h.DB, uint64(req.ID), req.Status); err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return utils.ValidationError(c, err.Error())
		}
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Subscriber not found")
		}
		return failed(c, h.Cfg, err, "Subscriber")
	}
	return utils.SuccessResponse(c, fiber.Map{"message": "Subscriber updated"})
}
