package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/quantalyze/backoffice/internal/config"
	"github.com/quantalyze/backoffice/internal/models"
	"github.com/quantalyze/backoffice/internal/services"
	"github.com/quantalyze/backoffice/internal/types"
	"github.com/quantalyze/backoffice/internal/utils"
	"gorm.io/gorm"
)

// ContactHandler handles the public contact form and the admin inquiry
// dashboard
type ContactHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type inquiryStatusRequest struct {
	ID     types.FlexUint64 `json:"id"`
	Status string           `json:"status"`
}

// SubmitInquiry handles POST /api/contact
// @Summary Submit a contact inquiry
// @Tags Contact
// @Accept json
// @Produce json
// @Param body body contactRequest true "Inquiry"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /contact [post]
func (h *ContactHandler) SubmitInquiry(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(c, "Invalid request body")
	}

	inq := models.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := services.CreateInquiry(h.DB, &inq); err != nil {
		if errors.Is(err, services.ErrInvalidInquiry) {
			return utils.ValidationError(c, err.Error())
		}
		return failed(c, h.Cfg, err, "Inquiry")
	}

	c.Status(fiber.StatusCreated)
	return utils.SuccessResponse(c, fiber.Map{"message": "Thanks, we will get back to you shortly"})
}

// GetInquiries handles GET /api/admin/inquiries
// @Summary List contact inquiries
// @Tags Contact
// @Produce json
// @Param status query string false "Filter by triage status"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/inquiries [get]
func (h *ContactHandler) GetInquiries(c *fiber.Ctx) error {
	rows, err := services.ListInquiries(h.DB, c.Query("status"))
	if err != nil {
		return failed(c, h.Cfg, err, "Inquiries")
	}
	return utils.SuccessResponse(c, fiber.Map{"inquiries": rows})
}

// UpdateInquiry handles PUT /api/admin/inquiries
// @Summary Move an inquiry through the triage workflow
// @Tags Contact
// @Accept json
// @Produce json
// @Param body body inquiryStatusRequest true "Inquiry id and new status"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/inquiries [put]
func (h *ContactHandler) UpdateInquiry(c *fiber.Ctx) error {
	var req inquiryStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(c, "Invalid request body")
	}
	if req.ID == 0 || req.Status == "" {
		return utils.ValidationError(c, "An id and status are required")
	}

	if err := services.UpdateInquiryStatus(h.DB, uint64(req.ID), req.Status); err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return utils.ValidationError(c, err.Error())
		}
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Inquiry not found")
		}
		return failed(c, h.Cfg, err, "Inquiry")
	}
	return utils.SuccessResponse(c, fiber.Map{"message": "Inquiry updated"})
}
