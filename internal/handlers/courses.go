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

// CoursesHandler handles the courses catalog routes
type CoursesHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

type courseCreateRequest struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	Price            *float64 `json:"price"`
	Duration         string   `json:"duration"`
	Level            string   `json:"level"`
	Featured         bool     `json:"featured"`
	Status           string   `json:"status"`
	Modules          int      `json:"modules"`
	EnrolledStudents int      `json:"enrolled_students"`
}

type courseUpdateRequest struct {
	ID               types.FlexUint64        `json:"id"`
	Restore          bool                    `json:"restore"`
	Title            types.Optional[string]  `json:"title"`
	Description      types.Optional[string]  `json:"description"`
	Category         types.Optional[string]  `json:"category"`
	Price            types.Optional[float64] `json:"price"`
	Duration         types.Optional[string]  `json:"duration"`
	Level            types.Optional[string]  `json:"level"`
	Featured         types.Optional[bool]    `json:"featured"`
	Status           types.Optional[string]  `json:"status"`
	Modules          types.Optional[int]     `json:"modules"`
	EnrolledStudents types.Optional[int]     `json:"enrolled_students"`
}

// GetCourses handles GET /api/courses
// @Summary List courses
// @Tags Courses
// @Produce json
// @Param category query string false "Filter by category"
// @Param featured query boolean false "Filter by featured flag"
// @Param includeDeleted query boolean false "Include soft-deleted rows (admin)"
// @Param action query string false "Set to history for the change log (admin)"
// @Success 200 {object} map[string]interface{}
// @Router /courses [get]
func (h *CoursesHandler) GetCourses(c *fiber.Ctx) error {
	if c.Query("action") == "history" {
		return catalogHistory(c, h.Cfg, h.DB, services.CoursesAudit, "Course")
	}

	opts := services.ListOptions{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Featured: queryBool(c, "featured"),
		Admin:    middleware.ClaimsFromCtx(c) != nil,
	}
	if v := queryBool(c, "includeDeleted"); v != nil {
		opts.IncludeDeleted = *v
	}

	rows, err := services.ListCourses(h.DB, opts)
	if err != nil {
		return failed(c, h.Cfg, err, "Courses")
	}
	return utils.SuccessResponse(c, fiber.Map{"courses": rows})
}

// CreateCourse handles POST /api/courses
// @Summary Create a course
// @Tags Courses
// @Accept json
// @Produce json
// @Param body body courseCreateRequest true "Course to create"
// @Success 201 {object} map[string]interface{}
// @Router /courses [post]
func (h *CoursesHandler) CreateCourse(c *fiber.Ctx) error {
	var req courseCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return utils.ValidationError(c, "Title and description are required")
	}

	course := models.Course{
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Price:            req.Price,
		Duration:         req.Duration,
		Level:            req.Level,
		Featured:         req.Featured,
		Status:           req.Status,
		Modules:          req.Modules,
		EnrolledStudents: req.EnrolledStudents,
	}
	if course.Modules <= 0 {
		course.Modules = 1
	}
	if err := services.CreateCourse(h.DB, &course); err != nil {
		return failed(c, h.Cfg, err, "Course")
	}

	c.Status(fiber.StatusCreated)
	return utils.SuccessResponse(c, fiber.Map{"message": "Course created", "id": course.ID})
}

// UpdateCourse handles PUT /api/courses
// @Summary Update or restore a course
// @Tags Courses
// @Accept json
// @Produce json
// @Param body body courseUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Router /courses [put]
func (h *CoursesHandler) UpdateCourse(c *fiber.Ctx) error {
	var req courseUpdateRequest
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
		if err := services.RestoreCourse(h.DB, uint64(req.ID)); err != nil {
			return failed(c, h.Cfg, err, "Course")
		}
		return utils.SuccessResponse(c, fiber.Map{"message": "Course restored"})
	}

	updates := map[string]any{}
	req.Title.Apply(updates, "title")
	req.Description.Apply(updates, "description")
	req.Category.Apply(updates, "category")
	req.Price.Apply(updates, "price")
	req.Duration.Apply(updates, "duration")
	req.Level.Apply(updates, "level")
	req.Featured.Apply(updates, "featured")
	req.Status.Apply(updates, "status")
	req.Modules.Apply(updates, "modules")
	req.EnrolledStudents.Apply(updates, "enrolled_students")
	if len(updates) == 0 {
		return utils.ValidationError(c, "No fields to update")
	}

	if err := services.UpdateCourse(h.DB, uint64(req.ID), updates); err != nil {
		return failed(c, h.Cfg, err, "Course")
	}
	return utils.SuccessResponse(c, fiber.Map{"message": "Course updated"})
}

// DeleteCourse handles DELETE /api/courses?id=N
// @Summary Soft-delete a course
// @Tags Courses
// @Produce json
// @Param id query integer true "Course id"
// @Success 200 {object} map[string]interface{}
// @Router /courses [delete]
func (h *CoursesHandler) DeleteCourse(c *fiber.Ctx) error {
	id, err := queryID(c)
	if err != nil {
		return utils.ValidationError(c, "A valid id is required")
	}
	if err := services.DeleteCourse(h.DB, id); err != nil {
		return failed(c, h.Cfg, err, "Course")
	}
	return utils.SuccessResponse(c, fiber.Map{"message": "Course deleted"})
}
