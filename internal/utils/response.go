package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Every endpoint answers with the same envelope: {success, message?,
// data|<resource-plural>?, error?}. The error field carries the underlying
// failure only outside production.

// SuccessResponse sends a success envelope merged with the given fields.
// The status code is whatever the handler set, 200 by default.
func SuccessResponse(c *fiber.Ctx, fields fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.JSON(body)
}

// ErrorResponse sends a failure envelope. detail is included as "error"
// when non-empty (callers gate it on the environment).
func ErrorResponse(c *fiber.Ctx, status int, message, detail string) error {
	body := fiber.Map{
		"success": false,
		"message": message,
	}
	if detail != "" {
		body["error"] = detail
	}
	return c.Status(status).JSON(body)
}

// ValidationError sends a 400 for a missing or malformed client input.
func ValidationError(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, message, "")
}

// UnauthorizedResponse sends a 401 without leaking whether the resource exists.
func UnauthorizedResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized", "")
}

// NotFoundResponse sends a 404 envelope.
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusNotFound, message, "")
}
