package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const versionKey = "apiVersion"

// CurrentAPIVersion is echoed back to clients that do not pin one.
const CurrentAPIVersion = "1.0.0"

// Version negotiates the X-Api-Version header. The resolved version is kept
// in the request context and echoed in the response so clients can tell
// which contract served them.
func Version() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", CurrentAPIVersion)

		// Major.minor aliases the newest patch release.
		if version == "1.0" {
			version = CurrentAPIVersion
		}

		c.Locals(versionKey, version)
		c.Set("X-Api-Version", version)

		return c.Next()
	}
}

// VersionFromCtx returns the API version negotiated for a request.
func VersionFromCtx(c *fiber.Ctx) string {
	version, _ := c.Locals(versionKey).(string)
	if version == "" {
		return CurrentAPIVersion
	}
	return version
}
