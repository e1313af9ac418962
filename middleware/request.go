package middleware

import (
	"tourism-webapp/logger"

	"github.com/gofiber/fiber/v2"
)

// RequestContext copies the request id set by the requestid middleware into
// the user context so that logs further down carry it.
func RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id := c.GetRespHeader(fiber.HeaderXRequestID); id != "" {
			c.SetUserContext(logger.WithRequestID(c.UserContext(), id))
		}
		return c.Next()
	}
}
