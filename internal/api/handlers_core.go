package api

import "github.com/gofiber/fiber/v2"

// Health reports whether the database answers.
func (handler *Handler) Health(c *fiber.Ctx) error {
	handler.ensureDependencies()
	if err := handler.repositories.Ping(c.UserContext()); err != nil {
		handler.logger.Error("health check failed", "request_id", requestID(c), "err", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
