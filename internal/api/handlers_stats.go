package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) HabitStats(c *fiber.Ctx) error {
	habitID, ok := pathID(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	handler.ensureDependencies()
	stats, err := handler.statsService.ComputeForUser(callerID(c), habitID, handler.requestToday(c))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(stats)
}

func (handler *Handler) Dashboard(c *fiber.Ctx) error {
	handler.ensureDependencies()
	summary, err := handler.statsService.BuildDashboard(callerID(c), handler.requestToday(c))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(summary)
}
