package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/steadfast/internal/services"
)

func (handler *Handler) ListLogs(c *fiber.Ctx) error {
	habitID, ok := optionalQueryID(c, "habit_id")
	if !ok {
		return validationResponse(c, map[string][]string{"habit_id": {"A valid integer is required."}})
	}

	handler.ensureDependencies()
	logs, err := handler.logService.List(callerID(c), habitID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(newDailyLogViews(logs))
}

func (handler *Handler) GetLog(c *fiber.Ctx) error {
	logID, ok := pathID(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	handler.ensureDependencies()
	entry, err := handler.logService.Get(callerID(c), logID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(newDailyLogView(entry))
}

func (handler *Handler) CreateLog(c *fiber.Ctx) error {
	input := services.DailyLogInput{}
	if err := decodeJSONBody(c, &input); err != nil {
		return invalidPayload(c)
	}

	handler.ensureDependencies()
	entry, err := handler.logService.Create(callerID(c), input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newDailyLogView(entry))
}

func (handler *Handler) UpdateLog(c *fiber.Ctx) error {
	logID, ok := pathID(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	input := services.DailyLogInput{}
	if err := decodeJSONBody(c, &input); err != nil {
		return invalidPayload(c)
	}

	handler.ensureDependencies()
	entry, err := handler.logService.Update(callerID(c), logID, input, isPartialUpdate(c))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(newDailyLogView(entry))
}

func (handler *Handler) DeleteLog(c *fiber.Ctx) error {
	logID, ok := pathID(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	handler.ensureDependencies()
	if err := handler.logService.Delete(callerID(c), logID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
