package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/steadfast/internal/services"
)

func (handler *Handler) ListTriggers(c *fiber.Ctx) error {
	handler.ensureDependencies()
	triggers, err := handler.triggerService.List(callerID(c))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(triggers)
}

func (handler *Handler) GetTrigger(c *fiber.Ctx) error {
	triggerID, ok := pathID(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	handler.ensureDependencies()
	trigger, err := handler.triggerService.Get(callerID(c), triggerID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(trigger)
}

func (handler *Handler) CreateTrigger(c *fiber.Ctx) error {
	input := services.TriggerInput{}
	if err := decodeJSONBody(c, &input); err != nil {
		return invalidPayload(c)
	}

	handler.ensureDependencies()
	trigger, err := handler.triggerService.Create(callerID(c), input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(trigger)
}

func (handler *Handler) UpdateTrigger(c *fiber.Ctx) error {
	triggerID, ok := pathID(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	input := services.TriggerInput{}
	if err := decodeJSONBody(c, &input); err != nil {
		return invalidPayload(c)
	}

	handler.ensureDependencies()
	trigger, err := handler.triggerService.Update(callerID(c), triggerID, input, isPartialUpdate(c))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(trigger)
}

func (handler *Handler) DeleteTrigger(c *fiber.Ctx) error {
	triggerID, ok := pathID(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	handler.ensureDependencies()
	if err := handler.triggerService.Delete(callerID(c), triggerID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
