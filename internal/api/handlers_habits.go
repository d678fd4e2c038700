package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/steadfast/internal/services"
)

func (handler *Handler) ListHabits(c *fiber.Ctx) error {
	handler.ensureDependencies()
	habits, err := handler.habitService.List(callerID(c))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(habits)
}

func (handler *Handler) ListActiveHabits(c *fiber.Ctx) error {
	handler.ensureDependencies()
	habits, err := handler.habitService.ListActive(callerID(c))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(habits)
}

func (handler *Handler) GetHabit(c *fiber.Ctx) error {
	habitID, ok := pathID(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	handler.ensureDependencies()
	habit, err := handler.habitService.Get(callerID(c), habitID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(habit)
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	input := services.HabitInput{}
	if err := decodeJSONBody(c, &input); err != nil {
		return invalidPayload(c)
	}

	handler.ensureDependencies()
	habit, err := handler.habitService.Create(callerID(c), input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(habit)
}

// UpdateHabit serves both PUT and PATCH.
func (handler *Handler) UpdateHabit(c *fiber.Ctx) error {
	habitID, ok := pathID(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	input := services.HabitInput{}
	if err := decodeJSONBody(c, &input); err != nil {
		return invalidPayload(c)
	}

	handler.ensureDependencies()
	habit, err := handler.habitService.Update(callerID(c), habitID, input, isPartialUpdate(c))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(habit)
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	habitID, ok := pathID(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	handler.ensureDependencies()
	if err := handler.habitService.Delete(callerID(c), habitID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
