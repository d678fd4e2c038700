package api

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/steadfast/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func validationResponse(c *fiber.Ctx, fields map[string][]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fields)
}

// respondServiceError maps service sentinels to HTTP statuses. Anything it
// does not recognise is logged and reported as a 500.
func (handler *Handler) respondServiceError(c *fiber.Ctx, err error) error {
	var validation *services.ValidationError
	switch {
	case errors.As(err, &validation):
		return validationResponse(c, validation.Fields)
	case errors.Is(err, services.ErrNotFound):
		return apiError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, services.ErrPermissionDenied):
		return apiError(c, fiber.StatusForbidden, "permission denied")
	case errors.Is(err, services.ErrDuplicateHabitDate):
		return apiError(c, fiber.StatusConflict, "a log for this habit and date already exists")
	case errors.Is(err, services.ErrConflict):
		return apiError(c, fiber.StatusConflict, "conflict")
	default:
		handler.logger.Error("request failed",
			"request_id", requestID(c),
			"method", c.Method(),
			"path", c.Path(),
			"err", err,
		)
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

// decodeJSONBody treats an empty body as an empty object so that required
// field checks report every missing field.
func decodeJSONBody(c *fiber.Ctx, target any) error {
	body := c.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return err
	}
	return nil
}

func invalidPayload(c *fiber.Ctx) error {
	return validationResponse(c, map[string][]string{
		"non_field_errors": {"Invalid data. Expected a JSON object with valid field types."},
	})
}

// pathID reads the :id route parameter. Malformed IDs cannot match a record,
// so callers answer them with 404.
func pathID(c *fiber.Ctx) (uint, bool) {
	raw := strings.TrimSpace(c.Params("id"))
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, false
	}
	return uint(parsed), true
}

func optionalQueryID(c *fiber.Ctx, name string) (*uint, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	value := uint(parsed)
	return &value, true
}

func isPartialUpdate(c *fiber.Ctx) bool {
	return c.Method() == fiber.MethodPatch
}
