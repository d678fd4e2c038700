package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/steadfast/internal/models"
	"github.com/terraincognita07/steadfast/internal/services"
)

// requestLocation honours an IANA zone sent by the client and falls back to
// the server zone.
func (handler *Handler) requestLocation(c *fiber.Ctx) *time.Location {
	return services.ResolveLocation(c.Get(timezoneHeader), handler.location)
}

func (handler *Handler) requestToday(c *fiber.Ctx) models.Date {
	return services.TodayAt(handler.now(), handler.requestLocation(c))
}
