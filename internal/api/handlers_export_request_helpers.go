package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/steadfast/internal/services"
)

func parseExportFilter(c *fiber.Ctx) (services.ExportFilter, string) {
	filter, err := services.ParseExportFilter(c.Query("habit_id"), c.Query("from"), c.Query("to"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrExportHabitInvalid):
			return services.ExportFilter{}, "invalid habit id"
		case errors.Is(err, services.ErrExportFromDateInvalid):
			return services.ExportFilter{}, "invalid from date"
		case errors.Is(err, services.ErrExportToDateInvalid):
			return services.ExportFilter{}, "invalid to date"
		default:
			return services.ExportFilter{}, "invalid range"
		}
	}
	return filter, ""
}

func buildExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("steadfast-export-%s.%s", now.Format("2006-01-02"), extension)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
