package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/steadfast/internal/services"
)

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	filter, message := parseExportFilter(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	handler.ensureDependencies()
	rows, err := handler.exportService.BuildCSVRows(callerID(c), filter)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	now := handler.now().In(handler.requestLocation(c))

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, row := range rows {
		if err := writer.Write(row.Columns()); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", buildExportFilename(now, "csv"))
	return c.Send(output.Bytes())
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	filter, message := parseExportFilter(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	handler.ensureDependencies()
	entries, err := handler.exportService.BuildJSONEntries(callerID(c), filter)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	now := handler.now().In(handler.requestLocation(c))

	payload := fiber.Map{
		"exported_at": now.Format(time.RFC3339),
		"entries":     entries,
	}

	serialized, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSON, buildExportFilename(now, "json"))
	return c.Send(serialized)
}

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	filter, message := parseExportFilter(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	handler.ensureDependencies()
	summary, err := handler.exportService.BuildSummary(callerID(c), filter)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(summary)
}
