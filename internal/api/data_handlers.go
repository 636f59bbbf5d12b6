package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pmsify/internal/services"
)

const (
	contentTypeJSON = "application/json"
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type clearDataRequest struct {
	Confirm bool `json:"confirm"`
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	payload, err := handler.tracker.Export.ExportJSON()
	if err != nil {
		return handler.serviceError(c, err, "failed to export data")
	}
	return handler.sendExport(c, contentTypeJSON, "json", payload)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	payload, err := handler.tracker.Export.ExportCSV()
	if err != nil {
		return handler.serviceError(c, err, "failed to export data")
	}
	return handler.sendExport(c, contentTypeCSV, "csv", payload)
}

func (handler *Handler) ExportXLSX(c *fiber.Ctx) error {
	payload, err := handler.tracker.Export.ExportXLSX()
	if err != nil {
		return handler.serviceError(c, err, "failed to export data")
	}
	return handler.sendExport(c, contentTypeXLSX, "xlsx", payload)
}

func (handler *Handler) sendExport(c *fiber.Ctx, contentType string, extension string, payload []byte) error {
	setExportAttachmentHeaders(c, contentType, services.ExportFilename(handler.tracker.Today(), extension))
	return c.Send(payload)
}

func (handler *Handler) ImportData(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return apiError(c, fiber.StatusBadRequest, "empty import document")
	}

	summary, err := handler.tracker.Export.ImportDocument(body)
	if err != nil {
		return handler.serviceError(c, err, "failed to import data")
	}
	return c.JSON(fiber.Map{
		"imported": summary,
		"message":  handler.message("data.imported"),
	})
}

func (handler *Handler) ClearAllData(c *fiber.Ctx) error {
	request := clearDataRequest{}
	if err := c.BodyParser(&request); err != nil || !request.Confirm {
		return apiError(c, fiber.StatusBadRequest, "confirmation required")
	}

	if err := handler.tracker.Data.ClearAllData(); err != nil {
		return handler.serviceError(c, err, "failed to clear data")
	}
	return c.JSON(fiber.Map{"message": handler.message("data.cleared")})
}
